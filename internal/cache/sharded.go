package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = ShardCount - 1
)

// Sharded is a string-keyed LRU cache split into ShardCount shards.
type Sharded[V any] struct {
	shards   [ShardCount]shard[V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[V any] struct {
	mu      sync.Mutex
	entries map[string]*entry[V]
	order   lru[V]
}

// NewSharded creates a cache holding up to capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[V any](capacity int) *Sharded[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[V]{capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[string]*entry[V])
		c.shards[i].order.init()
	}
	return c
}

func (c *Sharded[V]) shardFor(key string) *shard[V] {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // fnv.Write never returns an error
	return &c.shards[h.Sum64()&shardMask]
}

// Get returns the value cached under key.
func (c *Sharded[V]) Get(key string) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.order.touch(e)
	c.hits.Add(1)
	return e.value, true
}

// Set stores value under key, evicting the shard's least recently used
// entries when it is full.
func (c *Sharded[V]) Set(key string, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	c.insert(s, key, value)
}

// GetOrCreate returns the cached value for key or computes, stores and
// returns it. create runs with the shard locked, so concurrent callers for
// the same key compute it once; keep it fast.
func (c *Sharded[V]) GetOrCreate(key string, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.order.touch(e)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	v := create()
	c.insert(s, key, v)
	return v
}

// insert stores value; s.mu must be held.
func (c *Sharded[V]) insert(s *shard[V], key string, value V) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		s.order.touch(e)
		return
	}
	for s.order.len() >= c.capacity {
		old := s.order.back()
		s.order.remove(old)
		delete(s.entries, old.key)
		c.evictions.Add(1)
	}
	e := &entry[V]{key: key, value: value}
	s.order.pushFront(e)
	s.entries[key] = e
}

// Clear removes all entries. Statistics are kept.
func (c *Sharded[V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[string]*entry[V])
		s.order.init()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Sharded[V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:           c.Len(),
		TotalCapacity: c.capacity * ShardCount,
		Hits:          hits,
		Misses:        misses,
		HitRate:       rate,
		Evictions:     c.evictions.Load(),
	}
}

// Stats contains cache statistics.
type Stats struct {
	Len           int
	TotalCapacity int
	Hits          uint64
	Misses        uint64
	HitRate       float64 // 0.0 to 1.0
	Evictions     uint64
}

// Merge adds the counters of o to s. HitRate is recomputed.
func (s Stats) Merge(o Stats) Stats {
	s.Len += o.Len
	s.TotalCapacity += o.TotalCapacity
	s.Hits += o.Hits
	s.Misses += o.Misses
	s.Evictions += o.Evictions
	s.HitRate = 0
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRate = float64(s.Hits) / float64(total)
	}
	return s
}
