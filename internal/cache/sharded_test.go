package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestShardedGetSet(t *testing.T) {
	c := NewSharded[int](10)

	c.Set("key1", 42)
	if v, ok := c.Get("key1"); !ok || v != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected missing key to not exist")
	}

	c.Set("key1", 7)
	if v, _ := c.Get("key1"); v != 7 {
		t.Errorf("updated value = %d, want 7", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestShardedGetOrCreate(t *testing.T) {
	c := NewSharded[string](10)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}

	for range 3 {
		if got := c.GetOrCreate("k", create); got != "v" {
			t.Fatalf("GetOrCreate() = %q, want v", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 2 and 1", st.Hits, st.Misses)
	}
}

func TestShardedEviction(t *testing.T) {
	const capacity = 2
	c := NewSharded[int](capacity)

	// Far more keys than total capacity: every shard must stay bounded.
	for i := range 500 {
		c.Set(strconv.Itoa(i), i)
	}
	if got, max := c.Len(), capacity*ShardCount; got > max {
		t.Errorf("Len() = %d, exceeds total capacity %d", got, max)
	}
	if c.Stats().Evictions == 0 {
		t.Error("expected evictions")
	}
}

func TestShardedLRUOrder(t *testing.T) {
	c := NewSharded[int](2)
	s := c.shardFor("a")

	// Find three keys that land in the same shard as "a".
	keys := []string{"a"}
	for i := 0; len(keys) < 3; i++ {
		k := "k" + strconv.Itoa(i)
		if c.shardFor(k) == s {
			keys = append(keys, k)
		}
	}

	c.Set(keys[0], 0)
	c.Set(keys[1], 1)
	c.Get(keys[0]) // keys[1] is now the oldest
	c.Set(keys[2], 2)

	if _, ok := c.Get(keys[1]); ok {
		t.Errorf("%q should have been evicted", keys[1])
	}
	if _, ok := c.Get(keys[0]); !ok {
		t.Errorf("%q should have survived", keys[0])
	}
}

func TestShardedClear(t *testing.T) {
	c := NewSharded[int](0)
	for i := range 20 {
		c.Set(strconv.Itoa(i), i)
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	c.Set("x", 1)
	if v, ok := c.Get("x"); !ok || v != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestShardedConcurrent(t *testing.T) {
	c := NewSharded[int](32)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g * i) % 97)
				c.GetOrCreate(k, func() int { return i })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
}

func TestStatsMerge(t *testing.T) {
	a := Stats{Len: 1, Hits: 3, Misses: 1}
	b := Stats{Len: 2, Hits: 1, Misses: 3}
	m := a.Merge(b)
	if m.Len != 3 || m.Hits != 4 || m.Misses != 4 || m.HitRate != 0.5 {
		t.Errorf("Merge() = %+v", m)
	}
}
