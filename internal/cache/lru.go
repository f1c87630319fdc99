package cache

// entry is a node of the intrusive LRU ring. It carries its own key so the
// shard map can be updated on eviction.
type entry[V any] struct {
	key        string
	value      V
	prev, next *entry[V]
}

// lru is a circular doubly-linked list around a sentinel node. root.next is
// the most recently used entry and root.prev the least recently used.
// Not safe for concurrent use; the owning shard holds the lock.
type lru[V any] struct {
	root entry[V]
	n    int
}

func (l *lru[V]) init() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

func (l *lru[V]) len() int { return l.n }

// pushFront inserts e as the most recently used entry.
func (l *lru[V]) pushFront(e *entry[V]) {
	e.prev = &l.root
	e.next = l.root.next
	l.root.next.prev = e
	l.root.next = e
	l.n++
}

// touch moves e to the front.
func (l *lru[V]) touch(e *entry[V]) {
	if l.root.next == e {
		return
	}
	l.remove(e)
	l.pushFront(e)
}

func (l *lru[V]) remove(e *entry[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	l.n--
}

// back returns the least recently used entry, or nil when empty.
func (l *lru[V]) back() *entry[V] {
	if l.n == 0 {
		return nil
	}
	return l.root.prev
}
