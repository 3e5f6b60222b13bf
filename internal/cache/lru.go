package cache

// lruNode is a slot in the LRU list. Slots are addressed by index into
// LRU.nodes so the list never allocates after it is full.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// nilNode marks the end of the list.
const nilNode = -1

// LRU is a fixed-capacity least-recently-used cache.
//
// The head is the most recently used entry, the tail the least recently
// used one. Setting a new key on a full cache evicts the tail.
type LRU[K comparable, V any] struct {
	index map[K]int
	nodes []lruNode[K, V]
	head  int
	tail  int
	cap   int

	hits   uint64
	misses uint64
}

// NewLRU creates a cache holding at most capacity entries. A capacity below
// one is raised to one.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		index: make(map[K]int, capacity),
		nodes: make([]lruNode[K, V], 0, capacity),
		head:  nilNode,
		tail:  nilNode,
		cap:   capacity,
	}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int { return len(c.nodes) }

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int { return c.cap }

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(i)
	return c.nodes[i].value, true
}

// Set stores value for key, evicting the least recently used entry when the
// cache is full.
func (c *LRU[K, V]) Set(key K, value V) {
	if i, ok := c.index[key]; ok {
		c.nodes[i].value = value
		c.moveToFront(i)
		return
	}

	var i int
	if len(c.nodes) < c.cap {
		c.nodes = append(c.nodes, lruNode[K, V]{})
		i = len(c.nodes) - 1
	} else {
		// Reuse the tail slot.
		i = c.tail
		c.unlink(i)
		delete(c.index, c.nodes[i].key)
	}

	c.nodes[i] = lruNode[K, V]{key: key, value: value, prev: nilNode, next: nilNode}
	c.index[key] = i
	c.pushFront(i)
}

// Oldest returns the least recently used key without touching it.
func (c *LRU[K, V]) Oldest() (K, bool) {
	if c.tail == nilNode {
		var zero K
		return zero, false
	}
	return c.nodes[c.tail].key, true
}

// Clear removes all entries and resets the statistics.
func (c *LRU[K, V]) Clear() {
	clear(c.index)
	c.nodes = c.nodes[:0]
	c.head, c.tail = nilNode, nilNode
	c.hits, c.misses = 0, 0
}

// Stats returns hit and miss counts since creation or the last Clear.
func (c *LRU[K, V]) Stats() Stats {
	s := Stats{Len: len(c.nodes), Capacity: c.cap, Hits: c.hits, Misses: c.misses}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Hits is the number of successful lookups.
	Hits uint64
	// Misses is the number of failed lookups.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first lookup.
	HitRate float64
}

func (c *LRU[K, V]) moveToFront(i int) {
	if i == c.head {
		return
	}
	c.unlink(i)
	c.pushFront(i)
}

func (c *LRU[K, V]) pushFront(i int) {
	n := &c.nodes[i]
	n.prev = nilNode
	n.next = c.head
	if c.head != nilNode {
		c.nodes[c.head].prev = i
	}
	c.head = i
	if c.tail == nilNode {
		c.tail = i
	}
}

// unlink removes slot i from the list without freeing it.
func (c *LRU[K, V]) unlink(i int) {
	n := &c.nodes[i]
	if n.prev != nilNode {
		c.nodes[n.prev].next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nilNode {
		c.nodes[n.next].prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nilNode, nilNode
}
