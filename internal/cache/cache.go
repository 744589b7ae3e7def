package cache

import "sync"

// Cache is a generic thread-safe LRU cache. Every value has a cost, and
// least recently used entries are evicted once the summed cost exceeds the
// budget. The entry just inserted is never evicted, so a single value larger
// than the budget is still returned and kept until the next insertion.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*lruNode[K, V]
	lru     lruList[K, V]
	cost    func(V) int
	budget  int
	used    int

	hits, misses, evictions uint64
}

// New creates a cache with the given budget. cost reports the cost of a
// value; nil counts every value as 1. A budget of 0 means unlimited.
func New[K comparable, V any](budget int, cost func(V) int) *Cache[K, V] {
	if cost == nil {
		cost = func(V) int { return 1 }
	}
	return &Cache[K, V]{
		entries: make(map[K]*lruNode[K, V]),
		cost:    cost,
		budget:  budget,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.lru.moveToFront(node)
	return node.value, true
}

// GetOrCreate returns the cached value for key, creating and storing it on a
// miss. create runs without the lock held, so concurrent misses on one key
// may each call it; the first stored value wins.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	value := create()

	c.mu.Lock()
	defer c.mu.Unlock()
	if node, ok := c.entries[key]; ok {
		c.lru.moveToFront(node)
		return node.value
	}
	c.insert(key, value)
	return value
}

// Set stores a value, replacing any previous value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.remove(node)
	}
	c.insert(key, value)
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruNode[K, V])
	c.lru = lruList[K, V]{}
	c.used = 0
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:       len(c.entries),
		Used:      c.used,
		Budget:    c.budget,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// insert adds a new entry and evicts old ones over budget.
// Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	node := &lruNode[K, V]{key: key, value: value, cost: c.cost(value)}
	c.entries[key] = node
	c.lru.pushFront(node)
	c.used += node.cost

	for c.budget > 0 && c.used > c.budget && c.lru.len > 1 {
		c.remove(c.lru.oldest())
		c.evictions++
	}
}

// remove drops node from the cache. Caller must hold c.mu.
func (c *Cache[K, V]) remove(node *lruNode[K, V]) {
	c.lru.unlink(node)
	delete(c.entries, node.key)
	c.used -= node.cost
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Used is the summed cost of the entries.
	Used int
	// Budget is the cost limit, 0 if unlimited.
	Budget int
	// Hits and Misses count Get lookups, including those made by GetOrCreate.
	Hits, Misses uint64
	// Evictions is the number of entries dropped to stay within budget.
	Evictions uint64
}
