package cache

// Cache maps keys to sized values and keeps the sum of tracked sizes
// within a byte budget by evicting the least recently used entries.
//
// A value larger than the whole budget is handed back to the caller but
// never stored, so it neither counts against the budget nor evicts others.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[V]
	budget  int64
	used    int64
	tick    uint64 // Monotonic access counter

	hits      uint64
	misses    uint64
	evictions uint64
}

// entry holds a cached value with its size and last access tick.
type entry[V any] struct {
	value V
	size  int64
	atime uint64
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Bytes     int64
	Budget    int64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New creates a cache holding at most budget bytes.
// A non-positive budget disables storage: every lookup is a miss.
func New[K comparable, V any](budget int64) *Cache[K, V] {
	if budget < 0 {
		budget = 0
	}
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		budget:  budget,
	}
}

// Get returns the value for key and refreshes its recency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// Peek returns the value for key without touching its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetOrInsert returns the cached value for key, or calls create to build
// it. create reports the size of the value in bytes.
func (c *Cache[K, V]) GetOrInsert(key K, create func() (V, int64)) V {
	if v, ok := c.Get(key); ok {
		c.hits++
		return v
	}
	c.misses++

	value, size := create()
	c.insert(key, value, size)
	return value
}

// insert stores value under key, replacing any previous entry. A value
// larger than the whole budget is not stored.
func (c *Cache[K, V]) insert(key K, value V, size int64) {
	if size < 0 {
		size = 0
	}
	if size > c.budget {
		return
	}
	if old, ok := c.entries[key]; ok {
		c.used -= old.size
		delete(c.entries, key)
	}

	c.tick++
	c.entries[key] = &entry[V]{value: value, size: size, atime: c.tick}
	c.used += size

	for c.used > c.budget {
		c.evictOldest()
	}
}

// evictOldest removes the entry with the smallest access tick.
func (c *Cache[K, V]) evictOldest() {
	var (
		oldestKey K
		oldest    *entry[V]
	)
	for k, e := range c.entries {
		if oldest == nil || e.atime < oldest.atime {
			oldestKey, oldest = k, e
		}
	}
	if oldest == nil {
		c.used = 0
		return
	}
	delete(c.entries, oldestKey)
	c.used -= oldest.size
	c.evictions++
}

// DeleteFunc removes every entry whose key satisfies match and returns
// the number of removed entries.
func (c *Cache[K, V]) DeleteFunc(match func(K) bool) int {
	n := 0
	for k, e := range c.entries {
		if match(k) {
			delete(c.entries, k)
			c.used -= e.size
			n++
		}
	}
	return n
}

// Clear removes all entries and resets the recency clock.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*entry[V])
	c.used = 0
	c.tick = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Bytes returns the sum of tracked entry sizes.
func (c *Cache[K, V]) Bytes() int64 { return c.used }

// Budget returns the configured byte budget.
func (c *Cache[K, V]) Budget() int64 { return c.budget }

// Tick returns the last access tick recorded for key.
func (c *Cache[K, V]) Tick(key K) (uint64, bool) {
	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	return e.atime, true
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       len(c.entries),
		Bytes:     c.used,
		Budget:    c.budget,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
