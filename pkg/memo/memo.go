// Package memo provides a small bounded cache with least-recently-used
// eviction, used to memoize derived class strings and rendered fragments.
//
// The cache is an accelerator only: callers must produce identical results
// with and without it, so clearing it mid-flight is always safe.
package memo

import (
	"container/list"
	"sync"
)

// Stats reports cumulative cache activity since creation or the last Clear.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

type entry[V any] struct {
	key   string
	value V
}

// Cache is a mutex-guarded LRU cache keyed by canonical prop strings.
// A zero capacity is not usable; construct instances with New.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[string]*list.Element
	stats    Stats
}

// New creates a cache bounded to capacity entries. Capacities below one are
// clamped to one so the cache always holds at least the most recent entry.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached value for key and promotes the entry to
// most-recently-used. The second return reports whether key was present.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.order.MoveToFront(elem)
	c.stats.Hits++
	return elem.Value.(*entry[V]).value, true
}

// Set stores value under key as the most-recently-used entry. Storing an
// existing key replaces its value without eviction; storing a new key past
// capacity evicts the least-recently-used entry.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

// evictOldest removes the back of the recency list. Callers hold c.mu.
func (c *Cache[V]) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.items, oldest.Value.(*entry[V]).key)
	c.stats.Evictions++
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the configured entry bound.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Clear removes every entry and resets statistics. Clearing never changes
// what callers compute; it only discards memoized work.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element, c.capacity)
	c.stats = Stats{}
}

// Stats returns a snapshot of hit, miss and eviction counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
