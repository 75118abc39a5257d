// package cache implements time-bounded in-memory memoization
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache memoizes computed values by key with a fixed time-to-live. On lookup
// an expired entry is recomputed and replaced; errors are never cached. The
// zero lifetime is process start to process exit, nothing is persisted.
//
// Loads run inside bubbletea command goroutines, so access is mutex-guarded.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[K]entry[V]
	now     func() time.Time
}

// New creates a Cache with the given time-to-live.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:     ttl,
		entries: make(map[K]entry[V]),
		now:     time.Now,
	}
}

// Do returns the cached value for key, computing and storing it via fn on a
// miss or when the cached value is older than the TTL.
func (c *Cache[K, V]) Do(key K, fn func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && c.now().Sub(e.storedAt) < c.ttl {
		return e.value, nil
	}

	value, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
	return value, nil
}

// Len returns the number of cached entries, including expired ones.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all cached entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}

// SetClock overrides the cache's time source. Test hook.
func (c *Cache[K, V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
