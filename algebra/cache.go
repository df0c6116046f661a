package algebra

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// memo is a grow-only map from string keys to computed values.
// Concurrent misses on one key run compute once; values are never
// invalidated. Stored values must be treated as read-only by callers.
type memo[V any] struct {
	mu     sync.RWMutex
	m      map[string]V
	flight singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

func newMemo[V any]() *memo[V] {
	return &memo[V]{m: make(map[string]V)}
}

// get returns the value for key, computing and storing it on a miss.
// Errors are not cached.
func (c *memo[V]) get(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return v, nil
	}

	res, err, _ := c.flight.Do(key, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		c.misses.Add(1)
		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.m[key] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (c *memo[V]) lookup(key string) (V, bool) {
	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	return v, ok
}

func (c *memo[V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// CacheStats describes one memo table.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

func (c *memo[V]) stats() CacheStats {
	return CacheStats{Entries: c.len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Stats reports the sizes of the reduction and basis-product caches.
type Stats struct {
	Reductions CacheStats
	Products   CacheStats
}
