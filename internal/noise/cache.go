package noise

import (
	"sync"

	"github.com/brentp/intintmap"
)

// DefaultCacheSize bounds the number of per-seed entries a backend keeps.
const DefaultCacheSize = 1024

// seedCache memoises values that are a pure function of a seed. Lookups take
// the read lock only; a miss builds the value under the write lock. When the
// cache is full it is emptied and refilled.
type seedCache[T any] struct {
	mu    sync.RWMutex
	slots *intintmap.Map
	items []T
	limit int
	build func(seed int64) T
}

func newSeedCache[T any](limit int, build func(seed int64) T) *seedCache[T] {
	if limit <= 0 {
		limit = DefaultCacheSize
	}
	return &seedCache[T]{
		slots: intintmap.New(64, 0.6),
		limit: limit,
		build: build,
	}
}

func (c *seedCache[T]) get(seed int64) T {
	c.mu.RLock()
	if slot, ok := c.slots.Get(seed); ok {
		v := c.items[slot]
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if slot, ok := c.slots.Get(seed); ok {
		return c.items[slot]
	}
	if len(c.items) >= c.limit {
		c.slots = intintmap.New(64, 0.6)
		c.items = c.items[:0]
	}
	v := c.build(seed)
	c.items = append(c.items, v)
	c.slots.Put(seed, int64(len(c.items)-1))
	return v
}

func (c *seedCache[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
