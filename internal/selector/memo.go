package selector

import (
	"sync"
)

// entry is one memoized result, valid for exactly one store version.
type entry struct {
	version uint64
	value   any
}

// Cache memoizes selector results keyed by computation fingerprint and store
// version. Invalidation is driven solely by version changes: a lookup against
// a different version misses and the stale entry is overwritten on the next
// store. There is no manual reset.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

func (c *Cache) get(key string, version uint64) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.version != version {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) set(key string, version uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{version: version, value: value}
}

// Len returns the number of cached entries, current or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
