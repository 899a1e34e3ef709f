package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps article text in memory with per-entry TTL. Text is
// stored as a string so repeated hits share one allocation.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves the cached article text for a URL
func (c *MemoryCache) Get(url string) (string, bool) {
	if val, found := c.cache.Get(Key(url)); found {
		return val.(string), true
	}
	return "", false
}

// Set stores article text for a URL with the given TTL
func (c *MemoryCache) Set(url, text string, ttl time.Duration) error {
	c.cache.Set(Key(url), text, ttl)
	return nil
}

// Delete removes the entry for a URL
func (c *MemoryCache) Delete(url string) error {
	c.cache.Delete(Key(url))
	return nil
}

// Clear removes all entries
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
