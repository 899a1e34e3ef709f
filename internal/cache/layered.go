package cache

import "time"

// LayeredCache implements a multi-layer cache (memory + disk)
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache creates a new layered cache
func NewLayeredCache(memoryTTL time.Duration, diskDir string, diskTTL time.Duration) *LayeredCache {
	return &LayeredCache{
		memory: NewMemoryCache(memoryTTL, 10*time.Minute),
		disk:   NewDiskCache(diskDir, diskTTL),
	}
}

// Get checks memory first, then disk, promoting disk hits to memory
func (c *LayeredCache) Get(url string) (string, bool) {
	if text, found := c.memory.Get(url); found {
		return text, true
	}

	if text, found := c.disk.Get(url); found {
		_ = c.memory.Set(url, text, 0)
		return text, true
	}

	return "", false
}

// Set stores article text in both caches
func (c *LayeredCache) Set(url, text string, ttl time.Duration) error {
	if err := c.memory.Set(url, text, ttl); err != nil {
		return err
	}
	return c.disk.Set(url, text, ttl)
}

// Delete removes the entry from both caches
func (c *LayeredCache) Delete(url string) error {
	_ = c.memory.Delete(url)
	return c.disk.Delete(url)
}

// Clear removes all values from both caches
func (c *LayeredCache) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
