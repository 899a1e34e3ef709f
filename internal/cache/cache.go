// Package cache stores fetched article text so repeated analyses of the
// same URL skip the network.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores article text keyed by source URL. Implementations hash the
// URL themselves, so callers never handle raw cache keys.
type Cache interface {
	Get(url string) (string, bool)
	Set(url, text string, ttl time.Duration) error
	Delete(url string) error
	Clear() error
}

// Key derives the versioned storage key for a URL. Bump the prefix when the
// cached payload shape changes so stale entries miss instead of mislead.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "veracity:v1:" + hex.EncodeToString(hash[:])
}
