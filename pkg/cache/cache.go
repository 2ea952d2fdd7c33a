// Package cache provides the byte-oriented cache shared by the fetchers,
// the comparison runner and the HTTP API. Two backends exist: a file cache
// for local CLI runs and a Redis cache for server deployments. A null
// backend disables caching altogether.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
// Implementations are safe for concurrent use. Absent and expired entries
// are reported as misses, not errors.
type Cache interface {
	// Get retrieves the value stored under key. The second return value
	// reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl keeps the entry until
	// it is deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Lifetimes for the two kinds of data the tool caches.
const (
	// TTLDictionary covers fetched dictionary pages. The source corpus is
	// static, so entries live long.
	TTLDictionary = 30 * 24 * time.Hour

	// TTLReport covers computed similarity reports.
	TTLReport = 7 * 24 * time.Hour
)
