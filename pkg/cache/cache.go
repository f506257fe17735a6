package cache

import (
	"context"
	"time"
)

// NoExpiration is a TTL that keeps an entry until it is deleted or evicted.
const NoExpiration time.Duration = -1

// Cache is a generic key-value cache with TTL support.
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Len returns the number of stored entries, including expired ones
	// not yet swept.
	Len() int

	// Close releases resources. Close is idempotent.
	Close() error
}
