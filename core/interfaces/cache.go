// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for one cache tier.
// Implementations back the durable tier (SQLite, Redis) and the
// ephemeral tier (in-process memory).
//
// Example usage:
//
//	tier := someCache // implements Cache interface
//
//	// Store a serialized entry
//	err := tier.Set(ctx, "news:full", entryJSON, 24*time.Hour)
//
//	// Retrieve it
//	data, err := tier.Get(ctx, "news:full")
//	if err != nil {
//		// handle error or cache miss
//	}
//
//	// Drop it
//	err = tier.Delete(ctx, "news:full")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
