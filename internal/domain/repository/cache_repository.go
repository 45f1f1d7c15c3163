package repository

import (
	"context"
	"time"
)

// CacheRepository is a key-value cache with TTL semantics.
type CacheRepository interface {
	// Set stores a value under key with the given expiration.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves the value for key. A cache miss is reported through
	// an error recognized by IsNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// IsNotFound reports whether err denotes a cache miss.
	IsNotFound(err error) bool
}
