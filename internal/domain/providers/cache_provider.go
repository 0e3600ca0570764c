package providers

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by CacheProvider.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheProvider defines the interface for caching operations
type CacheProvider interface {
	// Get retrieves a value from cache, or ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes keys from cache
	Delete(ctx context.Context, keys ...string) error
}

// UserListCacheKey holds the cached result of listing every user.
const UserListCacheKey = "users:list"

// UserCacheKey is the cache key of a single user.
func UserCacheKey(id string) string {
	return "users:" + id
}
