package database

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
)

// CachedUserAdapter wraps a UserRepository with read-through caching.
// Writes evict the affected keys before returning.
type CachedUserAdapter struct {
	adapter repositories.UserRepository
	cache   providers.CacheProvider
	ttl     int
}

// NewCachedUserAdapter creates a new cached user adapter. ttlSeconds
// bounds staleness when an invalidation is lost.
func NewCachedUserAdapter(adapter repositories.UserRepository, cache providers.CacheProvider, ttlSeconds int) repositories.UserRepository {
	return &CachedUserAdapter{
		adapter: adapter,
		cache:   cache,
		ttl:     ttlSeconds,
	}
}

// GetByID retrieves a user by ID with caching
func (a *CachedUserAdapter) GetByID(ctx context.Context, id string) (*entities.User, error) {
	key := providers.UserCacheKey(id)

	var user entities.User
	if a.lookup(ctx, key, &user) {
		return &user, nil
	}

	fetched, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.store(ctx, key, fetched)
	return fetched, nil
}

// List retrieves all users with caching
func (a *CachedUserAdapter) List(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if a.lookup(ctx, providers.UserListCacheKey, &users) {
		return users, nil
	}

	fetched, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}
	a.store(ctx, providers.UserListCacheKey, fetched)
	return fetched, nil
}

// Create creates a user and invalidates the list cache
func (a *CachedUserAdapter) Create(ctx context.Context, user *entities.User) error {
	if err := a.adapter.Create(ctx, user); err != nil {
		return err
	}
	a.evict(ctx, providers.UserListCacheKey)
	return nil
}

// Update updates a user and invalidates its cache entries
func (a *CachedUserAdapter) Update(ctx context.Context, user *entities.User) error {
	if err := a.adapter.Update(ctx, user); err != nil {
		return err
	}
	a.evict(ctx, providers.UserCacheKey(user.ID), providers.UserListCacheKey)
	return nil
}

// Delete deletes a user and invalidates its cache entries
func (a *CachedUserAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	a.evict(ctx, providers.UserCacheKey(id), providers.UserListCacheKey)
	return nil
}

// lookup reports whether key held a decodable value. Cache failures count
// as misses.
func (a *CachedUserAdapter) lookup(ctx context.Context, key string, dst interface{}) bool {
	data, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, providers.ErrCacheMiss) {
			observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to unmarshal cached value")
		return false
	}
	return true
}

func (a *CachedUserAdapter) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, a.ttl); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to cache value")
	}
}

func (a *CachedUserAdapter) evict(ctx context.Context, keys ...string) {
	if err := a.cache.Delete(ctx, keys...); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Strs("keys", keys).Msg("failed to evict cache keys")
	}
}
