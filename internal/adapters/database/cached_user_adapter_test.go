package database

import (
	"context"
	"errors"
	"testing"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type memoryCache struct {
	data    map[string][]byte
	ttls    map[string]int
	getErr  error
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]int{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	v, ok := c.data[key]
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return v, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl int) error {
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

func TestCachedUserAdapter_GetByIDReadsThrough(t *testing.T) {
	repo := new(mockUserRepository)
	cache := newMemoryCache()
	adapter := NewCachedUserAdapter(repo, cache, 120)

	repo.On("GetByID", mock.Anything, "u1").Return(&entities.User{ID: "u1", Name: "Asha"}, nil).Once()

	first, err := adapter.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	second, err := adapter.GetByID(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 120, cache.ttls[providers.UserCacheKey("u1")])
	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestCachedUserAdapter_CacheFailureFallsBack(t *testing.T) {
	repo := new(mockUserRepository)
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	adapter := NewCachedUserAdapter(repo, cache, 60)

	repo.On("List", mock.Anything).Return([]*entities.User{{ID: "a"}}, nil).Twice()

	for i := 0; i < 2; i++ {
		users, err := adapter.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, users, 1)
	}
	repo.AssertExpectations(t)
}

func TestCachedUserAdapter_NotFoundNotCached(t *testing.T) {
	repo := new(mockUserRepository)
	cache := newMemoryCache()
	adapter := NewCachedUserAdapter(repo, cache, 60)

	repo.On("GetByID", mock.Anything, "x").Return(nil, apperrors.NewNotFoundError("user x not found"))

	_, err := adapter.GetByID(context.Background(), "x")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	assert.Empty(t, cache.data)
}

func TestCachedUserAdapter_WritesEvict(t *testing.T) {
	repo := new(mockUserRepository)
	cache := newMemoryCache()
	adapter := NewCachedUserAdapter(repo, cache, 60)
	ctx := context.Background()

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	repo.On("Delete", mock.Anything, "u1").Return(nil)

	require.NoError(t, adapter.Create(ctx, &entities.User{ID: "u1"}))
	assert.Equal(t, []string{providers.UserListCacheKey}, cache.deleted)

	cache.deleted = nil
	require.NoError(t, adapter.Update(ctx, &entities.User{ID: "u1"}))
	assert.Equal(t, []string{providers.UserCacheKey("u1"), providers.UserListCacheKey}, cache.deleted)

	cache.deleted = nil
	require.NoError(t, adapter.Delete(ctx, "u1"))
	assert.Equal(t, []string{providers.UserCacheKey("u1"), providers.UserListCacheKey}, cache.deleted)
}

func TestCachedUserAdapter_FailedWriteKeepsCache(t *testing.T) {
	repo := new(mockUserRepository)
	cache := newMemoryCache()
	adapter := NewCachedUserAdapter(repo, cache, 60)

	repo.On("Delete", mock.Anything, "u1").Return(apperrors.NewNotFoundError("user u1 not found"))

	err := adapter.Delete(context.Background(), "u1")

	assert.Error(t, err)
	assert.Empty(t, cache.deleted)
}
