// Package memory holds the in-memory storage driver. It is the default
// STORE_DRIVER and the one every handler test runs against.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

// UserStore keeps users in a map guarded by a RWMutex.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

var _ repositories.UserRepository = (*UserStore)(nil)

// NewUserStore creates an empty user store
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]entities.User)}
}

// Create stores a new user
func (s *UserStore) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("user %s already exists", user.ID))
	}
	s.users[user.ID] = *user
	return nil
}

// GetByID returns a copy of the stored user
func (s *UserStore) GetByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	return &user, nil
}

// List returns every user ordered by id
func (s *UserStore) List(ctx context.Context) ([]*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entities.User, 0, len(s.users))
	for id := range s.users {
		user := s.users[id]
		users = append(users, &user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Update replaces an existing user
func (s *UserStore) Update(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", user.ID))
	}
	s.users[user.ID] = *user
	return nil
}

// Delete removes a user
func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", id))
	}
	delete(s.users, id)
	return nil
}
