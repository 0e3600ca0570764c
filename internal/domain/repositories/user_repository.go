package repositories

import (
	"context"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// UserRepository defines the interface for user data operations.
// Implementations return *errors.AppError values: NOT_FOUND for unknown
// ids and CONFLICT when Create meets an existing id.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// List returns all users ordered by id
	List(ctx context.Context) ([]*entities.User, error)

	// Update replaces a user
	Update(ctx context.Context, user *entities.User) error

	// Delete deletes a user
	Delete(ctx context.Context, id string) error
}
