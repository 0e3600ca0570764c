package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

// UserService implements the user CRUD operations
type UserService struct {
	repo     repositories.UserRepository
	eventBus providers.EventBus
	now      func() time.Time
}

// NewUserService creates a new user service. eventBus may be nil.
func NewUserService(repo repositories.UserRepository, eventBus providers.EventBus) *UserService {
	return &UserService{
		repo:     repo,
		eventBus: eventBus,
		now:      time.Now,
	}
}

// Create validates and stores a new user. id and name are required.
func (s *UserService) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	user.ID = strings.TrimSpace(user.ID)
	user.Name = strings.TrimSpace(user.Name)
	if user.ID == "" {
		return nil, apperrors.NewRequiredFieldError("id")
	}
	if user.Name == "" {
		return nil, apperrors.NewRequiredFieldError("name")
	}

	now := s.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, entities.UserEventCreated, user.ID)
	return user, nil
}

// Get returns a single user
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.repo.List(ctx)
}

// Update replaces the user stored under id. name is required; the stored
// creation time is kept.
func (s *UserService) Update(ctx context.Context, id string, user *entities.User) (*entities.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return nil, apperrors.NewRequiredFieldError("name")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, entities.UserEventUpdated, user.ID)
	return user, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, entities.UserEventDeleted, id)
	return nil
}

// publish is best effort; a lost event only delays cache expiry to its TTL.
func (s *UserService) publish(ctx context.Context, eventType entities.UserEventType, userID string) {
	if s.eventBus == nil {
		return
	}

	event := &entities.UserEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: s.now().UTC(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelUserUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("user_id", userID).
			Str("event_type", string(eventType)).
			Msg("failed to publish user event")
	}
}
