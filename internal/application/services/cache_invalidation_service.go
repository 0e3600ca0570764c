package services

import (
	"context"
	"fmt"
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
)

// CacheInvalidationService evicts cached users when user events arrive
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start subscribes to user updates and processes them in the background
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelUserUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to user updates: %w", err)
	}

	s.started = true
	go s.processEvents(eventChan)
	observability.GetLogger().Info().Str("channel", providers.EventChannelUserUpdates).Msg("cache invalidation service started")
	return nil
}

// Stop stops processing and waits for the worker to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	if s.started {
		<-s.done
	}
	observability.GetLogger().Info().Msg("cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.UserEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.UserEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := observability.GetLogger()
	if err := s.InvalidateUser(ctx, event.UserID); err != nil {
		logger.Warn().Err(err).Str("event_id", event.ID).Str("user_id", event.UserID).Msg("cache invalidation failed")
		return
	}
	logger.Debug().Str("event_id", event.ID).Str("user_id", event.UserID).Str("type", string(event.Type)).Msg("user cache invalidated")
}

// InvalidateUser drops the cached user and the cached user list
func (s *CacheInvalidationService) InvalidateUser(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, providers.UserCacheKey(userID), providers.UserListCacheKey); err != nil {
		return fmt.Errorf("failed to invalidate user %s: %w", userID, err)
	}
	return nil
}
