package providers

import (
	"context"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// EventChannelUserUpdates carries every UserEvent.
const EventChannelUserUpdates = "users:updates"

// EventBus defines the interface for publishing and subscribing to events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.UserEvent) error

	// Subscribe subscribes to events on a channel until ctx is done
	Subscribe(ctx context.Context, channel string) (<-chan *entities.UserEvent, error)

	// Close closes the event bus and all subscriptions
	Close() error
}
