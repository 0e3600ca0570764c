package events

import (
	"testing"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisEventBus_DispatchFansOut(t *testing.T) {
	bus := NewRedisEventBus(nil)
	bus.mu.Lock()
	a := bus.addSubscriberLocked(providers.EventChannelUserUpdates)
	b := bus.addSubscriberLocked(providers.EventChannelUserUpdates)
	other := bus.addSubscriberLocked("other")
	bus.mu.Unlock()

	bus.dispatch(providers.EventChannelUserUpdates, `{"id":"evt-1","type":"user.deleted","user_id":"u1"}`)

	for _, ch := range []chan *entities.UserEvent{a, b} {
		require.Len(t, ch, 1)
		ev := <-ch
		assert.Equal(t, "evt-1", ev.ID)
		assert.Equal(t, entities.UserEventDeleted, ev.Type)
		assert.Equal(t, "u1", ev.UserID)
	}
	assert.Empty(t, other)
}

func TestRedisEventBus_DispatchDropsBadPayload(t *testing.T) {
	bus := NewRedisEventBus(nil)
	bus.mu.Lock()
	ch := bus.addSubscriberLocked(providers.EventChannelUserUpdates)
	bus.mu.Unlock()

	bus.dispatch(providers.EventChannelUserUpdates, "not json")

	assert.Empty(t, ch)
}

func TestRedisEventBus_DispatchSkipsFullSubscriber(t *testing.T) {
	bus := NewRedisEventBus(nil)
	bus.mu.Lock()
	ch := bus.addSubscriberLocked(providers.EventChannelUserUpdates)
	bus.mu.Unlock()

	for i := 0; i < subscriberBuffer+5; i++ {
		bus.dispatch(providers.EventChannelUserUpdates, `{"id":"e"}`)
	}

	assert.Len(t, ch, subscriberBuffer)
}

func TestRedisEventBus_CloseClosesSubscribers(t *testing.T) {
	bus := NewRedisEventBus(nil)
	bus.mu.Lock()
	ch := bus.addSubscriberLocked(providers.EventChannelUserUpdates)
	bus.mu.Unlock()

	require.NoError(t, bus.Close())

	_, open := <-ch
	assert.False(t, open)
}
