package services

import (
	"context"
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
)

// DefaultNavigationDelay separates the spoken acknowledgement from the
// screen change.
const DefaultNavigationDelay = 1500 * time.Millisecond

// VoiceAssistant answers utterances and schedules the follow-up navigation.
type VoiceAssistant struct {
	matcher *IntentMatcher
	delay   time.Duration
}

// NewVoiceAssistant creates a voice assistant. A negative delay is treated
// as zero.
func NewVoiceAssistant(matcher *IntentMatcher, delay time.Duration) *VoiceAssistant {
	if delay < 0 {
		delay = 0
	}
	return &VoiceAssistant{matcher: matcher, delay: delay}
}

// Respond matches utterance and reports how long the client should wait
// before navigating. The wait is zero for help.
func (a *VoiceAssistant) Respond(utterance string) (entities.IntentMatch, time.Duration) {
	match := a.matcher.Match(utterance)
	if match.Action == "" {
		return match, 0
	}
	return match, a.delay
}

// Handle is for clients that embed the assistant and own navigation; the
// HTTP API uses Respond and leaves the wait to the caller.
//
// Handle matches utterance and, on a navigable intent, calls nav after the
// configured delay. The returned channel yields the navigation result (or
// ctx's error if ctx ends first) and is then closed. For help it is closed
// immediately.
func (a *VoiceAssistant) Handle(ctx context.Context, utterance string, nav providers.Navigator) (entities.IntentMatch, <-chan error) {
	match, delay := a.Respond(utterance)
	done := make(chan error, 1)
	if match.Action == "" {
		close(done)
		return match, done
	}

	go func() {
		defer close(done)
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			done <- ctx.Err()
		case <-timer.C:
			err := nav.Navigate(ctx, match.Action)
			if err != nil {
				observability.LoggerFromContext(ctx).Warn().
					Err(err).
					Str("action", match.Action).
					Msg("voice navigation failed")
			}
			done <- err
		}
	}()
	return match, done
}
