// Package abdm adapts the national health exchange. Only a mock gateway
// exists; it answers every call after a fixed delay.
package abdm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
)

// qrValidity is how long a generated ABHA card QR stays scannable.
const qrValidity = 10 * time.Minute

// MockGateway provides deterministic ABDM responses for local development.
type MockGateway struct {
	delay time.Duration
	now   func() time.Time
}

// NewMockGateway creates a mock ABDM gateway that waits delay before
// answering.
func NewMockGateway(delay time.Duration) providers.ABDMGateway {
	return &MockGateway{
		delay: delay,
		now:   time.Now,
	}
}

// GenerateQR returns a signed-looking QR payload for the ABHA id
func (g *MockGateway) GenerateQR(ctx context.Context, abhaID string) (*entities.ABHAQRCode, error) {
	if err := g.wait(ctx, "generate_qr"); err != nil {
		return nil, err
	}

	issued := g.now().UTC()
	payload, err := json.Marshal(map[string]string{
		"abha_id": abhaID,
		"nonce":   uuid.NewString(),
		"iat":     issued.Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("encode qr payload: %w", err)
	}

	return &entities.ABHAQRCode{
		ABHAID:      abhaID,
		Payload:     string(payload),
		GeneratedAt: issued,
		ExpiresAt:   issued.Add(qrValidity),
	}, nil
}

// SubmitAppointment accepts every booking
func (g *MockGateway) SubmitAppointment(ctx context.Context, appointment *entities.Appointment) error {
	return g.wait(ctx, "submit_appointment")
}

// ShareRecords returns a granted consent receipt
func (g *MockGateway) ShareRecords(ctx context.Context, req *entities.ShareRequest) (*entities.ShareReceipt, error) {
	if err := g.wait(ctx, "share_records"); err != nil {
		return nil, err
	}

	return &entities.ShareReceipt{
		ConsentID:  uuid.NewString(),
		ABHAID:     req.ABHAID,
		RecordIDs:  append([]string(nil), req.RecordIDs...),
		FacilityID: req.FacilityID,
		Status:     "GRANTED",
		SharedAt:   g.now().UTC(),
	}, nil
}

func (g *MockGateway) wait(ctx context.Context, op string) error {
	observability.LoggerFromContext(ctx).Debug().
		Str("operation", op).
		Dur("delay", g.delay).
		Msg("mock ABDM call")

	if g.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
