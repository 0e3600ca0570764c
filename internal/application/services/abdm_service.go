package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/migranthealth/careconnect/pkg/validation"
	"golang.org/x/sync/singleflight"
)

// defaultGatewayTimeout bounds a shared gateway call once its callers
// have all gone away.
const defaultGatewayTimeout = 30 * time.Second

// ABDMService fronts the ABDM gateway. Identical requests that overlap in
// time share one gateway call, so a double tap yields one operation.
type ABDMService struct {
	gateway providers.ABDMGateway
	group   singleflight.Group
	timeout time.Duration
	metrics *observability.Metrics
}

// NewABDMService creates a new ABDM service
func NewABDMService(gateway providers.ABDMGateway) *ABDMService {
	return &ABDMService{gateway: gateway, timeout: defaultGatewayTimeout}
}

// WithMetrics counts issued gateway calls on m.
func (s *ABDMService) WithMetrics(m *observability.Metrics) *ABDMService {
	s.metrics = m
	return s
}

// GenerateQR returns the ABHA card QR payload for abhaID.
func (s *ABDMService) GenerateQR(ctx context.Context, abhaID string) (*entities.ABHAQRCode, error) {
	abhaID = strings.TrimSpace(abhaID)
	if abhaID == "" {
		return nil, apperrors.NewRequiredFieldError("abha_id")
	}
	if !validation.ValidABHAID(abhaID) {
		return nil, apperrors.NewValidationError("abha_id is invalid")
	}

	v, err := s.shared(ctx, "generate_qr", "qr:"+abhaID, func(ctx context.Context) (interface{}, error) {
		return s.gateway.GenerateQR(ctx, abhaID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.ABHAQRCode), nil
}

// ShareRecords shares the requested records with a facility.
func (s *ABDMService) ShareRecords(ctx context.Context, req *entities.ShareRequest) (*entities.ShareReceipt, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	ids := append([]string(nil), req.RecordIDs...)
	sort.Strings(ids)
	key := "share:" + req.ABHAID + ":" + req.FacilityID + ":" + strings.Join(ids, ",")

	v, err := s.shared(ctx, "share_records", key, func(ctx context.Context) (interface{}, error) {
		return s.gateway.ShareRecords(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.ShareReceipt), nil
}

// shared runs fn once per key among overlapping callers. The call itself
// is detached from any single caller; each caller stops waiting when its
// own ctx ends.
func (s *ABDMService) shared(ctx context.Context, op, key string, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	ch := s.group.DoChan(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		start := time.Now()
		v, err := fn(callCtx)
		observability.RecordABDMCall(ctx, s.metrics, op, err)
		logger := observability.LoggerFromContext(ctx)
		if err != nil {
			logger.Error().Err(err).Str("key", key).Msg("abdm gateway call failed")
			return nil, apperrors.NewExternalError("abdm gateway call failed", err)
		}
		logger.Info().Str("key", key).Dur("elapsed", time.Since(start)).Msg("abdm gateway call completed")
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			observability.LoggerFromContext(ctx).Debug().Str("key", key).Msg("joined in-flight abdm call")
		}
		return res.Val, res.Err
	}
}
