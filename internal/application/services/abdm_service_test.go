package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockABDMGateway struct {
	mock.Mock
}

func (m *MockABDMGateway) GenerateQR(ctx context.Context, abhaID string) (*entities.ABHAQRCode, error) {
	args := m.Called(ctx, abhaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ABHAQRCode), args.Error(1)
}

func (m *MockABDMGateway) SubmitAppointment(ctx context.Context, appointment *entities.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockABDMGateway) ShareRecords(ctx context.Context, req *entities.ShareRequest) (*entities.ShareReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShareReceipt), args.Error(1)
}

const testABHA = "14-1234-5678-9012"

func TestABDMService_GenerateQR(t *testing.T) {
	t.Run("returns gateway payload", func(t *testing.T) {
		gateway := new(MockABDMGateway)
		service := services.NewABDMService(gateway)
		qr := &entities.ABHAQRCode{ABHAID: testABHA, Payload: "abha://" + testABHA}
		gateway.On("GenerateQR", mock.Anything, testABHA).Return(qr, nil).Once()

		got, err := service.GenerateQR(context.Background(), " "+testABHA+" ")

		require.NoError(t, err)
		assert.Equal(t, qr, got)
		gateway.AssertExpectations(t)
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		gateway := new(MockABDMGateway)
		service := services.NewABDMService(gateway)

		_, err := service.GenerateQR(context.Background(), "")
		assert.EqualError(t, err, "VALIDATION: abha_id required")

		_, err = service.GenerateQR(context.Background(), "1234")
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

		gateway.AssertNotCalled(t, "GenerateQR", mock.Anything, mock.Anything)
	})

	t.Run("double tap shares one call", func(t *testing.T) {
		gateway := new(MockABDMGateway)
		service := services.NewABDMService(gateway)
		release := make(chan struct{})
		gateway.On("GenerateQR", mock.Anything, testABHA).
			Run(func(mock.Arguments) { <-release }).
			Return(&entities.ABHAQRCode{ABHAID: testABHA}, nil).
			Once()

		var wg sync.WaitGroup
		results := make([]*entities.ABHAQRCode, 2)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				qr, err := service.GenerateQR(context.Background(), testABHA)
				assert.NoError(t, err)
				results[i] = qr
			}(i)
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Same(t, results[0], results[1])
		gateway.AssertNumberOfCalls(t, "GenerateQR", 1)
	})

	t.Run("gateway failure is external", func(t *testing.T) {
		gateway := new(MockABDMGateway)
		service := services.NewABDMService(gateway)
		gateway.On("GenerateQR", mock.Anything, testABHA).Return(nil, errors.New("timeout"))

		_, err := service.GenerateQR(context.Background(), testABHA)

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
	})

	t.Run("caller cancellation stops waiting", func(t *testing.T) {
		gateway := new(MockABDMGateway)
		service := services.NewABDMService(gateway)
		release := make(chan struct{})
		defer close(release)
		gateway.On("GenerateQR", mock.Anything, testABHA).
			Run(func(mock.Arguments) { <-release }).
			Return(&entities.ABHAQRCode{}, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := service.GenerateQR(ctx, testABHA)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestABDMService_ShareRecords(t *testing.T) {
	t.Run("validates request", func(t *testing.T) {
		service := services.NewABDMService(new(MockABDMGateway))

		_, err := service.ShareRecords(context.Background(), &entities.ShareRequest{ABHAID: testABHA, FacilityID: "fac-1"})
		assert.EqualError(t, err, "VALIDATION: record_ids required")

		_, err = service.ShareRecords(context.Background(), &entities.ShareRequest{ABHAID: testABHA, RecordIDs: []string{"rec-1"}})
		assert.EqualError(t, err, "VALIDATION: facility_id required")
	})

	t.Run("returns receipt", func(t *testing.T) {
		gateway := new(MockABDMGateway)
		service := services.NewABDMService(gateway)
		req := &entities.ShareRequest{ABHAID: testABHA, RecordIDs: []string{"rec-2", "rec-1"}, FacilityID: "fac-1"}
		receipt := &entities.ShareReceipt{ConsentID: "c-1", Status: "shared"}
		gateway.On("ShareRecords", mock.Anything, req).Return(receipt, nil)

		got, err := service.ShareRecords(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "c-1", got.ConsentID)
	})
}
