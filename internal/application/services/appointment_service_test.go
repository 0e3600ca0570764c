package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/fixtures"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) List(ctx context.Context) ([]entities.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Doctor), args.Error(1)
}

func doctorByID(id string) *entities.Doctor {
	for _, d := range fixtures.Doctors() {
		if d.ID == id {
			d := d
			return &d
		}
	}
	return nil
}

func bookingRequest() *entities.AppointmentRequest {
	return &entities.AppointmentRequest{
		DoctorID:        "doc-1",
		PatientName:     "Ramesh Yadav",
		PatientPhone:    "+919811000001",
		AppointmentType: entities.FeeConsultation,
		Date:            time.Now().Add(48 * time.Hour).Format("2006-01-02"),
		TimeSlot:        "10:00 AM",
	}
}

func TestAppointmentService_BookAppointment(t *testing.T) {
	t.Run("successfully books appointment", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		gateway := new(MockABDMGateway)
		service := services.NewAppointmentService(doctors, gateway)

		doctors.On("GetByID", mock.Anything, "doc-1").Return(doctorByID("doc-1"), nil)
		gateway.On("SubmitAppointment", mock.Anything, mock.MatchedBy(func(a *entities.Appointment) bool {
			return a.DoctorID == "doc-1" && a.Fee == "₹500" && a.Status == entities.AppointmentStatusPending
		})).Return(nil)

		appt, err := service.BookAppointment(context.Background(), bookingRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, appt.ID)
		assert.Equal(t, "Dr. Priya Sharma", appt.DoctorName)
		assert.Equal(t, entities.AppointmentStatusConfirmed, appt.Status)
		doctors.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(r *entities.AppointmentRequest)
			wantErr string
		}{
			{"missing patient", func(r *entities.AppointmentRequest) { r.PatientName = " " }, "VALIDATION: patient_name required"},
			{"missing date", func(r *entities.AppointmentRequest) { r.Date = "" }, "VALIDATION: date required"},
			{"bad date", func(r *entities.AppointmentRequest) { r.Date = "tomorrow" }, "VALIDATION: date must be YYYY-MM-DD"},
			{"past date", func(r *entities.AppointmentRequest) { r.Date = "2020-01-01" }, "VALIDATION: cannot book appointment in the past"},
			{"bad abha", func(r *entities.AppointmentRequest) { r.ABHAID = "abc" }, "VALIDATION: abha_id is invalid"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service := services.NewAppointmentService(new(MockDoctorRepository), new(MockABDMGateway))
				req := bookingRequest()
				tt.mutate(req)

				_, err := service.BookAppointment(context.Background(), req)
				assert.EqualError(t, err, tt.wantErr)
			})
		}
	})

	t.Run("unavailable doctor", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		gateway := new(MockABDMGateway)
		service := services.NewAppointmentService(doctors, gateway)
		doctors.On("GetByID", mock.Anything, "doc-3").Return(doctorByID("doc-3"), nil)

		req := bookingRequest()
		req.DoctorID = "doc-3"
		_, err := service.BookAppointment(context.Background(), req)

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
		gateway.AssertNotCalled(t, "SubmitAppointment", mock.Anything, mock.Anything)
	})

	t.Run("unknown appointment type", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		service := services.NewAppointmentService(doctors, new(MockABDMGateway))
		doctors.On("GetByID", mock.Anything, "doc-1").Return(doctorByID("doc-1"), nil)

		req := bookingRequest()
		req.AppointmentType = "home-visit"
		_, err := service.BookAppointment(context.Background(), req)

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("unknown doctor", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		service := services.NewAppointmentService(doctors, new(MockABDMGateway))
		doctors.On("GetByID", mock.Anything, "doc-1").Return(nil, apperrors.NewNotFoundError("doctor not found"))

		_, err := service.BookAppointment(context.Background(), bookingRequest())

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})

	t.Run("gateway failure", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		gateway := new(MockABDMGateway)
		service := services.NewAppointmentService(doctors, gateway)
		doctors.On("GetByID", mock.Anything, "doc-1").Return(doctorByID("doc-1"), nil)
		gateway.On("SubmitAppointment", mock.Anything, mock.Anything).Return(errors.New("facility offline"))

		_, err := service.BookAppointment(context.Background(), bookingRequest())

		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeExternal))
	})

	t.Run("double submit books once", func(t *testing.T) {
		doctors := new(MockDoctorRepository)
		gateway := new(MockABDMGateway)
		service := services.NewAppointmentService(doctors, gateway)
		release := make(chan struct{})
		doctors.On("GetByID", mock.Anything, "doc-1").Return(doctorByID("doc-1"), nil)
		gateway.On("SubmitAppointment", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { <-release }).
			Return(nil).
			Once()

		var wg sync.WaitGroup
		ids := make([]string, 2)
		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				appt, err := service.BookAppointment(context.Background(), bookingRequest())
				if assert.NoError(t, err) {
					ids[i] = appt.ID
				}
			}(i)
		}

		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, ids[0], ids[1])
		gateway.AssertNumberOfCalls(t, "SubmitAppointment", 1)
	})
}
