package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/migranthealth/careconnect/internal/api/handlers"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAppointmentService defines the mock service
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) BookAppointment(ctx context.Context, req *entities.AppointmentRequest) (*entities.Appointment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Appointment), args.Error(1)
}

const bookingBody = `{"doctor_id":"doc-1","patient_name":"Ramesh","appointment_type":"consultation","date":"2030-01-10","time_slot":"10:00 AM"}`

func TestAppointmentHandler_BookAppointment(t *testing.T) {
	t.Run("successfully books appointment", func(t *testing.T) {
		mockService := new(MockAppointmentService)
		handler := handlers.NewAppointmentHandler(mockService)

		mockService.On("BookAppointment", mock.Anything, mock.MatchedBy(func(r *entities.AppointmentRequest) bool {
			return r.DoctorID == "doc-1" && r.PatientName == "Ramesh"
		})).Return(&entities.Appointment{ID: "apt-1", Status: entities.AppointmentStatusConfirmed}, nil)

		w := httptest.NewRecorder()
		handler.BookAppointment(w, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString(bookingBody)))

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("returns bad request for invalid payload", func(t *testing.T) {
		handler := handlers.NewAppointmentHandler(new(MockAppointmentService))

		w := httptest.NewRecorder()
		handler.BookAppointment(w, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString("invalid-json")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps service errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
		}{
			{apperrors.NewRequiredFieldError("patient_name"), http.StatusBadRequest},
			{apperrors.NewNotFoundError("doctor doc-9 not found"), http.StatusNotFound},
			{apperrors.NewConflictError("Dr. Anjali Verma is not accepting bookings"), http.StatusConflict},
			{apperrors.NewExternalError("abdm gateway call failed", errors.New("timeout")), http.StatusBadGateway},
			{errors.New("service error"), http.StatusInternalServerError},
		}

		for _, c := range cases {
			mockService := new(MockAppointmentService)
			handler := handlers.NewAppointmentHandler(mockService)
			mockService.On("BookAppointment", mock.Anything, mock.Anything).Return(nil, c.err)

			w := httptest.NewRecorder()
			handler.BookAppointment(w, httptest.NewRequest(http.MethodPost, "/api/appointments", bytes.NewBufferString(bookingBody)))

			assert.Equal(t, c.status, w.Code, c.err.Error())
		}
	})
}
