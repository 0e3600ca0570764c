package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/providers"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/migranthealth/careconnect/pkg/validation"
	"golang.org/x/sync/singleflight"
)

// appointmentDateLayout is the booking form's date format.
const appointmentDateLayout = "2006-01-02"

// AppointmentService handles appointment booking logic
type AppointmentService struct {
	doctors repositories.DoctorRepository
	gateway providers.ABDMGateway
	group   singleflight.Group
	now     func() time.Time
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(doctors repositories.DoctorRepository, gateway providers.ABDMGateway) *AppointmentService {
	return &AppointmentService{
		doctors: doctors,
		gateway: gateway,
		now:     time.Now,
	}
}

// BookAppointment validates the booking form against the chosen doctor and
// submits it through the gateway. Identical overlapping submissions share
// one booking.
func (s *AppointmentService) BookAppointment(ctx context.Context, req *entities.AppointmentRequest) (*entities.Appointment, error) {
	// 1. Validate form
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	scheduled, err := time.Parse(appointmentDateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if scheduled.Before(today) {
		return nil, apperrors.NewValidationError("cannot book appointment in the past")
	}

	// 2. Check doctor and appointment type
	doctor, err := s.doctors.GetByID(ctx, strings.TrimSpace(req.DoctorID))
	if err != nil {
		return nil, err
	}
	if !doctor.Available {
		return nil, apperrors.NewConflictError(fmt.Sprintf("%s is not accepting bookings", doctor.Name))
	}
	fee, ok := doctor.Fees[req.AppointmentType]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("appointment_type %q is not offered by %s", req.AppointmentType, doctor.Name))
	}

	key := strings.Join([]string{doctor.ID, strings.ToLower(strings.TrimSpace(req.PatientName)), req.Date, req.TimeSlot, req.AppointmentType}, "|")
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.submit(context.WithoutCancel(ctx), req, doctor, fee, scheduled)
	})

	// 3. Wait for the gateway
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entities.Appointment), nil
	}
}

func (s *AppointmentService) submit(ctx context.Context, req *entities.AppointmentRequest, doctor *entities.Doctor, fee string, scheduled time.Time) (*entities.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGatewayTimeout)
	defer cancel()

	appointment := &entities.Appointment{
		ID:              uuid.New().String(),
		DoctorID:        doctor.ID,
		DoctorName:      doctor.Name,
		PatientName:     strings.TrimSpace(req.PatientName),
		PatientPhone:    req.PatientPhone,
		ABHAID:          req.ABHAID,
		AppointmentType: req.AppointmentType,
		Fee:             fee,
		ScheduledFor:    scheduled,
		TimeSlot:        req.TimeSlot,
		Symptoms:        req.Symptoms,
		Status:          entities.AppointmentStatusPending,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.gateway.SubmitAppointment(ctx, appointment); err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Str("doctor_id", doctor.ID).Msg("appointment submission failed")
		return nil, apperrors.NewExternalError("failed to book with provider", err)
	}

	appointment.Status = entities.AppointmentStatusConfirmed
	observability.LoggerFromContext(ctx).Info().
		Str("appointment_id", appointment.ID).
		Str("doctor_id", doctor.ID).
		Msg("appointment confirmed")
	return appointment, nil
}
