package handlers

import (
	"context"
	"net/http"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// AppointmentService defines the interface for appointment operations
type AppointmentService interface {
	BookAppointment(ctx context.Context, req *entities.AppointmentRequest) (*entities.Appointment, error)
}

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
	}
}

// BookAppointment handles POST /api/appointments
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req entities.AppointmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	appointment, err := h.service.BookAppointment(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, appointment)
}
