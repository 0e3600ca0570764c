package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

// PatientHandler serves the provider portal's patient table
type PatientHandler struct {
	patientRepo repositories.PatientRepository
	now         func() time.Time
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientRepo repositories.PatientRepository) *PatientHandler {
	return &PatientHandler{
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

// ListPatients handles GET /api/patients
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientRepo.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, patients)
}

// FilterPatients handles GET /api/provider/patients
func (h *PatientHandler) FilterPatients(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePatientFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	patients, err := h.patientRepo.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	matched := services.FilterPatients(patients, filter, h.now())
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patients": matched,
		"count":    len(matched),
		"total":    len(patients),
	})
}

func parsePatientFilter(r *http.Request) (entities.PatientFilter, error) {
	q := r.URL.Query()
	filter := entities.PatientFilter{
		Condition: q.Get("condition"),
		LastVisit: strings.ToLower(q.Get("last_visit")),
		RiskLevel: q.Get("risk"),
		Gender:    q.Get("gender"),
	}

	var err error
	if filter.AgeRange.Min, err = queryInt(q.Get("min_age"), "min_age"); err != nil {
		return filter, err
	}
	if filter.AgeRange.Max, err = queryInt(q.Get("max_age"), "max_age"); err != nil {
		return filter, err
	}
	if filter.AgeRange.Max != 0 && filter.AgeRange.Max < filter.AgeRange.Min {
		return filter, apperrors.NewValidationError("max_age must not be below min_age")
	}
	if !services.ValidLastVisit(filter.LastVisit) {
		return filter, apperrors.NewValidationError("last_visit is invalid")
	}
	return filter, nil
}

func queryInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, apperrors.NewValidationError(name + " is invalid")
	}
	return v, nil
}
