package handlers

import (
	"net/http"
	"strings"

	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
)

// DoctorHandler handles doctor picker requests
type DoctorHandler struct {
	doctorRepo repositories.DoctorRepository
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(doctorRepo repositories.DoctorRepository) *DoctorHandler {
	return &DoctorHandler{doctorRepo: doctorRepo}
}

// ListDoctors handles GET /api/doctors?specialty=&q=&sort=
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	doctors, err := h.doctorRepo.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	sortKey := entities.DoctorSortKey(strings.ToLower(q.Get("sort")))
	matched := services.FilterAndSortDoctors(doctors, strings.ToLower(q.Get("specialty")), q.Get("q"), sortKey)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"doctors": matched,
		"count":   len(matched),
	})
}

// GetDoctor handles GET /api/doctors/{id}
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorRepo.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doctor)
}
