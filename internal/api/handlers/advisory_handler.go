package handlers

import (
	"net/http"

	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/pkg/validation"
)

// DosageService computes weight-based doses
type DosageService interface {
	Calculate(medicationKey string, weightKg float64, overridePerKg string) (*entities.DosageResult, error)
	Rules() []entities.DosageRule
}

// AdvisoryHandler serves the prescription-pad helpers
type AdvisoryHandler struct {
	checker *services.InteractionChecker
	dosage  DosageService
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(checker *services.InteractionChecker, dosage DosageService) *AdvisoryHandler {
	return &AdvisoryHandler{checker: checker, dosage: dosage}
}

type interactionRequest struct {
	Medications []entities.MedicationEntry `json:"medications"`
}

type dosageRequest struct {
	Medication    string  `json:"medication" validate:"notblank"`
	WeightKg      float64 `json:"weight_kg"`
	OverridePerKg string  `json:"override_per_kg"`
}

// CheckInteractions handles POST /api/advisory/interactions
func (h *AdvisoryHandler) CheckInteractions(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	form := services.NewMedicationForm(req.Medications...)
	interactions := form.Interactions(h.checker)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"interactions": interactions,
		"count":        len(interactions),
	})
}

// CalculateDosage handles POST /api/advisory/dosage
func (h *AdvisoryHandler) CalculateDosage(w http.ResponseWriter, r *http.Request) {
	var req dosageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validation.Struct(&req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.dosage.Calculate(req.Medication, req.WeightKg, req.OverridePerKg)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// ListMedications handles GET /api/advisory/medications
func (h *AdvisoryHandler) ListMedications(w http.ResponseWriter, r *http.Request) {
	rules := h.dosage.Rules()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"medications": rules,
		"count":       len(rules),
	})
}
