package handlers

import (
	"net/http"
	"strings"

	"github.com/migranthealth/careconnect/internal/application/services"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

// RecordHandler handles health record requests
type RecordHandler struct {
	recordRepo repositories.RecordRepository
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordRepo repositories.RecordRepository) *RecordHandler {
	return &RecordHandler{recordRepo: recordRepo}
}

// ListRecords handles GET /api/records?category=lab&category=imaging&q=text
//
// Categories are applied in the order given, the same way the category
// chips toggle: a specific category displaces "all" and vice versa.
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	selected := []string{string(entities.CategoryAll)}
	for _, raw := range r.URL.Query()["category"] {
		category := strings.ToLower(strings.TrimSpace(raw))
		if category == "" {
			continue
		}
		if !entities.RecordCategory(category).IsValid() {
			writeError(w, r, apperrors.NewValidationError("category "+category+" is invalid"))
			return
		}
		if contains(selected, category) {
			continue
		}
		selected = services.ToggleCategory(selected, category)
	}

	records, err := h.recordRepo.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	matched := services.FilterRecords(records, selected, r.URL.Query().Get("q"))
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"records":    matched,
		"categories": selected,
		"count":      len(matched),
	})
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
