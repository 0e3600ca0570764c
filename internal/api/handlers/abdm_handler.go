package handlers

import (
	"context"
	"net/http"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// ABDMService defines the health-exchange operations
type ABDMService interface {
	GenerateQR(ctx context.Context, abhaID string) (*entities.ABHAQRCode, error)
	ShareRecords(ctx context.Context, req *entities.ShareRequest) (*entities.ShareReceipt, error)
}

// ABDMHandler handles ABHA card and record sharing requests
type ABDMHandler struct {
	service ABDMService
}

// NewABDMHandler creates a new ABDM handler
func NewABDMHandler(service ABDMService) *ABDMHandler {
	return &ABDMHandler{service: service}
}

type qrRequest struct {
	ABHAID string `json:"abha_id"`
}

// GenerateQR handles POST /api/abdm/qr
func (h *ABDMHandler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	var req qrRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	qr, err := h.service.GenerateQR(r.Context(), req.ABHAID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, qr)
}

// ShareRecords handles POST /api/abdm/share
func (h *ABDMHandler) ShareRecords(w http.ResponseWriter, r *http.Request) {
	var req entities.ShareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	receipt, err := h.service.ShareRecords(r.Context(), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, receipt)
}
