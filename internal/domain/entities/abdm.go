package entities

import "time"

// ABHAQRCode is the scannable health-ID card payload.
type ABHAQRCode struct {
	ABHAID      string    `json:"abha_id"`
	Payload     string    `json:"payload"`
	GeneratedAt time.Time `json:"generated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ShareRequest asks ABDM to share a set of records with a facility.
type ShareRequest struct {
	ABHAID     string   `json:"abha_id" validate:"required,abha_id"`
	RecordIDs  []string `json:"record_ids" validate:"required,min=1,dive,required"`
	FacilityID string   `json:"facility_id" validate:"notblank"`
	Purpose    string   `json:"purpose"`
}

// ShareReceipt acknowledges a ShareRequest.
type ShareReceipt struct {
	ConsentID  string    `json:"consent_id"`
	ABHAID     string    `json:"abha_id"`
	RecordIDs  []string  `json:"record_ids"`
	FacilityID string    `json:"facility_id"`
	Status     string    `json:"status"`
	SharedAt   time.Time `json:"shared_at"`
}
