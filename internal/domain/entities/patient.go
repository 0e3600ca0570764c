package entities

import "time"

// RiskLevel grades a patient in the provider portal.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Patient is a row in the provider portal's patient table.
type Patient struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Age       int       `json:"age" db:"age"`
	Gender    string    `json:"gender" db:"gender"`
	ABHAID    string    `json:"abha_id" db:"abha_id"`
	Phone     string    `json:"phone" db:"phone"`
	Location  string    `json:"location" db:"location"`
	Condition string    `json:"condition" db:"condition"`
	RiskLevel RiskLevel `json:"risk_level" db:"risk_level"`
	LastVisit time.Time `json:"last_visit" db:"last_visit"`
}

// AgeRange is an inclusive age window. A zero Max means no upper bound.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// PatientFilter holds the provider portal's patient-list criteria. String
// fields accept "all" (or empty) to disable that criterion.
type PatientFilter struct {
	AgeRange  AgeRange `json:"age_range"`
	Condition string   `json:"condition"`
	LastVisit string   `json:"last_visit"`
	RiskLevel string   `json:"risk_level"`
	Gender    string   `json:"gender"`
}
