package entities

// MedicationEntry is one user-entered row in a prescription form.
type MedicationEntry struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// InteractionSeverity grades a known drug interaction.
type InteractionSeverity string

const (
	SeverityMinor    InteractionSeverity = "minor"
	SeverityModerate InteractionSeverity = "moderate"
	SeverityMajor    InteractionSeverity = "major"
)

// DrugInteraction describes a known interaction between two drugs. The pair
// is unordered: (Drug1, Drug2) and (Drug2, Drug1) are the same interaction.
type DrugInteraction struct {
	Drug1          string              `json:"drug1"`
	Drug2          string              `json:"drug2"`
	Severity       InteractionSeverity `json:"severity"`
	Description    string              `json:"description"`
	Recommendation string              `json:"recommendation"`
}

// DosageRule is a weight-based dosing entry.
type DosageRule struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	DosagePerKg float64 `json:"dosage_per_kg"`
	Unit        string  `json:"unit"`
	// MaxDailyDose is nil when the medication has no ceiling.
	MaxDailyDose *float64 `json:"max_daily_dose,omitempty"`
	Frequency    string   `json:"frequency"`
}

// DosageResult is the outcome of a dosage calculation.
type DosageResult struct {
	Medication     string   `json:"medication"`
	WeightKg       float64  `json:"weight_kg"`
	DosagePerKg    float64  `json:"dosage_per_kg"`
	CalculatedDose float64  `json:"calculated_dose"`
	DisplayDose    string   `json:"display_dose"`
	Unit           string   `json:"unit"`
	Frequency      string   `json:"frequency"`
	MaxDailyDose   *float64 `json:"max_daily_dose,omitempty"`
	ExceedsMax     bool     `json:"exceeds_max"`
}
