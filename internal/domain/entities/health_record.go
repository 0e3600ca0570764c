package entities

// RecordCategory tags a health record. CategoryAll is the selection sentinel
// meaning "no category filter" and never appears on a record.
type RecordCategory string

const (
	CategoryAll          RecordCategory = "all"
	CategoryPrescription RecordCategory = "prescription"
	CategoryLab          RecordCategory = "lab"
	CategoryImaging      RecordCategory = "imaging"
	CategoryVaccination  RecordCategory = "vaccination"
	CategoryConsultation RecordCategory = "consultation"
	CategoryDischarge    RecordCategory = "discharge"
)

// RecordCategories lists every category a record may carry, in display order.
var RecordCategories = []RecordCategory{
	CategoryPrescription,
	CategoryLab,
	CategoryImaging,
	CategoryVaccination,
	CategoryConsultation,
	CategoryDischarge,
}

// IsValid reports whether c is "all" or a known record category.
func (c RecordCategory) IsValid() bool {
	if c == CategoryAll {
		return true
	}
	for _, known := range RecordCategories {
		if c == known {
			return true
		}
	}
	return false
}

// HealthRecord is a read-only entry in a patient's record list.
type HealthRecord struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Category RecordCategory `json:"category"`
	Date     string         `json:"date"`
	Hospital string         `json:"hospital"`
	Doctor   string         `json:"doctor"`
}
