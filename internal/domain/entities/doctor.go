package entities

// Fee keys used in Doctor.Fees
const (
	FeeConsultation = "consultation"
	FeeVideo        = "video"
	FeeFollowUp     = "followUp"
)

// SpecialtyAll selects every specialty in the doctor list.
const SpecialtyAll = "all"

// Doctor is a bookable practitioner shown in the doctor picker.
type Doctor struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Specialty     string            `json:"specialty"`
	SpecialtyName string            `json:"specialtyName"`
	Hospital      string            `json:"hospital"`
	Rating        float64           `json:"rating"`
	Distance      string            `json:"distance"`
	Fees          map[string]string `json:"fees"`
	Available     bool              `json:"available"`
	NextSlot      string            `json:"nextSlot"`
	Languages     []string          `json:"languages,omitempty"`
}

// DoctorSortKey selects the ordering applied by the doctor list.
type DoctorSortKey string

const (
	SortByDistance     DoctorSortKey = "distance"
	SortByRating       DoctorSortKey = "rating"
	SortByFees         DoctorSortKey = "fees"
	SortByAvailability DoctorSortKey = "availability"
)
