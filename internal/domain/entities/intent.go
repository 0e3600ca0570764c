package entities

// Intent is a voice-command category.
type Intent string

const (
	IntentOpenRecords       Intent = "openRecords"
	IntentOpenPrescriptions Intent = "openPrescriptions"
	IntentBookAppointment   Intent = "bookAppointment"
	IntentOpenProfile       Intent = "openProfile"
	IntentSetReminder       Intent = "setReminder"
	IntentHelp              Intent = "help"
)

// IntentMatch is the matcher's answer to an utterance. Action names the
// screen to navigate to and is empty for IntentHelp.
type IntentMatch struct {
	Intent       Intent `json:"intent"`
	Action       string `json:"action,omitempty"`
	ResponseText string `json:"response_text"`
}
