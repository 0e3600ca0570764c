package fixtures

import (
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// Patients returns the provider portal's sample patients. Last visits are
// expressed relative to now so the list stays meaningful for date filters.
func Patients(now time.Time) []entities.Patient {
	day := 24 * time.Hour
	return []entities.Patient{
		{ID: "pat-1", Name: "Ramesh Yadav", Age: 34, Gender: "male", ABHAID: "14-1234-5678-9012", Phone: "+919811000001", Location: "Okhla, Delhi", Condition: "diabetes", RiskLevel: entities.RiskMedium, LastVisit: now.Add(-3 * day)},
		{ID: "pat-2", Name: "Sunita Devi", Age: 28, Gender: "female", ABHAID: "14-2345-6789-0123", Phone: "+919811000002", Location: "Gurugram, Haryana", Condition: "anemia", RiskLevel: entities.RiskLow, LastVisit: now.Add(-20 * day)},
		{ID: "pat-3", Name: "Mohammed Ali", Age: 52, Gender: "male", ABHAID: "14-3456-7890-1234", Phone: "+919811000003", Location: "Noida, UP", Condition: "hypertension", RiskLevel: entities.RiskHigh, LastVisit: now.Add(-45 * day)},
		{ID: "pat-4", Name: "Lakshmi Naidu", Age: 41, Gender: "female", ABHAID: "14-4567-8901-2345", Phone: "+919811000004", Location: "Faridabad, Haryana", Condition: "tuberculosis", RiskLevel: entities.RiskHigh, LastVisit: now.Add(-6 * day)},
		{ID: "pat-5", Name: "Birju Mahato", Age: 19, Gender: "male", ABHAID: "14-5678-9012-3456", Phone: "+919811000005", Location: "Okhla, Delhi", Condition: "injury", RiskLevel: entities.RiskLow, LastVisit: now.Add(-200 * day)},
		{ID: "pat-6", Name: "Fatima Begum", Age: 63, Gender: "female", ABHAID: "14-6789-0123-4567", Phone: "+919811000006", Location: "Shaheen Bagh, Delhi", Condition: "diabetes", RiskLevel: entities.RiskHigh, LastVisit: now.Add(-400 * day)},
	}
}
