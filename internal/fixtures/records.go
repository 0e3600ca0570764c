// Package fixtures holds the static data sets the screens read from.
package fixtures

import "github.com/migranthealth/careconnect/internal/domain/entities"

// HealthRecords returns the sample record list. Each call returns a fresh slice.
func HealthRecords() []entities.HealthRecord {
	return []entities.HealthRecord{
		{ID: "rec-1", Title: "Complete Blood Count", Category: entities.CategoryLab, Date: "2024-01-15", Hospital: "AIIMS Delhi", Doctor: "Dr. Priya Sharma"},
		{ID: "rec-2", Title: "Hypertension Prescription", Category: entities.CategoryPrescription, Date: "2024-01-10", Hospital: "Safdarjung Hospital", Doctor: "Dr. Rajesh Kumar"},
		{ID: "rec-3", Title: "Chest X-Ray", Category: entities.CategoryImaging, Date: "2023-12-20", Hospital: "Apollo Hospital", Doctor: "Dr. Anjali Verma"},
		{ID: "rec-4", Title: "COVID-19 Booster", Category: entities.CategoryVaccination, Date: "2023-11-05", Hospital: "PHC Okhla", Doctor: "Dr. Suresh Patel"},
		{ID: "rec-5", Title: "General Consultation", Category: entities.CategoryConsultation, Date: "2023-10-18", Hospital: "Mohalla Clinic Saket", Doctor: "Dr. Meena Iyer"},
		{ID: "rec-6", Title: "Lipid Profile", Category: entities.CategoryLab, Date: "2023-09-30", Hospital: "AIIMS Delhi", Doctor: "Dr. Priya Sharma"},
		{ID: "rec-7", Title: "Discharge Summary - Dengue", Category: entities.CategoryDischarge, Date: "2023-08-12", Hospital: "Safdarjung Hospital", Doctor: "Dr. Arvind Rao"},
		{ID: "rec-8", Title: "Diabetes Medication", Category: entities.CategoryPrescription, Date: "2023-07-22", Hospital: "Apollo Hospital", Doctor: "Dr. Rajesh Kumar"},
	}
}
