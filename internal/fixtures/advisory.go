package fixtures

import "github.com/migranthealth/careconnect/internal/domain/entities"

// DrugInteractions is the known-interaction table used by the prescription checker.
func DrugInteractions() []entities.DrugInteraction {
	return []entities.DrugInteraction{
		{
			Drug1: "warfarin", Drug2: "aspirin", Severity: entities.SeverityMajor,
			Description:    "Concurrent use significantly increases the risk of bleeding.",
			Recommendation: "Avoid combination. If necessary, monitor INR closely and watch for signs of bleeding.",
		},
		{
			Drug1: "metformin", Drug2: "alcohol", Severity: entities.SeverityModerate,
			Description:    "Alcohol increases the risk of lactic acidosis with metformin.",
			Recommendation: "Advise the patient to limit alcohol intake.",
		},
		{
			Drug1: "lisinopril", Drug2: "potassium", Severity: entities.SeverityModerate,
			Description:    "ACE inhibitors with potassium supplements may cause hyperkalemia.",
			Recommendation: "Monitor serum potassium levels regularly.",
		},
		{
			Drug1: "simvastatin", Drug2: "clarithromycin", Severity: entities.SeverityMajor,
			Description:    "Clarithromycin raises simvastatin levels, increasing the risk of myopathy.",
			Recommendation: "Suspend simvastatin during the clarithromycin course.",
		},
		{
			Drug1: "ibuprofen", Drug2: "aspirin", Severity: entities.SeverityModerate,
			Description:    "Ibuprofen may reduce the cardioprotective effect of low-dose aspirin.",
			Recommendation: "Take aspirin at least 30 minutes before ibuprofen.",
		},
		{
			Drug1: "paracetamol", Drug2: "alcohol", Severity: entities.SeverityMinor,
			Description:    "Regular alcohol use with paracetamol increases liver strain.",
			Recommendation: "Keep to the lowest effective paracetamol dose.",
		},
	}
}

func maxDose(v float64) *float64 { return &v }

// DosageRules is the weight-based dosing table used by the dosage calculator.
func DosageRules() []entities.DosageRule {
	return []entities.DosageRule{
		{Key: "paracetamol", Name: "Paracetamol", DosagePerKg: 10, Unit: "mg", MaxDailyDose: maxDose(4000), Frequency: "Every 4-6 hours"},
		{Key: "ibuprofen", Name: "Ibuprofen", DosagePerKg: 10, Unit: "mg", MaxDailyDose: maxDose(1200), Frequency: "Every 6-8 hours"},
		{Key: "amoxicillin", Name: "Amoxicillin", DosagePerKg: 25, Unit: "mg", MaxDailyDose: maxDose(3000), Frequency: "Every 8 hours"},
		{Key: "azithromycin", Name: "Azithromycin", DosagePerKg: 10, Unit: "mg", MaxDailyDose: maxDose(500), Frequency: "Once daily"},
		{Key: "cetirizine", Name: "Cetirizine", DosagePerKg: 0.25, Unit: "mg", MaxDailyDose: maxDose(10), Frequency: "Once daily"},
		{Key: "ors", Name: "Oral Rehydration Salts", DosagePerKg: 75, Unit: "ml", Frequency: "Over 4 hours"},
	}
}
