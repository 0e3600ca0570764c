package fixtures

import "github.com/migranthealth/careconnect/internal/domain/entities"

// Doctors returns the sample doctor list. Each call returns fresh values.
func Doctors() []entities.Doctor {
	return []entities.Doctor{
		{
			ID: "doc-1", Name: "Dr. Priya Sharma", Specialty: "general", SpecialtyName: "General Physician",
			Hospital: "AIIMS Delhi", Rating: 4.8, Distance: "2.5 km",
			Fees:      map[string]string{entities.FeeConsultation: "₹500", entities.FeeVideo: "₹400", entities.FeeFollowUp: "₹300"},
			Available: true, NextSlot: "Today, 4:00 PM", Languages: []string{"Hindi", "English"},
		},
		{
			ID: "doc-2", Name: "Dr. Rajesh Kumar", Specialty: "cardiology", SpecialtyName: "Cardiologist",
			Hospital: "Safdarjung Hospital", Rating: 4.6, Distance: "5.1 km",
			Fees:      map[string]string{entities.FeeConsultation: "₹1000", entities.FeeVideo: "₹800", entities.FeeFollowUp: "₹600"},
			Available: true, NextSlot: "Tomorrow, 10:00 AM", Languages: []string{"Hindi", "English", "Punjabi"},
		},
		{
			ID: "doc-3", Name: "Dr. Anjali Verma", Specialty: "pediatrics", SpecialtyName: "Pediatrician",
			Hospital: "Apollo Hospital", Rating: 4.9, Distance: "3.8 km",
			Fees:      map[string]string{entities.FeeConsultation: "₹600", entities.FeeVideo: "₹500", entities.FeeFollowUp: "₹350"},
			Available: false, NextSlot: "Mon, 11:30 AM", Languages: []string{"Hindi", "English", "Bengali"},
		},
		{
			ID: "doc-4", Name: "Dr. Suresh Patel", Specialty: "general", SpecialtyName: "General Physician",
			Hospital: "PHC Okhla", Rating: 4.2, Distance: "1.2 km",
			Fees:      map[string]string{entities.FeeConsultation: "₹200", entities.FeeVideo: "₹150", entities.FeeFollowUp: "₹100"},
			Available: true, NextSlot: "Today, 6:30 PM", Languages: []string{"Hindi", "Gujarati"},
		},
		{
			ID: "doc-5", Name: "Dr. Meena Iyer", Specialty: "dermatology", SpecialtyName: "Dermatologist",
			Hospital: "Max Hospital Saket", Rating: 4.5, Distance: "7.4 km",
			Fees:      map[string]string{entities.FeeConsultation: "₹800", entities.FeeVideo: "₹700", entities.FeeFollowUp: "₹500"},
			Available: false, NextSlot: "Wed, 2:00 PM", Languages: []string{"Tamil", "English", "Hindi"},
		},
	}
}
