package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	"github.com/migranthealth/careconnect/internal/fixtures"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

// PatientRepository serves the fixture patient table. Last visits are
// anchored to the clock at every call.
type PatientRepository struct {
	now func() time.Time
}

// NewPatientRepository creates a fixture-backed patient repository
func NewPatientRepository(now func() time.Time) repositories.PatientRepository {
	if now == nil {
		now = time.Now
	}
	return &PatientRepository{now: now}
}

// List returns the fixture patients
func (r *PatientRepository) List(ctx context.Context) ([]entities.Patient, error) {
	return fixtures.Patients(r.now()), nil
}

// RecordRepository serves the fixture health records
type RecordRepository struct{}

// NewRecordRepository creates a fixture-backed record repository
func NewRecordRepository() repositories.RecordRepository {
	return &RecordRepository{}
}

// List returns the fixture records
func (r *RecordRepository) List(ctx context.Context) ([]entities.HealthRecord, error) {
	return fixtures.HealthRecords(), nil
}

// DoctorRepository serves the fixture doctor list
type DoctorRepository struct{}

// NewDoctorRepository creates a fixture-backed doctor repository
func NewDoctorRepository() repositories.DoctorRepository {
	return &DoctorRepository{}
}

// List returns the fixture doctors in display order
func (r *DoctorRepository) List(ctx context.Context) ([]entities.Doctor, error) {
	return fixtures.Doctors(), nil
}

// GetByID looks a doctor up by id
func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*entities.Doctor, error) {
	for _, d := range fixtures.Doctors() {
		if d.ID == id {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("doctor %s not found", id))
}
