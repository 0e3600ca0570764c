package repositories

import (
	"context"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// RecordRepository lists a patient's health records.
type RecordRepository interface {
	List(ctx context.Context) ([]entities.HealthRecord, error)
}

// DoctorRepository lists bookable doctors.
type DoctorRepository interface {
	List(ctx context.Context) ([]entities.Doctor, error)

	// GetByID returns a NOT_FOUND AppError for unknown ids
	GetByID(ctx context.Context, id string) (*entities.Doctor, error)
}
