package repositories

import (
	"context"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// PatientRepository serves the provider portal's patient table.
type PatientRepository interface {
	List(ctx context.Context) ([]entities.Patient, error)
}
