package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/domain/repositories"
	"github.com/migranthealth/careconnect/internal/infrastructure/clients/postgres"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

const patientsTable = "patients"

// PatientAdapter implements the PatientRepository interface
type PatientAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPatientAdapter creates a new patient adapter
func NewPatientAdapter(client *postgres.Client) repositories.PatientRepository {
	return &PatientAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// List returns every patient ordered by id
func (a *PatientAdapter) List(ctx context.Context) ([]entities.Patient, error) {
	query, args, err := a.db.Select(
		"id", "name", "age", "gender", "abha_id", "phone",
		"location", "condition", "risk_level", "last_visit",
	).From(patientsTable).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list patients", err)
	}
	defer rows.Close()

	patients := make([]entities.Patient, 0)
	for rows.Next() {
		var p entities.Patient
		var abhaID, phone, location sql.NullString
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Age, &p.Gender, &abhaID, &phone,
			&location, &p.Condition, &p.RiskLevel, &p.LastVisit,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan patient", err)
		}
		p.ABHAID = abhaID.String
		p.Phone = phone.String
		p.Location = location.String
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate patients", err)
	}
	return patients, nil
}

// PatientRecord maps a patient to its row, for inserts
func PatientRecord(p entities.Patient) goqu.Record {
	return goqu.Record{
		"id":         p.ID,
		"name":       p.Name,
		"age":        p.Age,
		"gender":     p.Gender,
		"abha_id":    nullable(p.ABHAID),
		"phone":      nullable(p.Phone),
		"location":   nullable(p.Location),
		"condition":  p.Condition,
		"risk_level": string(p.RiskLevel),
		"last_visit": p.LastVisit,
	}
}
