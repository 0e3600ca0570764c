package database

import (
	"context"
	"fmt"

	"github.com/migranthealth/careconnect/internal/infrastructure/clients/postgres"
)

// schema creates the tables the Postgres store driver reads and writes.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT,
		phone      TEXT,
		role       TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS patients (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		age        INTEGER NOT NULL CHECK (age >= 0),
		gender     TEXT NOT NULL,
		abha_id    TEXT,
		phone      TEXT,
		location   TEXT,
		condition  TEXT NOT NULL,
		risk_level TEXT NOT NULL,
		last_visit TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, client *postgres.Client) error {
	for i, stmt := range schema {
		if _, err := client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
