package main

import (
	"context"
	"os"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/migranthealth/careconnect/internal/adapters/database"
	"github.com/migranthealth/careconnect/internal/fixtures"
	"github.com/migranthealth/careconnect/internal/infrastructure/clients/postgres"
	"github.com/migranthealth/careconnect/internal/infrastructure/observability"
	"github.com/migranthealth/careconnect/pkg/config"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger("careconnect-seed", cfg.App.Env, cfg.App.LogLevel)
	logger := observability.GetLogger()

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to DB")
	}
	defer pgClient.Close()

	if err := database.Migrate(ctx, pgClient); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply schema")
	}

	if os.Getenv("RESET_DB") == "true" {
		logger.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		if _, err := pgClient.DB().ExecContext(ctx, `TRUNCATE TABLE users, patients`); err != nil {
			logger.Fatal().Err(err).Msg("failed to truncate tables")
		}
	}

	patients := fixtures.Patients(time.Now())
	rows := make([]interface{}, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, database.PatientRecord(p))
	}

	query, args, err := goqu.Dialect("postgres").
		Insert("patients").
		Rows(rows...).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build insert")
	}

	result, err := pgClient.DB().ExecContext(ctx, query, args...)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed patients")
	}
	inserted, _ := result.RowsAffected()
	logger.Info().
		Int("fixtures", len(patients)).
		Int64("inserted", inserted).
		Msg("seeding complete")
}
