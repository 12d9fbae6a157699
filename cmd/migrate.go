package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationShowcase/internal/config"
	reservationRepo "github.com/m04kA/SMC-ReservationShowcase/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationShowcase/pkg/logger"
)

func runMigrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	if !cfg.Database.Configured() {
		return errors.New("database is not configured: set database.dsn or DATABASE_DSN")
	}

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := reservationRepo.Migrate(ctx, db); err != nil {
		return err
	}

	log.Info("Schema applied (db=%s)", cfg.Database.DBName)
	return nil
}
