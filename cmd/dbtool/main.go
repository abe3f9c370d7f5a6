package main

import (
	"colony-route-service/internal/adapters/repositories"
	"colony-route-service/internal/config"
	"colony-route-service/internal/platform/db"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// dbtool prepares a PostgreSQL database: schema plus the location catalog.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := config.LoadDotEnv(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	if err := run(context.Background(), logger); err != nil {
		logger.Fatal("dbtool failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
	return initAndSeed(ctx, logger, conn, seedPath)
}

func initAndSeed(ctx context.Context, logger *zap.Logger, conn *sql.DB, seedPath string) error {
	logger.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	logger.Info("schema ready")

	logger.Info("seeding database", zap.String("seed_path", seedPath))
	if err := repositories.SeedFromJSON(ctx, conn, repositories.Postgres, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logger.Info("seeding complete")

	return nil
}
