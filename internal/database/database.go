// Package database opens the configured store backend and runs SQL
// migrations for PostgreSQL.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roundup/internal/config"
	"roundup/internal/logger"
	"roundup/internal/store"
	"roundup/internal/store/gormstore"
	"roundup/internal/store/mongostore"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Open connects to the backend selected by cfg.StoreDriver. PostgreSQL is
// migrated with golang-migrate when a migrations source is configured;
// SQLite is migrated by GORM.
func Open(ctx context.Context, cfg *config.Config) (store.Store, error) {
	driver, err := store.ParseDriver(cfg.StoreDriver)
	if err != nil {
		return nil, err
	}

	log := logger.Get().With("driver", driver)

	switch driver {
	case store.DriverPostgres:
		if cfg.MigrationsSource != "" {
			if err := RunMigrations(cfg.MigrationsSource, cfg.PostgresURL()); err != nil {
				return nil, err
			}
		}
		s, err := gormstore.OpenPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		log.Infow("store opened", "host", cfg.DBHost, "database", cfg.DBName)
		return s, nil

	case store.DriverSQLite:
		s, err := gormstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Infow("store opened", "path", cfg.SQLitePath)
		return s, nil

	case store.DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
		defer cancel()
		s, err := mongostore.Connect(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		log.Infow("store opened", "database", cfg.MongoDatabase)
		return s, nil
	}

	return nil, fmt.Errorf("unsupported store driver: %q", driver)
}

// RunMigrations applies pending SQL migrations from source to the database
// at databaseURL.
func RunMigrations(source, databaseURL string) error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New(source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

func connectTimeout(cfg *config.Config) time.Duration {
	// Mongo server selection can take several ping intervals.
	if t := cfg.StorePingTimeout * 5; t > 0 {
		return t
	}
	return 10 * time.Second
}
