// Package initializer wires configuration into concrete infrastructure:
// logger, persistence gateway, and the unit of work the services run on.
package initializer

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pulabank/corebank/infra/repository/gormrepo"
	"github.com/pulabank/corebank/infra/repository/memory"
	"github.com/pulabank/corebank/pkg/config"
	"github.com/pulabank/corebank/pkg/repository"
)

// Deps holds the initialized infrastructure dependencies.
type Deps struct {
	Logger *slog.Logger
	DB     *gorm.DB // nil when running on the in-memory store
	UoW    repository.UnitOfWork
}

// InitializeDependencies sets up logging and persistence. With a
// DATABASE_URL configured it connects to Postgres and migrates the
// schema; otherwise it falls back to the in-memory store, which is
// enough for local development.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	if cfg.DB.URL == "" {
		logger.Warn("no database configured, using in-memory store")
		return &Deps{
			Logger: logger,
			UoW:    memory.NewStore().UnitOfWork(),
		}, nil
	}

	db, err := gormrepo.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("database connected and migrated")

	return &Deps{
		Logger: logger,
		DB:     db,
		UoW:    gormrepo.NewUoW(db),
	}, nil
}
