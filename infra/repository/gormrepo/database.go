package gormrepo

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pulabank/corebank/pkg/config"
)

// NewDBConnection opens the postgres connection described by cfg.
func NewDBConnection(cfg config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.URL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// Migrate creates or updates the gateway's tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&customerModel{}, &accountModel{}, &transactionModel{})
}
