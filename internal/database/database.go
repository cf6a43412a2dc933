package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/config"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/models"
)

// Open connects to the configured database. A DATABASE_URL selects postgres;
// otherwise a local sqlite file is used. TranslateError is enabled so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.Database.URL != "" {
		dialector = postgres.Open(cfg.Database.URL)
	} else {
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Database.URL == "" {
		// sqlite does not enforce foreign keys unless asked
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}
	return db, nil
}

// MigrateSchema creates or updates the tables for all entities.
func MigrateSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.Booking{},
		&models.Review{},
	)
}

// NewTestDB opens an in-memory sqlite database for tests. The connection pool
// is capped at one so every query sees the same in-memory instance.
func NewTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}
	return db, nil
}
