package database

import (
	"fmt"

	"github.com/jamil/mission-control-api/internal/config"
	"github.com/jamil/mission-control-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the postgres database and returns the handle. The handle is
// constructed once at process start and threaded through the repositories;
// there is no package-global instance.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Warn
	if cfg.GinMode != "release" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the five collection tables. Secondary indexes
// are declared on the model tags, so AutoMigrate covers them too.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Task{},
		&models.ContentItem{},
		&models.CalendarEvent{},
		&models.Memory{},
		&models.TeamMember{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
