package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
)

// InitDB opens the postgres connection and migrates the activity table
func InitDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("missing required database environment variables")
	}

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate the schema
	if err := migrate(db, migrateActivity); err != nil {
		return nil, err
	}

	logrus.Info("Database connection established")
	return db, nil
}

func migrateActivity(db *gorm.DB) error {
	return db.AutoMigrate(&models.ActivityLog{})
}

// migrate runs the schema migration and releases the pool when it fails
func migrate(db *gorm.DB, run func(*gorm.DB) error) error {
	if err := run(db); err != nil {
		Close(db)
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Warnf("Failed to get database connection for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Warnf("Failed to close database: %v", err)
	}
}
