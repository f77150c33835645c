package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bookwise/pkg/config"
	"bookwise/pkg/logger"
	"bookwise/pkg/models"
)

const (
	maxConnectRetries = 10
	retryDelay        = 5 * time.Second
)

// Connect opens the postgres database with a retry loop and migrates the
// schema. TranslateError is on so a violated unique index comes back as
// gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	logger.Info(logger.EventDBConnection, "Connecting to database", logger.Fields(
		"host", cfg.DBHost,
		"port", cfg.DBPort,
		"database", cfg.DBName,
	))

	var db *gorm.DB
	var err error
	for i := 0; i < maxConnectRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		logger.Warn(logger.EventDBError, "Database connection attempt failed", logger.Fields(
			"attempt", i+1,
			"max_attempts", maxConnectRetries,
			"error", err.Error(),
		))
		if i < maxConnectRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info(logger.EventDBConnection, "Database connection established", nil)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Book{},
		&models.Rating{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	return nil
}
