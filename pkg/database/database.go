package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/EricsonWillians/itafest-backend/internal/model"
	"github.com/EricsonWillians/itafest-backend/pkg/config"
)

// Connect opens the database connection described by the configuration and
// returns the session. The caller owns the lifecycle; there is no package-
// level instance.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database object: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	return db, nil
}

// Close tears down the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate runs schema migrations for every entity the service persists.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Business{},
		&model.Category{},
		&model.Event{},
		&model.Promotion{},
		&model.Ticket{},
		&model.Review{},
		&model.Message{},
		&model.Notification{},
		&model.User{},
		&model.UserProfile{},
	); err != nil {
		return fmt.Errorf("run database migrations: %w", err)
	}
	return nil
}
