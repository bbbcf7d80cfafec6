package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mertcakir/gameshelf-backend/internal/config"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for every model the service owns, plus the
// expression index that backs game uniqueness.
func Migrate() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Platform{},
		&models.Game{},
		&models.SystemLog{},
	); err != nil {
		return err
	}

	// Case-insensitive (name, platform) uniqueness. The service-level
	// existence check is only the fast path; this index is what rejects
	// the loser of two concurrent creates.
	return DB.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_games_name_platform ON games (LOWER(name), platform_id)",
	).Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
