package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. Connections are
// capped at one so every query sees the same memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Platform{}, &models.Game{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_games_name_platform ON games (LOWER(name), platform_id)",
	).Error; err != nil {
		t.Fatalf("create game uniqueness index: %v", err)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func newCatalogs(t *testing.T) (*PlatformService, *GameService) {
	t.Helper()
	db := newTestDB(t)
	platforms := NewPlatformService(db)
	return platforms, NewGameService(db, platforms)
}

func mustCreatePlatform(t *testing.T, platforms *PlatformService, name string) *models.Platform {
	t.Helper()
	platform, err := platforms.Create(name)
	if err != nil {
		t.Fatalf("create platform %q: %v", name, err)
	}
	return platform
}

func mustCreateGame(t *testing.T, games *GameService, name string, platformID uint, completed bool) *models.Game {
	t.Helper()
	game, err := games.Create(&dto.CreateGameRequest{
		Name:       name,
		PlatformID: platformID,
		Completed:  &completed,
	})
	if err != nil {
		t.Fatalf("create game %q: %v", name, err)
	}
	return game
}
