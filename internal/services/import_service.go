package services

import (
	"errors"
	"log/slog"

	"github.com/mertcakir/gameshelf-backend/internal/dto"
)

type ImportService struct {
	platforms *PlatformService
	games     *GameService
}

func NewImportService(platforms *PlatformService, games *GameService) *ImportService {
	return &ImportService{platforms: platforms, games: games}
}

// ImportGames reconciles the records sequentially, in input order. Platforms
// are created when unseen; duplicate games are skipped. A failing record is
// counted and never aborts the batch.
func (s *ImportService) ImportGames(records []dto.ImportRecord) dto.ImportSummary {
	var summary dto.ImportSummary

	// Per-run cache so repeated platform names hit the database once.
	// Concurrent import runs can still race on a new platform; the unique
	// index rejects the loser and that record lands in the error count.
	platformIDs := make(map[string]uint, 8)

	for _, rec := range records {
		platformID, ok := platformIDs[rec.PlatformName]
		if !ok {
			platform, err := s.platforms.FindByName(rec.PlatformName)
			if errors.Is(err, ErrPlatformNotFound) {
				platform, err = s.platforms.Create(rec.PlatformName)
			}
			if err != nil {
				slog.Warn("import: platform reconciliation failed",
					"action", "import_games", "platform", rec.PlatformName, "error", err)
				summary.Errors++
				continue
			}
			platformID = platform.ID
			platformIDs[rec.PlatformName] = platformID
		}

		completed := rec.Completed
		_, err := s.games.Create(&dto.CreateGameRequest{
			Name:       rec.GameName,
			Completed:  &completed,
			PlatformID: platformID,
		})
		switch {
		case errors.Is(err, ErrGameExists):
			summary.Skipped++
		case err != nil:
			slog.Warn("import: game creation failed",
				"action", "import_games", "game", rec.GameName, "error", err)
			summary.Errors++
		default:
			summary.Imported++
		}
	}

	return summary
}
