package services

import (
	"errors"
	"math"
	"strings"

	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrGameExists   = errors.New("game already exists on this platform")
	ErrGameNotFound = errors.New("game not found")
)

type GameService struct {
	db        *gorm.DB
	platforms *PlatformService
}

func NewGameService(db *gorm.DB, platforms *PlatformService) *GameService {
	return &GameService{db: db, platforms: platforms}
}

// Create inserts a game after a case-insensitive duplicate check on the
// (name, platform) pair. Soft-deleted rows count as duplicates too, so a
// removed game cannot be silently re-added.
func (s *GameService) Create(req *dto.CreateGameRequest) (*models.Game, error) {
	var existing models.Game
	err := s.db.
		Where("LOWER(name) = LOWER(?) AND platform_id = ?", req.Name, req.PlatformID).
		First(&existing).Error
	if err == nil {
		return nil, ErrGameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	platform, err := s.platforms.FindByID(req.PlatformID)
	if err != nil {
		return nil, err
	}

	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}

	game := models.Game{
		Name:       req.Name,
		Completed:  completed,
		IsActive:   true,
		PlatformID: &platform.ID,
	}

	if err := s.db.Create(&game).Error; err != nil {
		// A concurrent create can slip past the advisory check; the unique
		// index on (LOWER(name), platform_id) catches it here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGameExists
		}
		return nil, err
	}

	game.Platform = platform
	return &game, nil
}

// FindAll returns the active games for one page plus pagination metadata.
// page and limit are validated at the HTTP boundary and are always >= 1 here.
func (s *GameService) FindAll(page, limit int) (*dto.PaginatedGames, error) {
	return s.paginate(s.db.Model(&models.Game{}).Where("is_active = ?", true), page, limit)
}

func (s *GameService) FindOne(id uint) (*models.Game, error) {
	var game models.Game
	err := s.db.
		Where("id = ? AND is_active = ?", id, true).
		Preload("Platform").
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Update(id uint, req *dto.UpdateGameRequest) (*models.Game, error) {
	game, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	if req.PlatformID != nil {
		platform, err := s.platforms.FindByID(*req.PlatformID)
		if err != nil {
			return nil, err
		}
		game.PlatformID = &platform.ID
		game.Platform = platform
	}

	if req.Name != nil {
		game.Name = *req.Name
	}

	if req.Completed != nil {
		game.Completed = *req.Completed
	}

	if err := s.db.Omit("Platform").Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// Remove flips the active flag instead of deleting the row, so the game
// disappears from listings but its history is retained.
func (s *GameService) Remove(id uint) (*models.Game, error) {
	game, err := s.FindOne(id)
	if err != nil {
		return nil, err
	}

	game.IsActive = false
	if err := s.db.Omit("Platform").Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// Search applies the optional filters in SQL and paginates like FindAll.
func (s *GameService) Search(filters *dto.SearchFilters, page, limit int) (*dto.PaginatedGames, error) {
	query := s.db.Model(&models.Game{}).Where("is_active = ?", true)

	if filters.Name != nil {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*filters.Name)+"%")
	}
	if filters.Completed != nil {
		query = query.Where("completed = ?", *filters.Completed)
	}
	if filters.PlatformID != nil {
		query = query.Where("platform_id = ?", *filters.PlatformID)
	}

	return s.paginate(query, page, limit)
}

// Pick returns one uniformly random active, not-yet-completed game. The
// datastore does the selection so the table is never loaded into memory.
func (s *GameService) Pick() (*models.Game, error) {
	var game models.Game
	err := s.db.
		Where("is_active = ? AND completed = ?", true, false).
		Preload("Platform").
		Order("RANDOM()").
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) paginate(query *gorm.DB, page, limit int) (*dto.PaginatedGames, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	games := make([]models.Game, 0, limit)
	err := query.Session(&gorm.Session{}).
		Preload("Platform").
		Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedGames{
		Data: games,
		Meta: dto.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}
