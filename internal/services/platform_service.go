package services

import (
	"errors"

	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPlatformExists   = errors.New("platform already exists")
	ErrPlatformNotFound = errors.New("platform not found")
)

type PlatformService struct {
	db *gorm.DB
}

func NewPlatformService(db *gorm.DB) *PlatformService {
	return &PlatformService{db: db}
}

// Create inserts a platform with a unique name. The existence check is the
// fast path; the unique index is what actually guarantees it under
// concurrent creates.
func (s *PlatformService) Create(name string) (*models.Platform, error) {
	if _, err := s.FindByName(name); err == nil {
		return nil, ErrPlatformExists
	}

	platform := models.Platform{Name: name}
	if err := s.db.Create(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlatformExists
		}
		return nil, err
	}
	return &platform, nil
}

func (s *PlatformService) FindByID(id uint) (*models.Platform, error) {
	var platform models.Platform
	if err := s.db.First(&platform, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	return &platform, nil
}

func (s *PlatformService) FindByName(name string) (*models.Platform, error) {
	var platform models.Platform
	if err := s.db.Where("name = ?", name).First(&platform).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}
	return &platform, nil
}

func (s *PlatformService) Update(id uint, req *dto.UpdatePlatformRequest) (*models.Platform, error) {
	platform, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		platform.Name = *req.Name
	}

	if err := s.db.Save(platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlatformExists
		}
		return nil, err
	}
	return platform, nil
}

func (s *PlatformService) List() ([]models.Platform, error) {
	var platforms []models.Platform
	if err := s.db.Order("id ASC").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}
