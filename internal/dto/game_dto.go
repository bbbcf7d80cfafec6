package dto

import "github.com/mertcakir/gameshelf-backend/internal/models"

type CreateGameRequest struct {
	Name       string `json:"name"`
	Completed  *bool  `json:"completed"`
	PlatformID uint   `json:"platformId"`
}

type UpdateGameRequest struct {
	Name       *string `json:"name"`
	Completed  *bool   `json:"completed"`
	PlatformID *uint   `json:"platformId"`
}

// SearchFilters are independently optional; a nil field imposes no constraint.
type SearchFilters struct {
	Name       *string
	Completed  *bool
	PlatformID *uint
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedGames struct {
	Data []models.Game `json:"data"`
	Meta PageMeta      `json:"meta"`
}

type ImportRecord struct {
	GameName     string `json:"gameName"`
	PlatformName string `json:"platformName"`
	Completed    bool   `json:"completed"`
}

type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}
