package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/services"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Name == "" || req.PlatformID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "name and platformId are required",
		})
	}

	game, err := h.gameService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrPlatformNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Platform not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to create game",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

func (h *GameHandler) FindAll(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	result, err := h.gameService.FindAll(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list games",
		})
	}
	return c.JSON(result)
}

func (h *GameHandler) Search(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	filters, err := parseSearchFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	result, err := h.gameService.Search(filters, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to search games",
		})
	}
	return c.JSON(result)
}

func (h *GameHandler) Pick(c *fiber.Ctx) error {
	game, err := h.gameService.Pick()
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No games found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to pick a game",
		})
	}
	return c.JSON(game)
}

func (h *GameHandler) FindOne(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	game, err := h.gameService.FindOne(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Game not found",
		})
	}
	return c.JSON(game)
}

func (h *GameHandler) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	game, err := h.gameService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Game not found",
			})
		case errors.Is(err, services.ErrPlatformNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Platform not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update game",
			})
		}
	}
	return c.JSON(game)
}

func (h *GameHandler) Remove(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	game, err := h.gameService.Remove(id)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove game",
		})
	}
	return c.JSON(game)
}

// parsePagination defaults to page 1, limit 10. Anything present but not a
// positive integer is rejected.
func parsePagination(c *fiber.Ctx) (page, limit int, err error) {
	page, err = parsePositiveQueryInt(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err = parsePositiveQueryInt(c, "limit", 10)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func parsePositiveQueryInt(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return v, nil
}

func parseSearchFilters(c *fiber.Ctx) (*dto.SearchFilters, error) {
	filters := &dto.SearchFilters{}

	if name := c.Query("name"); name != "" {
		filters.Name = &name
	}

	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("completed must be true or false")
		}
		filters.Completed = &completed
	}

	if raw := c.Query("platformId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.New("platformId must be a positive integer")
		}
		platformID := uint(v)
		filters.PlatformID = &platformID
	}

	return filters, nil
}
