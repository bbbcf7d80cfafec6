package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/services"
)

type PlatformHandler struct {
	platformService *services.PlatformService
}

func NewPlatformHandler(platformService *services.PlatformService) *PlatformHandler {
	return &PlatformHandler{platformService: platformService}
}

func (h *PlatformHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Platform name is required",
		})
	}

	platform, err := h.platformService.Create(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrPlatformExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create platform",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(platform)
}

func (h *PlatformHandler) List(c *fiber.Ctx) error {
	platforms, err := h.platformService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list platforms",
		})
	}
	return c.JSON(platforms)
}

func (h *PlatformHandler) FindOne(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid platform ID",
		})
	}

	platform, err := h.platformService.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Platform not found",
		})
	}
	return c.JSON(platform)
}

func (h *PlatformHandler) Update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid platform ID",
		})
	}

	var req dto.UpdatePlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	platform, err := h.platformService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPlatformNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Platform not found",
			})
		case errors.Is(err, services.ErrPlatformExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to update platform",
			})
		}
	}
	return c.JSON(platform)
}

// parseUintParam rejects anything that is not a plain positive integer, so
// "abc" is a 400 rather than a silent coercion.
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
