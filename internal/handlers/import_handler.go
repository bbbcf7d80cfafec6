package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/mertcakir/gameshelf-backend/internal/dto"
	"github.com/mertcakir/gameshelf-backend/internal/services"
)

type ImportHandler struct {
	importService *services.ImportService
}

func NewImportHandler(importService *services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportGames runs the batch reconciliation over the posted record list.
// Per-record failures end up in the summary counters, never in the status code.
func (h *ImportHandler) ImportGames(c *fiber.Ctx) error {
	var records []dto.ImportRecord
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body: expected an array of records",
		})
	}

	summary := h.importService.ImportGames(records)
	slog.Info("game import finished",
		"action", "import_games",
		"imported", summary.Imported,
		"skipped", summary.Skipped,
		"errors", summary.Errors)

	return c.JSON(summary)
}
