package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"signage-service/internal/utils"
)

// writeError maps service error kinds onto HTTP statuses. Internal causes
// are logged but not echoed back.
func writeError(c *fiber.Ctx, log *zap.SugaredLogger, err error) error {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		return utils.JSONError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, utils.ErrInvalidInput):
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, utils.ErrStorage):
		log.Errorf("storage failure: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "storage backend failure")
	default:
		log.Errorf("request failed: %v", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "internal error")
	}
}
