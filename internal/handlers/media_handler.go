package handlers

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"signage-service/internal/services"
	"signage-service/internal/utils"
)

type MediaHandler struct {
	svc *services.MediaService
	log *zap.SugaredLogger
}

func NewMediaHandler(svc *services.MediaService, log *zap.SugaredLogger) *MediaHandler {
	return &MediaHandler{svc: svc, log: log}
}

// POST /midias (multipart/form-data 'file')
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "no file sent")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return utils.JSONError(c, fiber.StatusInternalServerError, "cannot open file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return utils.JSONError(c, fiber.StatusInternalServerError, "cannot read file")
	}

	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	media, err := h.svc.Create(c.Context(), fileHeader.Filename, ct, data)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, media)
}

// GET /midias
func (h *MediaHandler) List(c *fiber.Ctx) error {
	midias, err := h.svc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, midias)
}

// DELETE /midias/:id
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "midia removed"})
}
