package handlers

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"signage-service/internal/models"
	"signage-service/internal/services"
	"signage-service/internal/utils"
)

type PlaylistHandler struct {
	svc   *services.PlaylistService
	media *services.MediaService
	log   *zap.SugaredLogger
}

func NewPlaylistHandler(svc *services.PlaylistService, media *services.MediaService, log *zap.SugaredLogger) *PlaylistHandler {
	return &PlaylistHandler{svc: svc, media: media, log: log}
}

type createPlaylistReq struct {
	Name string `json:"name"`
}

type appendItemsReq struct {
	Midias []models.PlaylistItem `json:"midias"`
}

// POST /playlists
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	var req createPlaylistReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	p, err := h.svc.Create(c.Context(), req.Name)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, p)
}

// GET /playlists
func (h *PlaylistHandler) List(c *fiber.Ctx) error {
	playlists, err := h.svc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, playlists)
}

// DELETE /playlists/:id
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "playlist removed"})
}

// POST /playlists/:id/midias (multipart 'midias', one or more files)
// Uploads each file as a media asset, then appends snapshots of the new
// assets to the playlist in upload order.
func (h *PlaylistHandler) UploadItems(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.svc.Get(c.Context(), id); err != nil {
		return writeError(c, h.log, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid multipart form")
	}
	files := form.File["midias"]
	if len(files) == 0 {
		return utils.JSONError(c, fiber.StatusBadRequest, "no files sent")
	}

	items := make([]models.PlaylistItem, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return utils.JSONError(c, fiber.StatusInternalServerError, "cannot open file")
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return utils.JSONError(c, fiber.StatusInternalServerError, "cannot read file")
		}
		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = http.DetectContentType(data)
		}
		media, err := h.media.Create(c.Context(), fh.Filename, ct, data)
		if err != nil {
			return writeError(c, h.log, err)
		}
		items = append(items, models.PlaylistItem{
			Name:    media.Name,
			URL:     media.URL,
			MediaID: media.ID,
		})
	}

	p, err := h.svc.AppendItems(c.Context(), id, items)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"midias": p.Midias})
}

// PUT /playlists/:id/midias (JSON items)
func (h *PlaylistHandler) AppendItems(c *fiber.Ctx) error {
	var req appendItemsReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	p, err := h.svc.AppendItems(c.Context(), c.Params("id"), req.Midias)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, p)
}

// POST /playlists/:playlistId/midias/:midiaId
func (h *PlaylistHandler) AssociateMedia(c *fiber.Ctx) error {
	media, err := h.svc.AssociateMedia(c.Context(), c.Params("playlistId"), c.Params("midiaId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, media)
}

// DELETE /playlists/:playlistId/midias/:midiaId
func (h *PlaylistHandler) RemoveItem(c *fiber.Ctx) error {
	p, err := h.svc.RemoveItem(c.Context(), c.Params("playlistId"), c.Params("midiaId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"midias": p.Midias})
}
