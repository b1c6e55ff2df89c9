package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"signage-service/internal/services"
	"signage-service/internal/utils"
)

type MonitorHandler struct {
	svc   *services.MonitorService
	query *services.QueryService
	log   *zap.SugaredLogger
}

func NewMonitorHandler(svc *services.MonitorService, query *services.QueryService, log *zap.SugaredLogger) *MonitorHandler {
	return &MonitorHandler{svc: svc, query: query, log: log}
}

type createMonitorReq struct {
	Name string `json:"name"`
}

type assignPlaylistReq struct {
	PlaylistID string `json:"playlistId"`
}

// POST /monitores
func (h *MonitorHandler) Create(c *fiber.Ctx) error {
	var req createMonitorReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	m, err := h.svc.Create(c.Context(), req.Name)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, m)
}

// GET /monitores
func (h *MonitorHandler) List(c *fiber.Ctx) error {
	monitors, err := h.svc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, monitors)
}

// GET /monitores/:id
func (h *MonitorHandler) Get(c *fiber.Ctx) error {
	m, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, m)
}

// PUT /monitores/:id
func (h *MonitorHandler) AssignPlaylist(c *fiber.Ctx) error {
	var req assignPlaylistReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	m, err := h.svc.AssignPlaylist(c.Context(), c.Params("id"), req.PlaylistID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, m)
}

// DELETE /monitores/:id
func (h *MonitorHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "monitor removed"})
}

// GET /playlist/:monitorId — media URLs of the monitor's playlist, in
// stored order, for player clients.
func (h *MonitorHandler) PlaylistURLs(c *fiber.Ctx) error {
	urls, err := h.query.PlaylistURLs(c.Context(), c.Params("monitorId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, urls)
}
