package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"signage-service/internal/models"
	"signage-service/internal/services"
	"signage-service/internal/utils"
)

type MenuHandler struct {
	svc *services.MenuService
	log *zap.SugaredLogger
}

func NewMenuHandler(svc *services.MenuService, log *zap.SugaredLogger) *MenuHandler {
	return &MenuHandler{svc: svc, log: log}
}

type createMenuItemReq struct {
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Image       string  `json:"imagem"`
}

type updatePriceReq struct {
	Price float64 `json:"preco"`
}

// GET /api/cardapio
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, items)
}

// POST /api/cardapio
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	var req createMenuItemReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	item, err := h.svc.Create(c.Context(), models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusCreated, item)
}

// PUT /api/cardapio/:id
func (h *MenuHandler) UpdatePrice(c *fiber.Ctx) error {
	var req updatePriceReq
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid body")
	}
	item, err := h.svc.UpdatePrice(c.Context(), c.Params("id"), req.Price)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, item)
}

// DELETE /api/cardapio/:id
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, fiber.Map{"message": "item removed"})
}

// GET /api/inicializar — load the sample menu when the collection is empty.
func (h *MenuHandler) Seed(c *fiber.Ctx) error {
	items, err := h.svc.Seed(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return utils.JSONSuccess(c, fiber.StatusOK, items)
}
