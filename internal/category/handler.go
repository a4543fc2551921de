package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/categories", h.listCategories)
	app.Get("/api/categories/:slug", h.getCategory)
}

func (h *Handler) listCategories(c *fiber.Ctx) error {
	items, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":      false,
			"error":   "server_error",
			"message": "unexpected error",
		})
	}
	return c.JSON(fiber.Map{
		"ok":    true,
		"count": len(items),
		"items": items,
	})
}

func (h *Handler) getCategory(c *fiber.Ctx) error {
	item, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "server error",
		})
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"category": item,
	})
}
