package cart

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omaatv/eticaret-projem/internal/product"
)

// ProductLister is the catalog slice the quote endpoint needs.
type ProductLister interface {
	ListByIDs(ids []int) ([]product.Product, error)
}

// Handler serves the cart quote endpoint. Clients hold snapshot prices
// locally; quoting returns the current catalog rows for a set of product
// ids so the client can detect drift before checkout.
type Handler struct {
	catalog ProductLister
}

func NewHandler(catalog ProductLister) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/cart/quote", h.quote)
}

type quoteRequest struct {
	IDs []int `json:"ids"`
}

func (h *Handler) quote(c *fiber.Ctx) error {
	var req quoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "invalid request body",
		})
	}

	items, err := h.catalog.ListByIDs(req.IDs)
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
