package product

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the unauthenticated read path.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.listProducts)
	app.Get("/api/products/:id", h.getProduct)
}

// RegisterAdminRoutes exposes the mutation path. The router passed in is
// expected to already carry the admin key guard.
func (h *Handler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/products", h.createProduct)
	router.Put("/products/:id", h.updateProduct)
	router.Delete("/products/:id", h.deleteProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", defaultPerPage)

	items, applied, err := h.service.List(page, perPage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":      false,
			"error":   "server_error",
			"message": "unexpected error",
		})
	}

	return c.JSON(fiber.Map{
		"ok":       true,
		"page":     applied.Page,
		"per_page": applied.PerPage,
		"count":    len(items),
		"items":    items,
	})
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid product id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "product not found"})
		}
		return serverError(c)
	}
	return c.JSON(fiber.Map{"success": true, "product": p})
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	in := new(Input)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	created, err := h.service.Create(*in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "product": created})
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid product id"})
	}

	in := new(Input)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request body"})
	}

	updated, err := h.service.Update(id, *in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "product": updated})
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid product id"})
	}

	if err := h.service.Delete(id); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func mutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrNothingToUpdate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "product not found"})
	case errors.Is(err, ErrSlugExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "slug already exists"})
	default:
		return serverError(c)
	}
}

// serverError returns a deliberately generic body; internal diagnostics
// must never reach an untrusted caller.
func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "server error"})
}
