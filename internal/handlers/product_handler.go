package handlers

import (
	"errors"

	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles the read-only catalog endpoints.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
}

// HandleGetProducts lists the catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID returns one product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return jsonError(c, err)
	}
	return c.JSON(product)
}
