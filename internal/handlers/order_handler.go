package handlers

import (
	"errors"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// OrderHandler handles checkout and order history. All routes sit behind
// the session auth gate, which resolves the user id into the locals.
type OrderHandler struct {
	service *services.OrderService
	store   *session.Store
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, store *session.Store) *OrderHandler {
	return &OrderHandler{
		service: service,
		store:   store,
	}
}

// RegisterRoutes registers the order routes behind the given auth gate.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	orders := router.Group("/orders", authRequired)
	orders.Post("/", h.HandleCreateOrder)
	orders.Get("/", h.HandleGetOrders)
	orders.Get("/:id", h.HandleGetOrderByID)
}

// HandleCreateOrder turns the session cart into an order. On success the
// cart is cleared as part of the same request.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}

	order, err := h.service.PlaceOrder(userID, cartFromSession(sess))
	if err != nil {
		return jsonError(c, err)
	}

	sess.Set("cart", []models.CartItem{})
	if err := sess.Save(); err != nil {
		return jsonError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed",
		"orderId": order.ID,
		"total":   order.Total,
	})
}

// HandleGetOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	orders, err := h.service.ListOrders(userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns one of the caller's orders with its items.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	order, items, err := h.service.GetOrder(uint(id), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"order": order,
		"items": items,
	})
}
