package handlers

import (
	"shop/internal/models"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// CartHandler handles the session-held cart. The cart itself lives in the
// session store; no cart endpoint requires a login.
type CartHandler struct {
	cartService *services.CartService
	store       *session.Store
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService, store *session.Store) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		store:       store,
	}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/cart", h.HandleGetCart)
	router.Post("/cart/add", h.HandleAdd)
	router.Post("/cart/update", h.HandleUpdate)
	router.Delete("/cart/clear", h.HandleClear)
	router.Get("/cart/detail", h.HandleDetail)
}

// cartFromSession reads the session cart, treating anything else as empty.
func cartFromSession(sess *session.Session) []models.CartItem {
	if items, ok := sess.Get("cart").([]models.CartItem); ok {
		return items
	}
	return []models.CartItem{}
}

// HandleGetCart returns the raw cart entries.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(cartFromSession(sess))
}

// CartAddRequest is the request body for adding to the cart. A missing or
// zero qty defaults to one.
type CartAddRequest struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

// HandleAdd merges the entry into the cart. No catalog validation happens
// here; a nonexistent product surfaces at detail or checkout time.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	var req CartAddRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 || req.Qty < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payload",
		})
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	cart := h.cartService.Add(cartFromSession(sess), req.ProductID, req.Qty)
	sess.Set("cart", cart)
	if err := sess.Save(); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Added to cart",
		"cart":    cart,
	})
}

// CartUpdateRequest is the request body for setting an entry's quantity.
// Qty is a pointer so a missing field is distinguishable from zero.
type CartUpdateRequest struct {
	ProductID uint `json:"productId"`
	Qty       *int `json:"qty"`
}

// HandleUpdate sets the entry's quantity; zero removes it.
func (h *CartHandler) HandleUpdate(c *fiber.Ctx) error {
	var req CartUpdateRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID == 0 || req.Qty == nil || *req.Qty < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payload",
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	cart, err := h.cartService.Update(cartFromSession(sess), req.ProductID, *req.Qty)
	if err != nil {
		return jsonError(c, err)
	}
	sess.Set("cart", cart)
	if err := sess.Save(); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Cart updated",
		"cart":    cart,
	})
}

// HandleClear empties the cart unconditionally.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	sess.Set("cart", []models.CartItem{})
	if err := sess.Save(); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// HandleDetail returns the cart joined with live product data and the
// rounded total.
func (h *CartHandler) HandleDetail(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	detail, err := h.cartService.Detail(cartFromSession(sess))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(detail)
}
