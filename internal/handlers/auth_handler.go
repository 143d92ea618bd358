package handlers

import (
	"log"

	"shop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// AuthHandler handles registration, login/logout and the session identity
// endpoint. The session store carries the identity and the cart.
type AuthHandler struct {
	authService *services.AuthService
	store       *session.Store
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, store *session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/register", h.HandleRegister)
	router.Post("/login", h.HandleLogin)
	router.Post("/logout", h.HandleLogout)
	router.Get("/me", h.HandleMe)
}

// RegisterRequest is the request body for registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister handles new account creation.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All fields are required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "All fields are required",
		})
	}

	if _, err := h.authService.Register(req.Username, req.Email, req.Password); err != nil {
		return jsonError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates the credentials and establishes the session.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
		})
	}

	user, err := h.authService.Authenticate(req.Email, req.Password)
	if err != nil {
		return jsonError(c, err)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	sess.Set("email", user.Email)
	if err := sess.Save(); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// HandleLogout destroys the session, dropping identity and cart alike.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}
	if err := sess.Destroy(); err != nil {
		log.Printf("Failed to destroy session: %v", err)
	}
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

// HandleMe reports the current session identity, or null when anonymous.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return jsonError(c, err)
	}

	userID, ok := sess.Get("user_id").(uint)
	if !ok {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":       userID,
			"username": sess.Get("username"),
			"email":    sess.Get("email"),
		},
	})
}
