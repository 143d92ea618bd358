package handlers

import (
	"errors"
	"log"

	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service and repository failures to HTTP status
// codes. Anything unrecognized is a persistence failure.
func statusForError(err error) int {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrProductsNotFound),
		errors.Is(err, services.ErrEmailTaken),
		errors.As(err, &stockErr):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// jsonError renders the error as the API's JSON error body. Store errors
// are logged and masked; client errors pass their message through.
func jsonError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		msg = "Database error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}
