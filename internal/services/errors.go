package services

import (
	"errors"
	"fmt"
)

// Client-facing failures. Message strings double as the API error bodies.
var (
	ErrCartEmpty          = errors.New("Cart is empty")
	ErrItemNotInCart      = errors.New("Item not in cart")
	ErrProductsNotFound   = errors.New("One or more products not found")
	ErrEmailTaken         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
)

// InsufficientStockError reports a cart entry whose quantity exceeds the
// product's current stock.
type InsufficientStockError struct {
	ProductID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product %d", e.ProductID)
}
