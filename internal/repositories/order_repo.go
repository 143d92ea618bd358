package repositories

import (
	"shop/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// write-once: there is no update or delete.
type OrderRepository interface {
	// Create persists the order together with its items.
	Create(order *models.Order) error
	// ListByUser returns the user's orders, newest first.
	ListByUser(userID uint) ([]models.Order, error)
	// GetByIDForUser returns the order only when it belongs to the user.
	GetByIDForUser(id, userID uint) (*models.Order, error)
	// ItemsByOrder returns the order's lines joined with product names.
	ItemsByOrder(orderID uint) ([]models.OrderItemDetail, error)
}
