package repositories

import (
	"errors"
	"fmt"

	"shop/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists the order and its items in one go; GORM inserts the
// Items association rows alongside the order.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// ListByUser returns the user's orders, newest first.
func (r *GORMOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// GetByIDForUser returns the order only when it belongs to the user, so
// another user's order id reads as not found.
func (r *GORMOrderRepository) GetByIDForUser(id, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &order, nil
}

// ItemsByOrder returns the order's lines joined with product names.
func (r *GORMOrderRepository) ItemsByOrder(orderID uint) ([]models.OrderItemDetail, error) {
	var items []models.OrderItemDetail
	err := r.db.Table("order_items").
		Select("order_items.product_id, products.name, order_items.qty, order_items.price, order_items.qty * order_items.price AS line_total").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.product_id").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get items for order %d: %w", orderID, err)
	}
	return items, nil
}
