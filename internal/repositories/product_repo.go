package repositories

import (
	"shop/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	// GetByIDs fetches the products with the given ids in one query.
	// Unknown ids are simply absent from the result.
	GetByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	// DecrementStock atomically subtracts qty from the product's stock.
	// It fails with ErrInsufficientStock instead of letting stock go
	// negative.
	DecrementStock(id uint, qty int) error
}
