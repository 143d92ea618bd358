package repositories

import (
	"fmt"
	"sort"
	"sync"

	"shop/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by ID.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return &product, nil
}

// GetByIDs returns the products with the given ids; unknown ids are skipped.
func (r *MockProductRepository) GetByIDs(ids []uint) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// Create adds a new product, assigning the next free ID when unset.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// DecrementStock subtracts qty from the product's stock, refusing to go
// below zero.
func (r *MockProductRepository) DecrementStock(id uint, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if product.Stock < qty {
		return fmt.Errorf("product %d: %w", id, ErrInsufficientStock)
	}
	product.Stock -= qty
	r.products[id] = product
	return nil
}
