package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"shop/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// ItemsByOrder resolves product names through the optional Products
// repository when one is attached.
type MockOrderRepository struct {
	orders   map[uint]models.Order
	nextID   uint
	mu       sync.RWMutex
	Products *MockProductRepository
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[uint]models.Order),
		nextID: 1,
	}
}

// Create adds a new order, assigning the next free ID.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == 0 {
		order.ID = r.nextID
		r.nextID++
	}
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

// ListByUser returns the user's orders, newest first.
func (r *MockOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			orderList = append(orderList, o)
		}
	}
	sort.Slice(orderList, func(i, j int) bool { return orderList[i].ID > orderList[j].ID })
	return orderList, nil
}

// GetByIDForUser returns the order only when it belongs to the user.
func (r *MockOrderRepository) GetByIDForUser(id, userID uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok || order.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return &order, nil
}

// ItemsByOrder returns the order's lines with product names when a product
// repository is attached.
func (r *MockOrderRepository) ItemsByOrder(orderID uint) ([]models.OrderItemDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	details := make([]models.OrderItemDetail, 0, len(order.Items))
	for _, it := range order.Items {
		d := models.OrderItemDetail{
			ProductID: it.ProductID,
			Qty:       it.Qty,
			Price:     it.Price,
			LineTotal: float64(it.Qty) * it.Price,
		}
		if r.Products != nil {
			if p, err := r.Products.GetByID(it.ProductID); err == nil {
				d.Name = p.Name
			}
		}
		details = append(details, d)
	}
	return details, nil
}
