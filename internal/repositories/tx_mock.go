package repositories

import "sync"

// MockTxManager is an in-memory TxManager. A write lock around the closure
// stands in for the database transaction boundary, so concurrent callers
// are serialized the way row locks would serialize them. Writes made by a
// failing closure are not undone; tests relying on rollback use the GORM
// manager instead.
type MockTxManager struct {
	products *MockProductRepository
	orders   *MockOrderRepository
	mu       sync.Mutex
}

// NewMockTxManager creates a new instance of MockTxManager.
func NewMockTxManager(products *MockProductRepository, orders *MockOrderRepository) *MockTxManager {
	return &MockTxManager{
		products: products,
		orders:   orders,
	}
}

// WithTransaction runs fn against the in-memory repositories under the lock.
func (m *MockTxManager) WithTransaction(fn func(products ProductRepository, orders OrderRepository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.products, m.orders)
}
