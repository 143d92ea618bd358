package repositories

import (
	"gorm.io/gorm"
)

// TxManager runs a function against transaction-scoped repositories. The
// whole closure commits or rolls back as one unit: any returned error
// discards every write made inside it.
type TxManager interface {
	WithTransaction(fn func(products ProductRepository, orders OrderRepository) error) error
}

// GORMTxManager is a TxManager backed by a gorm transaction.
type GORMTxManager struct {
	db *gorm.DB
}

// NewGORMTxManager creates a new instance of GORMTxManager.
func NewGORMTxManager(db *gorm.DB) *GORMTxManager {
	return &GORMTxManager{
		db: db,
	}
}

// WithTransaction hands fn repositories bound to one database transaction.
func (m *GORMTxManager) WithTransaction(fn func(products ProductRepository, orders OrderRepository) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMProductRepository(tx), NewGORMOrderRepository(tx))
	})
}
