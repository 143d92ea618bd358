package models

// Product represents a product in the catalog.
// Stock is only ever mutated by the checkout transaction.
type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"type:varchar(100);not null" validate:"required,min=3,max=100"`
	Price float64 `json:"price" validate:"gte=0"`
	Stock int     `json:"stock" validate:"gte=0"`
}
