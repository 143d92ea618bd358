package models

import "time"

// OrderItem is a single line of an order. Price is captured at purchase
// time, not a live reference to the product price.
type OrderItem struct {
	OrderID   uint    `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint    `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// Order is a placed order. Orders are immutable once created.
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"index;not null"`
	Total     float64     `json:"total"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItemDetail is an order line joined with the product name for the
// order-detail endpoint.
type OrderItemDetail struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"lineTotal" gorm:"column:line_total"`
}
