package models

// CartItem is one entry of a session cart. Carts live in the session store
// only and are never persisted; entries are unique per ProductID.
type CartItem struct {
	ProductID uint `json:"productId"`
	Qty       int  `json:"qty"`
}

// CartDetailItem is a cart entry joined with live product data. Name and
// Price are nil when the referenced product no longer exists; such entries
// contribute zero to the total.
type CartDetailItem struct {
	ProductID uint     `json:"productId"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Qty       int      `json:"qty"`
	LineTotal float64  `json:"lineTotal"`
}

// CartDetail is the priced projection of a session cart.
type CartDetail struct {
	Items []CartDetailItem `json:"items"`
	Total float64          `json:"total"`
}
