package services

import (
	"math"

	"shop/internal/models"
	"shop/internal/repositories"
)

// CartService holds the cart rules: entries are unique per product, keep
// their insertion order, and are never validated against the catalog when
// mutated. Validation happens at detail time and at checkout.
type CartService struct {
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
	}
}

// Add merges qty into an existing entry or appends a new one. qty must
// already be validated positive by the caller.
func (s *CartService) Add(cart []models.CartItem, productID uint, qty int) []models.CartItem {
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Qty += qty
			return cart
		}
	}
	return append(cart, models.CartItem{ProductID: productID, Qty: qty})
}

// Update replaces the entry's quantity; zero removes the entry. Fails with
// ErrItemNotInCart when the product is not in the cart.
func (s *CartService) Update(cart []models.CartItem, productID uint, qty int) ([]models.CartItem, error) {
	for i := range cart {
		if cart[i].ProductID != productID {
			continue
		}
		if qty == 0 {
			return append(cart[:i], cart[i+1:]...), nil
		}
		cart[i].Qty = qty
		return cart, nil
	}
	return nil, ErrItemNotInCart
}

// Detail joins the cart against live product data. An empty cart returns
// an empty projection without touching the store. Entries whose product no
// longer exists keep a nil name/price and contribute zero to the total.
func (s *CartService) Detail(cart []models.CartItem) (*models.CartDetail, error) {
	detail := &models.CartDetail{Items: []models.CartDetailItem{}}
	if len(cart) == 0 {
		return detail, nil
	}

	ids := make([]uint, 0, len(cart))
	for _, item := range cart {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var total float64
	for _, item := range cart {
		line := models.CartDetailItem{ProductID: item.ProductID, Qty: item.Qty}
		if p, ok := byID[item.ProductID]; ok {
			name, price := p.Name, p.Price
			line.Name = &name
			line.Price = &price
			line.LineTotal = price * float64(item.Qty)
		}
		total += line.LineTotal
		detail.Items = append(detail.Items, line)
	}
	detail.Total = round2(total)
	return detail, nil
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
