package services

import (
	"errors"
	"log"
	"sort"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/pkg/rabbitmq"
)

// OrderService converts session carts into durable orders. Checkout is
// all-or-nothing: validation, the order insert, its items and every stock
// decrement share one transaction.
type OrderService struct {
	tx        repositories.TxManager
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, which
// disables event publishing.
func NewOrderService(tx repositories.TxManager, orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		tx:        tx,
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// PlaceOrder checks the cart against current stock, computes the total,
// persists the order with captured item prices and decrements stock, all
// inside one transaction. Any failure rolls the whole unit back.
func (s *OrderService) PlaceOrder(userID uint, cart []models.CartItem) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, ErrCartEmpty
	}

	// Cart entries are unique per product, so the cart ids are already
	// the distinct set.
	ids := make([]uint, 0, len(cart))
	for _, item := range cart {
		ids = append(ids, item.ProductID)
	}

	var order *models.Order
	err := s.tx.WithTransaction(func(products repositories.ProductRepository, orders repositories.OrderRepository) error {
		fetched, err := products.GetByIDs(ids)
		if err != nil {
			return err
		}
		if len(fetched) != len(ids) {
			return ErrProductsNotFound
		}
		byID := make(map[uint]models.Product, len(fetched))
		for _, p := range fetched {
			byID[p.ID] = p
		}

		// Snapshot stock check before any write; the guarded decrement
		// below re-enforces it against concurrent checkouts.
		var total float64
		items := make([]models.OrderItem, 0, len(cart))
		for _, item := range cart {
			p := byID[item.ProductID]
			if item.Qty > p.Stock {
				return &InsufficientStockError{ProductID: item.ProductID}
			}
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Qty:       item.Qty,
				Price:     p.Price,
			})
			total += p.Price * float64(item.Qty)
		}

		o := &models.Order{
			UserID: userID,
			Total:  round2(total),
			Items:  items,
		}
		if err := orders.Create(o); err != nil {
			return err
		}

		// Decrement in ascending product-id order so concurrent
		// multi-item checkouts cannot deadlock each other.
		sorted := make([]models.CartItem, len(cart))
		copy(sorted, cart)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })
		for _, item := range sorted {
			if err := products.DecrementStock(item.ProductID, item.Qty); err != nil {
				if errors.Is(err, repositories.ErrInsufficientStock) {
					return &InsufficientStockError{ProductID: item.ProductID}
				}
				return err
			}
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderPlaced(order)
	return order, nil
}

// publishOrderPlaced emits the order event best-effort; a broker failure
// never fails a committed order.
func (s *OrderService) publishOrderPlaced(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	event := rabbitmq.OrderPlacedEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
	}
	if err := s.mqClient.PublishOrderPlaced(event); err != nil {
		log.Printf("Warning: failed to publish order placed event for order %d: %v", order.ID, err)
	}
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// GetOrder returns one of the user's orders together with its detailed
// items. Another user's order id reads as not found.
func (s *OrderService) GetOrder(orderID, userID uint) (*models.Order, []models.OrderItemDetail, error) {
	order, err := s.orderRepo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderRepo.ItemsByOrder(order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}
