package services_test

import (
	"sync"
	"testing"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/stretchr/testify/assert"
)

// setupOrderService wires the order engine to the in-memory repositories
// with the mutex-backed transaction manager.
func setupOrderService() (*services.OrderService, *repositories.MockProductRepository, *repositories.MockOrderRepository) {
	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	orderRepo.Products = productRepo
	tx := repositories.NewMockTxManager(productRepo, orderRepo)
	return services.NewOrderService(tx, orderRepo, nil), productRepo, orderRepo
}

func TestOrderService_PlaceOrder(t *testing.T) {
	service, productRepo, orderRepo := setupOrderService()
	_ = productRepo.Create(&models.Product{Name: "Laptop", Price: 1200.00, Stock: 10})
	_ = productRepo.Create(&models.Product{Name: "Mouse", Price: 25.00, Stock: 50})

	cart := []models.CartItem{{ProductID: 1, Qty: 2}, {ProductID: 2, Qty: 3}}
	order, err := service.PlaceOrder(42, cart)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), order.UserID)
	assert.Equal(t, 2475.00, order.Total)
	assert.Len(t, order.Items, 2)

	// Captured prices, and the total equals the stored items.
	var sum float64
	for _, it := range order.Items {
		sum += float64(it.Qty) * it.Price
	}
	assert.Equal(t, order.Total, sum)

	// Stock decreased by exactly the ordered quantities.
	p1, _ := productRepo.GetByID(1)
	p2, _ := productRepo.GetByID(2)
	assert.Equal(t, 8, p1.Stock)
	assert.Equal(t, 47, p2.Stock)

	// Exactly one order persisted for the user.
	orders, err := orderRepo.ListByUser(42)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	service, productRepo, _ := setupOrderService()
	_ = productRepo.Create(&models.Product{Name: "Laptop", Price: 1200.00, Stock: 10})

	_, err := service.PlaceOrder(42, nil)
	assert.ErrorIs(t, err, services.ErrCartEmpty)

	// No store writes happened.
	p, _ := productRepo.GetByID(1)
	assert.Equal(t, 10, p.Stock)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	service, productRepo, orderRepo := setupOrderService()
	_ = productRepo.Create(&models.Product{Name: "Laptop", Price: 1200.00, Stock: 10})

	cart := []models.CartItem{{ProductID: 1, Qty: 1}, {ProductID: 99, Qty: 1}}
	_, err := service.PlaceOrder(42, cart)
	assert.ErrorIs(t, err, services.ErrProductsNotFound)

	p, _ := productRepo.GetByID(1)
	assert.Equal(t, 10, p.Stock)
	orders, _ := orderRepo.ListByUser(42)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_InsufficientStock(t *testing.T) {
	service, productRepo, orderRepo := setupOrderService()
	_ = productRepo.Create(&models.Product{Name: "Laptop", Price: 1200.00, Stock: 10})
	_ = productRepo.Create(&models.Product{Name: "Mouse", Price: 25.00, Stock: 2})

	cart := []models.CartItem{{ProductID: 1, Qty: 1}, {ProductID: 2, Qty: 3}}
	_, err := service.PlaceOrder(42, cart)

	var stockErr *services.InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)
	assert.Equal(t, uint(2), stockErr.ProductID)

	// Verified via re-read: no order, no stock change.
	p1, _ := productRepo.GetByID(1)
	p2, _ := productRepo.GetByID(2)
	assert.Equal(t, 10, p1.Stock)
	assert.Equal(t, 2, p2.Stock)
	orders, _ := orderRepo.ListByUser(42)
	assert.Empty(t, orders)
}

func TestOrderService_PlaceOrder_RoundsTotal(t *testing.T) {
	service, productRepo, _ := setupOrderService()
	_ = productRepo.Create(&models.Product{Name: "Cable", Price: 19.99, Stock: 10})

	order, err := service.PlaceOrder(42, []models.CartItem{{ProductID: 1, Qty: 3}})
	assert.NoError(t, err)
	assert.Equal(t, 59.97, order.Total)
}

// Two checkouts racing for the last unit: at most one may succeed and
// stock must never go negative.
func TestOrderService_PlaceOrder_ConcurrentLastUnit(t *testing.T) {
	service, productRepo, orderRepo := setupOrderService()
	_ = productRepo.Create(&models.Product{Name: "Laptop", Price: 1200.00, Stock: 1})

	cart := []models.CartItem{{ProductID: 1, Qty: 1}}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.PlaceOrder(uint(i+1), cart)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var stockErr *services.InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
	}
	assert.Equal(t, 1, successes)

	p, _ := productRepo.GetByID(1)
	assert.Equal(t, 0, p.Stock)

	total := 0
	for _, uid := range []uint{1, 2} {
		orders, _ := orderRepo.ListByUser(uid)
		total += len(orders)
	}
	assert.Equal(t, 1, total)
}
