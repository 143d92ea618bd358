package services_test

import (
	"testing"

	"shop/internal/models"
	"shop/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCartService_AddIsAdditive(t *testing.T) {
	service := services.NewCartService(nil)

	cart := service.Add(nil, 1, 2)
	cart = service.Add(cart, 1, 3)

	assert.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Qty)

	// A different product appends, preserving insertion order.
	cart = service.Add(cart, 2, 1)
	assert.Len(t, cart, 2)
	assert.Equal(t, uint(1), cart[0].ProductID)
	assert.Equal(t, uint(2), cart[1].ProductID)
}

func TestCartService_Update(t *testing.T) {
	service := services.NewCartService(nil)
	cart := []models.CartItem{{ProductID: 1, Qty: 2}, {ProductID: 2, Qty: 1}}

	// Replacing a quantity.
	cart, err := service.Update(cart, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, 4, cart[0].Qty)

	// Zero removes the entry.
	cart, err = service.Update(cart, 1, 0)
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, uint(2), cart[0].ProductID)

	// Absent product fails with the not-in-cart error.
	_, err = service.Update(cart, 99, 1)
	assert.ErrorIs(t, err, services.ErrItemNotInCart)
}

func TestCartService_DetailEmptyCartSkipsStore(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCartService(mockRepo)

	detail, err := service.Detail(nil)
	assert.NoError(t, err)
	assert.Empty(t, detail.Items)
	assert.Zero(t, detail.Total)
	mockRepo.AssertNotCalled(t, "GetByIDs")
}

func TestCartService_DetailJoinsProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCartService(mockRepo)

	cart := []models.CartItem{{ProductID: 1, Qty: 3}, {ProductID: 2, Qty: 2}}
	mockRepo.On("GetByIDs", []uint{1, 2}).Return([]models.Product{
		{ID: 1, Name: "Laptop", Price: 10.25, Stock: 5},
		{ID: 2, Name: "Mouse", Price: 0.25, Stock: 9},
	}, nil).Once()

	detail, err := service.Detail(cart)
	assert.NoError(t, err)
	assert.Len(t, detail.Items, 2)
	assert.Equal(t, "Laptop", *detail.Items[0].Name)
	assert.Equal(t, 30.75, detail.Items[0].LineTotal)
	assert.Equal(t, 31.25, detail.Total)
	mockRepo.AssertExpectations(t)
}

func TestCartService_DetailRoundsTotal(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCartService(mockRepo)

	cart := []models.CartItem{{ProductID: 1, Qty: 3}}
	mockRepo.On("GetByIDs", []uint{1}).Return([]models.Product{
		{ID: 1, Name: "Cable", Price: 19.99, Stock: 10},
	}, nil).Once()

	detail, err := service.Detail(cart)
	assert.NoError(t, err)
	assert.Equal(t, 59.97, detail.Total)
	mockRepo.AssertExpectations(t)
}

func TestCartService_DetailMissingProductContributesZero(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCartService(mockRepo)

	cart := []models.CartItem{{ProductID: 1, Qty: 2}, {ProductID: 42, Qty: 5}}
	mockRepo.On("GetByIDs", []uint{1, 42}).Return([]models.Product{
		{ID: 1, Name: "Keyboard", Price: 75.00, Stock: 3},
	}, nil).Once()

	detail, err := service.Detail(cart)
	assert.NoError(t, err)
	assert.Len(t, detail.Items, 2)

	missing := detail.Items[1]
	assert.Equal(t, uint(42), missing.ProductID)
	assert.Nil(t, missing.Name)
	assert.Nil(t, missing.Price)
	assert.Zero(t, missing.LineTotal)
	assert.Equal(t, 150.00, detail.Total)
	mockRepo.AssertExpectations(t)
}
