package services_test

import (
	"testing"

	"shop/internal/models"
	"shop/internal/repositories"
	"shop/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ids []uint) ([]models.Product, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id uint, qty int) error {
	args := m.Called(id, qty)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: 1, Name: "Product A", Price: 10.0, Stock: 100},
		{ID: 2, Name: "Product B", Price: 20.0, Stock: 50},
	}

	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: 1, Name: "Product A", Price: 10.0, Stock: 100}

	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", uint(99)).Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}
