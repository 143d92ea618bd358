package repositories

import "shop/internal/models"

// UserRepository defines the interface for user data access. Users are
// immutable after registration.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
}
