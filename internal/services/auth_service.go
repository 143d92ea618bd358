package services

import (
	"errors"
	"fmt"

	"shop/internal/models"
	"shop/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential checks. Session
// establishment itself is cookie plumbing and lives at the HTTP layer.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a new account with a bcrypt-hashed password. The email
// must not be registered already.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials and yields the user on success. The
// same error covers unknown email and wrong password so the response does
// not reveal which one failed.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
