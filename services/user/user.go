package user

import (
	"fmt"

	userRepo "clinicportal/database/repository/user"
	"clinicportal/models"
)

// UserService defines user record operations exposed by the portal.
type UserService interface {
	// CreateUser stores a new user record as submitted.
	CreateUser(user *models.User) error
}

// DefaultUserService implements UserService against the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) CreateUser(user *models.User) error {
	if err := s.Repo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
