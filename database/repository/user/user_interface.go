package userRepo

import "clinicportal/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
}
