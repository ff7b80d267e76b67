package userRepo

import "doctorsportal/models"

// UserRepository persists portal users keyed by email.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns nil without error when
	// no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Upsert updates the user matching u.Email, creating the record on
	// first sign-in. The stored role is never touched by an upsert.
	Upsert(u *models.User) error
	// SetRole sets the role of an existing user. Returns false when no
	// record matched; no record is created in that case.
	SetRole(email, role string) (bool, error)
}
