package user

import "doctorsportal/models"

// UserService covers sign-in upserts, role resolution and role escalation.
type UserService interface {
	// SignIn upserts the user record and issues a fresh bearer token for
	// the email.
	SignIn(u *models.User) (string, error)
	// ResolveRole returns the stored role for the email, defaulting to
	// models.RoleUser for records without one. Returns ErrUserNotFound
	// when no user record exists, even if the caller holds a valid token.
	ResolveRole(email string) (string, error)
	// IsAdmin reports whether the email resolves to the admin role.
	// Unknown users are simply not admins.
	IsAdmin(email string) (bool, error)
	// Promote sets role=admin on the target user. Returns ErrUserNotFound
	// when the target does not exist; no placeholder record is created.
	Promote(email string) error
	// GetAllUsers retrieves all users.
	GetAllUsers() ([]models.User, error)
}
