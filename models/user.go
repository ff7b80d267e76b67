package models

import "time"

// Roles stored on a user record. Any existing user without an explicit
// role is treated as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a portal user. Records are created implicitly on first
// sign-in via the upsert endpoint.
type User struct {
	Email     string    `bson:"email" json:"email"` // Unique key
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EffectiveRole returns the stored role, defaulting to RoleUser when the
// record predates the role field.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}
