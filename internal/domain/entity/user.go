package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a person known to the service. Accounts are provisioned by the
// identity provider; the service mirrors the fields it needs from token claims.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	IsVendor  bool
	IsAdmin   bool
	CreatedAt time.Time // first sign-in
	UpdatedAt time.Time
}

// Roles derives the capability set carried by this user.
func (u *User) Roles() Roles {
	roles := Roles{RoleUser}
	if u.IsVendor {
		roles = append(roles, RoleVendor)
	}
	if u.IsAdmin {
		roles = append(roles, RoleAdmin)
	}

	return roles
}
