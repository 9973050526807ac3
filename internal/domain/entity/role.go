// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Role is a capability granted by the identity provider's token claims.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// ParseRole is case-insensitive and rejects roles this service does not grant.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleVendor, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// Roles is an unordered role set.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings keeps known roles once each, in claim order.
func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if r, ok := ParseRole(s); ok && !roles.Contains(r) {
			roles = append(roles, r)
		}
	}

	return roles
}

// Caller is the authenticated identity an operation runs on behalf of.
type Caller struct {
	UserID uuid.UUID
	Roles  Roles
}

func (c Caller) IsVendor() bool { return c.Roles.Contains(RoleVendor) }

func (c Caller) IsAdmin() bool { return c.Roles.Contains(RoleAdmin) }
