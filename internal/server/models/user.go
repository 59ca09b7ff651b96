// Package models defines server-side data models persisted in the database.
package models

import "time"

// Role determines the authorization scope of an identity.
type Role string

const (
	RoleRegular Role = "REGULAR"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleRegular || r == RoleAdmin
}

// User is an identity. PasswordHash is opaque and never leaves the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserPatch lists the fields an update may change; nil means unchanged.
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *Role
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PasswordHash == nil && p.Role == nil
}
