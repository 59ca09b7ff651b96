// Package models holds the client-side view of accounts and notes. The gRPC
// client decodes wire messages into these types; the CLI prints them.
package models

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Note struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorID    string `json:"authorId"`
	Author      *User  `json:"author,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// AuthPayload is what register and login return.
type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// NewUser is an account created by an admin. An empty Role means REGULAR.
type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserPatch changes only its non-nil fields.
type UserPatch struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	Role     *string
}
