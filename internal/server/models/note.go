package models

import "time"

// Note is owned by exactly one user, referenced by AuthorID. Author is
// filled in by the services on read and is never persisted.
type Note struct {
	ID          string
	Title       string
	Description string
	AuthorID    string
	Author      *User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NotePatch lists the fields an update may change; nil means unchanged.
type NotePatch struct {
	Title       *string
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p NotePatch) Empty() bool {
	return p.Title == nil && p.Description == nil
}
