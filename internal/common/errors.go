// Package common defines shared constants and sentinel errors used across
// client and server layers of gophnotes. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthenticated    = errors.New("unauthenticated")
	ErrorForbidden          = errors.New("forbidden")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorValidation         = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
