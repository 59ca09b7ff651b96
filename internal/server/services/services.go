// Package services contains server-side business logic. Every operation
// receives the per-request context explicitly, consults the authorization
// policy first and only then touches storage.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints bearer tokens for an identity.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// storageErr passes domain sentinels through and marks everything else as
// an internal failure, keeping the cause for logs.
func storageErr(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrorAlreadyExists) ||
		errors.Is(err, common.ErrorUnauthenticated) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, common.ErrorInternal, err)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", common.ErrorValidation, field)
	}
	return nil
}

// optional validates a patch field: nil is fine, a blank value is not.
func optional(field string, value *string) error {
	if value == nil {
		return nil
	}
	return required(field, *value)
}
