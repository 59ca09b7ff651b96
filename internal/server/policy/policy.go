// Package policy holds the authorization decisions shared by all resource
// operations. Functions are pure and run before any mutation.
package policy

import (
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// RequireAuthenticated fails with common.ErrorUnauthenticated for an
// anonymous caller.
func RequireAuthenticated(identity *models.User) (*models.User, error) {
	if identity == nil {
		return nil, fmt.Errorf("%w: you must be logged in to perform this action", common.ErrorUnauthenticated)
	}
	return identity, nil
}

// RequireAdmin additionally fails with common.ErrorForbidden unless the
// caller is an admin.
func RequireAdmin(identity *models.User) (*models.User, error) {
	u, err := RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, fmt.Errorf("%w: you must be an admin to perform this action", common.ErrorForbidden)
	}
	return u, nil
}

// RequireOwnerOrAdmin passes when the caller owns the resource or is an
// admin. Admin supersedes ownership.
func RequireOwnerOrAdmin(identity *models.User, ownerID string) (*models.User, error) {
	u, err := RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}
	if u.ID != ownerID && !u.IsAdmin() {
		return nil, fmt.Errorf("%w: you can only access your own resources", common.ErrorForbidden)
	}
	return u, nil
}

// RequireSelfOrAdmin is RequireOwnerOrAdmin for account records.
func RequireSelfOrAdmin(identity *models.User, userID string) (*models.User, error) {
	u, err := RequireAuthenticated(identity)
	if err != nil {
		return nil, err
	}
	if u.ID != userID && !u.IsAdmin() {
		return nil, fmt.Errorf("%w: you can only modify your own account", common.ErrorForbidden)
	}
	return u, nil
}
