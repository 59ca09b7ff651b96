package auth

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// TokenVerifier returns the subject id carried by a valid token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserLoader loads an identity by id.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver turns an authorization header value into an optional identity.
type Resolver struct {
	tokens TokenVerifier
}

func NewResolver(tokens TokenVerifier) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve returns the identity the header authenticates, or nil. Missing or
// invalid tokens and failed lookups all yield an anonymous caller.
func (r *Resolver) Resolve(ctx context.Context, header string, users UserLoader) *models.User {
	token := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
	if token == "" {
		return nil
	}

	userID, err := r.tokens.Verify(token)
	if err != nil {
		return nil
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}

	return user
}
