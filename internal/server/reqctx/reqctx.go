// Package reqctx carries the per-request context handed to every service
// operation: the database pool and the optional authenticated identity.
package reqctx

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// Request is built once per inbound call. Identity is nil for anonymous
// callers.
type Request struct {
	DB       *sql.DB
	Identity *models.User
}

// Anonymous reports whether no identity was resolved.
func (r *Request) Anonymous() bool {
	return r == nil || r.Identity == nil
}

type ctxKey struct{}

// WithRequest attaches rc to ctx.
func WithRequest(ctx context.Context, rc *Request) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the Request attached by WithRequest, or an empty
// anonymous Request when none is present.
func FromContext(ctx context.Context) *Request {
	if rc, ok := ctx.Value(ctxKey{}).(*Request); ok && rc != nil {
		return rc
	}
	return &Request{}
}
