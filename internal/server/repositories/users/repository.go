package users

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// Repository persists identities. Lookups of unknown or malformed ids
// return common.ErrorNotFound; email conflicts return
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
