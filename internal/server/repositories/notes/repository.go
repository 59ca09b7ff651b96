package notes

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// Repository persists notes. Lookups of unknown or malformed ids return
// common.ErrorNotFound. Listings are ordered newest first.
type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	GetByID(ctx context.Context, id string) (*models.Note, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Note, error)
	List(ctx context.Context) ([]*models.Note, error)
	Update(ctx context.Context, id string, patch models.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
}
