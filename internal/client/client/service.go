package client

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
)

// Client is the API surface the CLI commands depend on.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	SetToken(token string)

	Register(ctx context.Context, name, email, password string) (*models.AuthPayload, error)
	Login(ctx context.Context, email, password string) (*models.AuthPayload, error)
	Me(ctx context.Context, withNotes bool) (*models.User, []*models.Note, error)

	MyNotes(ctx context.Context) ([]*models.Note, error)
	AllNotes(ctx context.Context) ([]*models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, title, description string) (*models.Note, error)
	UpdateNote(ctx context.Context, id string, title, description *string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) (bool, error)

	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id string, withNotes bool) (*models.User, []*models.Note, error)
	CreateUser(ctx context.Context, u *models.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, p *models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

var _ Client = (*GRPCClient)(nil)
