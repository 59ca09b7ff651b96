package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/policy"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/google/uuid"
)

// CreateNoteInput carries the fields of a new note.
type CreateNoteInput struct {
	Title       string
	Description string
}

// UpdateNoteInput lists the note fields to change; nil means unchanged.
type UpdateNoteInput struct {
	Title       *string
	Description *string
}

// NoteService provides note operations. Single-note operations resolve the
// note first, so an unknown id is NotFound before ownership is considered.
type NoteService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewNoteService(m repomanager.RepositoryManager, l logging.Logger) *NoteService {
	return &NoteService{
		repomanager: m,
		logger:      l.With("module", "note_service"),
	}
}

// Create stores a note owned by the caller.
func (s *NoteService) Create(ctx context.Context, rc *reqctx.Request, in CreateNoteInput) (*models.Note, error) {
	caller, err := policy.RequireAuthenticated(rc.Identity)
	if err != nil {
		return nil, err
	}

	if err := required("title", in.Title); err != nil {
		return nil, err
	}

	note, err := s.repomanager.Notes(rc.DB).Create(ctx, &models.Note{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		AuthorID:    caller.ID,
	})
	if err != nil {
		return nil, storageErr("create note", err)
	}

	note.Author = caller
	return note, nil
}

func (s *NoteService) Get(ctx context.Context, rc *reqctx.Request, id string) (*models.Note, error) {
	note, err := s.authorized(ctx, rc, id)
	if err != nil {
		return nil, err
	}

	if err := attachAuthors(ctx, s.repomanager.Users(rc.DB), note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, rc *reqctx.Request, id string, in UpdateNoteInput) (*models.Note, error) {
	note, err := s.authorized(ctx, rc, id)
	if err != nil {
		return nil, err
	}

	if err := optional("title", in.Title); err != nil {
		return nil, err
	}

	patch := models.NotePatch{Title: in.Title, Description: in.Description}
	if !patch.Empty() {
		if note, err = s.repomanager.Notes(rc.DB).Update(ctx, note.ID, patch); err != nil {
			return nil, storageErr("update note", err)
		}
	}

	if err := attachAuthors(ctx, s.repomanager.Users(rc.DB), note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, rc *reqctx.Request, id string) (bool, error) {
	note, err := s.authorized(ctx, rc, id)
	if err != nil {
		return false, err
	}

	if err := s.repomanager.Notes(rc.DB).Delete(ctx, note.ID); err != nil {
		return false, storageErr("delete note", err)
	}

	s.logger.Debug(ctx, "note deleted", "note_id", note.ID, "by", rc.Identity.ID)

	return true, nil
}

// ListMine returns the caller's notes, newest first.
func (s *NoteService) ListMine(ctx context.Context, rc *reqctx.Request) ([]*models.Note, error) {
	caller, err := policy.RequireAuthenticated(rc.Identity)
	if err != nil {
		return nil, err
	}

	notes, err := s.repomanager.Notes(rc.DB).ListByAuthor(ctx, caller.ID)
	if err != nil {
		return nil, storageErr("list notes", err)
	}

	setAuthor(notes, caller)
	return notes, nil
}

// ListAll returns every note, newest first. Admin only.
func (s *NoteService) ListAll(ctx context.Context, rc *reqctx.Request) ([]*models.Note, error) {
	if _, err := policy.RequireAdmin(rc.Identity); err != nil {
		return nil, err
	}

	notes, err := s.repomanager.Notes(rc.DB).List(ctx)
	if err != nil {
		return nil, storageErr("list notes", err)
	}

	if err := attachAuthors(ctx, s.repomanager.Users(rc.DB), notes...); err != nil {
		return nil, err
	}
	return notes, nil
}

// authorized loads a note and checks the caller may act on it.
func (s *NoteService) authorized(ctx context.Context, rc *reqctx.Request, id string) (*models.Note, error) {
	if _, err := policy.RequireAuthenticated(rc.Identity); err != nil {
		return nil, err
	}

	note, err := s.repomanager.Notes(rc.DB).GetByID(ctx, id)
	if err != nil {
		return nil, storageErr("get note", err)
	}

	if _, err := policy.RequireOwnerOrAdmin(rc.Identity, note.AuthorID); err != nil {
		return nil, err
	}

	return note, nil
}

// attachAuthors resolves the author of every note, loading each distinct id
// once. A note whose author is gone keeps a nil Author.
func attachAuthors(ctx context.Context, repo users.Repository, notes ...*models.Note) error {
	seen := make(map[string]*models.User)
	for _, n := range notes {
		author, ok := seen[n.AuthorID]
		if !ok {
			u, err := repo.GetByID(ctx, n.AuthorID)
			if err != nil && !errors.Is(err, common.ErrorNotFound) {
				return storageErr("get author", err)
			}
			author = u
			seen[n.AuthorID] = author
		}
		n.Author = author
	}
	return nil
}

func setAuthor(notes []*models.Note, author *models.User) {
	for _, n := range notes {
		n.Author = author
	}
}
