package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// memStore is an in-memory stand-in for both repositories.
type memStore struct {
	users map[string]*models.User
	notes map[string]*models.Note
	clock time.Time

	failUsers error
	failNotes error
}

func newMemStore() *memStore {
	return &memStore{
		users: map[string]*models.User{},
		notes: map[string]*models.Note{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if r.failUsers != nil {
		return nil, r.failUsers
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.CreatedAt = r.tick()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return u, nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if r.failUsers != nil {
		return nil, r.failUsers
	}
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if r.failUsers != nil {
		return nil, r.failUsers
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) List(_ context.Context) ([]*models.User, error) {
	if r.failUsers != nil {
		return nil, r.failUsers
	}
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memUsers) Update(_ context.Context, id string, p models.UserPatch) (*models.User, error) {
	if r.failUsers != nil {
		return nil, r.failUsers
	}
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Email != nil {
		for _, other := range r.users {
			if other.ID != id && other.Email == *p.Email {
				return nil, common.ErrorAlreadyExists
			}
		}
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	u.UpdatedAt = r.tick()
	cp := *u
	return &cp, nil
}

func (r memUsers) Delete(_ context.Context, id string) error {
	if r.failUsers != nil {
		return r.failUsers
	}
	if _, ok := r.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, id)
	return nil
}

type memNotes struct{ *memStore }

func (r memNotes) Create(_ context.Context, n *models.Note) (*models.Note, error) {
	if r.failNotes != nil {
		return nil, r.failNotes
	}
	n.CreatedAt = r.tick()
	n.UpdatedAt = n.CreatedAt
	cp := *n
	r.notes[n.ID] = &cp
	return n, nil
}

func (r memNotes) GetByID(_ context.Context, id string) (*models.Note, error) {
	if r.failNotes != nil {
		return nil, r.failNotes
	}
	n, ok := r.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (r memNotes) ListByAuthor(ctx context.Context, authorID string) ([]*models.Note, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*models.Note, 0)
	for _, n := range all {
		if n.AuthorID == authorID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r memNotes) List(_ context.Context) ([]*models.Note, error) {
	if r.failNotes != nil {
		return nil, r.failNotes
	}
	out := make([]*models.Note, 0, len(r.notes))
	for _, n := range r.notes {
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotes) Update(_ context.Context, id string, p models.NotePatch) (*models.Note, error) {
	if r.failNotes != nil {
		return nil, r.failNotes
	}
	n, ok := r.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	n.UpdatedAt = r.tick()
	cp := *n
	return &cp, nil
}

func (r memNotes) Delete(_ context.Context, id string) error {
	if r.failNotes != nil {
		return r.failNotes
	}
	if _, ok := r.notes[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.notes, id)
	return nil
}

func (r memNotes) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	if r.failNotes != nil {
		return 0, r.failNotes
	}
	var n int64
	for id, note := range r.notes {
		if note.AuthorID == authorID {
			delete(r.notes, id)
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct {
	store *memStore
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return memUsers{m.store} }
func (m *fakeRepoManager) Notes(dbx.DBTX) notes.Repository              { return memNotes{m.store} }

type fixture struct {
	store  *memStore
	tokens *auth.TokenService
	users  *UserService
	notes  *NoteService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	rm := &fakeRepoManager{store: store}
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	return &fixture{
		store:  store,
		tokens: tokens,
		users:  NewUserService(rm, auth.NewBcryptHasher(bcrypt.MinCost), tokens, logging.Nop()),
		notes:  NewNoteService(rm, logging.Nop()),
	}
}

// seedUser inserts an identity directly, bypassing the service.
func (f *fixture) seedUser(t *testing.T, name string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(name+"-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := memUsers{f.store}.Create(context.Background(), &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) seedNote(t *testing.T, owner *models.User, title string) *models.Note {
	t.Helper()
	n, err := memNotes{f.store}.Create(context.Background(), &models.Note{
		ID:       uuid.NewString(),
		Title:    title,
		AuthorID: owner.ID,
	})
	require.NoError(t, err)
	return n
}

func as(u *models.User) *reqctx.Request {
	return &reqctx.Request{Identity: u}
}

func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}
