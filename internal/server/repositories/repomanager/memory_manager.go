package repomanager

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps users and notes in process memory. The
// DBTX handle is ignored, so transactions give no isolation; it backs
// transport and client tests that need a working store without PostgreSQL.
type InMemoryRepositoryManager struct {
	mu    sync.RWMutex
	users map[string]*models.User
	notes map[string]*models.Note
	now   func() time.Time
	last  time.Time
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: map[string]*models.User{},
		notes: map[string]*models.Note{},
		now:   time.Now,
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return memoryUsers{m}
}

func (m *InMemoryRepositoryManager) Notes(dbx.DBTX) notes.Repository {
	return memoryNotes{m}
}

// stamp returns a strictly increasing timestamp so newest-first ordering is
// stable. Callers hold the write lock.
func (m *InMemoryRepositoryManager) stamp() time.Time {
	t := m.now()
	if !t.After(m.last) {
		t = m.last.Add(time.Microsecond)
	}
	m.last = t
	return t
}

type memoryUsers struct{ m *InMemoryRepositoryManager }

func (r memoryUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	u.CreatedAt = r.m.stamp()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.m.users[u.ID] = &cp
	return u, nil
}

func (r memoryUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	u, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, u := range r.m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memoryUsers) List(_ context.Context) ([]*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]*models.User, 0, len(r.m.users))
	for _, u := range r.m.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r memoryUsers) Update(_ context.Context, id string, p models.UserPatch) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Email != nil {
		for _, other := range r.m.users {
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
	u.UpdatedAt = r.m.stamp()

	cp := *u
	return &cp, nil
}

func (r memoryUsers) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.users[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.m.users, id)
	return nil
}

type memoryNotes struct{ m *InMemoryRepositoryManager }

func (r memoryNotes) Create(_ context.Context, n *models.Note) (*models.Note, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	n.CreatedAt = r.m.stamp()
	n.UpdatedAt = n.CreatedAt
	cp := *n
	r.m.notes[n.ID] = &cp
	return n, nil
}

func (r memoryNotes) GetByID(_ context.Context, id string) (*models.Note, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	n, ok := r.m.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (r memoryNotes) ListByAuthor(_ context.Context, authorID string) ([]*models.Note, error) {
	return r.filter(func(n *models.Note) bool { return n.AuthorID == authorID }), nil
}

func (r memoryNotes) List(_ context.Context) ([]*models.Note, error) {
	return r.filter(func(*models.Note) bool { return true }), nil
}

func (r memoryNotes) filter(keep func(*models.Note) bool) []*models.Note {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]*models.Note, 0)
	for _, n := range r.m.notes {
		if keep(n) {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r memoryNotes) Update(_ context.Context, id string, p models.NotePatch) (*models.Note, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	n, ok := r.m.notes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	n.UpdatedAt = r.m.stamp()

	cp := *n
	return &cp, nil
}

func (r memoryNotes) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.notes[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.m.notes, id)
	return nil
}

func (r memoryNotes) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var n int64
	for id, note := range r.m.notes {
		if note.AuthorID == authorID {
			delete(r.m.notes, id)
			n++
		}
	}
	return n, nil
}
