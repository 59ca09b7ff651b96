package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
)

// fakeAPI is a tiny in-memory server: one account per email, tokens of the
// form "tok-<id>".
type fakeAPI struct {
	token    string
	closed   bool
	users    map[string]*models.User
	password map[string]string
	notes    []*models.Note

	lastUpdateNote []*string
	lastUpdateUser *models.UserPatch
	failWith       error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{users: map[string]*models.User{}, password: map[string]string{}}
}

func (f *fakeAPI) caller() *models.User {
	if !strings.HasPrefix(f.token, "tok-") {
		return nil
	}
	return f.users[strings.TrimPrefix(f.token, "tok-")]
}

func (f *fakeAPI) requireAuth() (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u := f.caller()
	if u == nil {
		return nil, &client.RemoteError{Sentinel: common.ErrorUnauthenticated, Message: "unauthenticated: you must be logged in to perform this action"}
	}
	return u, nil
}

func (f *fakeAPI) requireAdmin() error {
	u, err := f.requireAuth()
	if err != nil {
		return err
	}
	if u.Role != "ADMIN" {
		return &client.RemoteError{Sentinel: common.ErrorForbidden, Message: "forbidden: you must be an admin to perform this action"}
	}
	return nil
}

func (f *fakeAPI) addUser(name, email, password, role string) *models.User {
	u := &models.User{ID: fmt.Sprintf("u%d", len(f.users)+1), Name: name, Email: email, Role: role, CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-01-01T00:00:00Z"}
	f.users[u.ID] = u
	f.password[email] = password
	return u
}

func (f *fakeAPI) Close() error {
	f.closed = true
	return nil
}

func (f *fakeAPI) Ping(context.Context) error {
	return nil
}

func (f *fakeAPI) SetToken(token string) {
	f.token = token
}

func (f *fakeAPI) Register(_ context.Context, name, email, password string) (*models.AuthPayload, error) {
	if _, ok := f.password[email]; ok {
		return nil, &client.RemoteError{Sentinel: common.ErrorAlreadyExists, Message: "already exists"}
	}
	u := f.addUser(name, email, password, "REGULAR")
	f.token = "tok-" + u.ID
	return &models.AuthPayload{Token: f.token, User: u}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.AuthPayload, error) {
	for _, u := range f.users {
		if u.Email == email && f.password[email] == password {
			f.token = "tok-" + u.ID
			return &models.AuthPayload{Token: f.token, User: u}, nil
		}
	}
	return nil, &client.RemoteError{Sentinel: common.ErrorInvalidCredentials, Message: "invalid email or password"}
}

func (f *fakeAPI) Me(_ context.Context, withNotes bool) (*models.User, []*models.Note, error) {
	u := f.caller()
	if u == nil || !withNotes {
		return u, nil, nil
	}
	return u, f.notesOf(u.ID), nil
}

func (f *fakeAPI) notesOf(id string) []*models.Note {
	var out []*models.Note
	for _, n := range f.notes {
		if n.AuthorID == id {
			out = append(out, n)
		}
	}
	return out
}

func (f *fakeAPI) MyNotes(context.Context) ([]*models.Note, error) {
	u, err := f.requireAuth()
	if err != nil {
		return nil, err
	}
	return f.notesOf(u.ID), nil
}

func (f *fakeAPI) AllNotes(context.Context) ([]*models.Note, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	return f.notes, nil
}

func (f *fakeAPI) GetNote(_ context.Context, id string) (*models.Note, error) {
	if _, err := f.requireAuth(); err != nil {
		return nil, err
	}
	for _, n := range f.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, &client.RemoteError{Sentinel: common.ErrorNotFound, Message: "not found"}
}

func (f *fakeAPI) CreateNote(_ context.Context, title, description string) (*models.Note, error) {
	u, err := f.requireAuth()
	if err != nil {
		return nil, err
	}
	n := &models.Note{ID: fmt.Sprintf("n%d", len(f.notes)+1), Title: title, Description: description, AuthorID: u.ID, Author: u, CreatedAt: "2026-01-02T00:00:00Z", UpdatedAt: "2026-01-02T00:00:00Z"}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id string, title, description *string) (*models.Note, error) {
	f.lastUpdateNote = []*string{title, description}
	n, err := f.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if title != nil {
		n.Title = *title
	}
	if description != nil {
		n.Description = *description
	}
	return n, nil
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id string) (bool, error) {
	if _, err := f.GetNote(ctx, id); err != nil {
		return false, err
	}
	for i, n := range f.notes {
		if n.ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			break
		}
	}
	return true, nil
}

func (f *fakeAPI) ListUsers(context.Context) ([]*models.User, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	out := make([]*models.User, 0, len(f.users))
	for i := 1; i <= len(f.users); i++ {
		if u, ok := f.users[fmt.Sprintf("u%d", i)]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetUser(_ context.Context, id string, withNotes bool) (*models.User, []*models.Note, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, nil, err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil, &client.RemoteError{Sentinel: common.ErrorNotFound, Message: "not found"}
	}
	if !withNotes {
		return u, nil, nil
	}
	return u, f.notesOf(id), nil
}

func (f *fakeAPI) CreateUser(_ context.Context, req *models.NewUser) (*models.User, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = "REGULAR"
	}
	return f.addUser(req.Name, req.Email, req.Password, role), nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, req *models.UserPatch) (*models.User, error) {
	f.lastUpdateUser = req
	if _, err := f.requireAuth(); err != nil {
		return nil, err
	}
	u, ok := f.users[req.ID]
	if !ok {
		return nil, &client.RemoteError{Sentinel: common.ErrorNotFound, Message: "not found"}
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	return u, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id string) (bool, error) {
	if _, err := f.requireAuth(); err != nil {
		return false, err
	}
	if _, ok := f.users[id]; !ok {
		return false, &client.RemoteError{Sentinel: common.ErrorNotFound, Message: "not found"}
	}
	delete(f.users, id)
	return true, nil
}

// env runs commands against one fakeAPI and one session file, as repeated
// invocations of the binary would.
type env struct {
	t           *testing.T
	api         *fakeAPI
	sessionFile string
	addr        string
	stdin       string
	password    string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return &env{
		t:           t,
		api:         newFakeAPI(),
		sessionFile: filepath.Join(t.TempDir(), "session.db"),
		addr:        "127.0.0.1:50051",
	}
}

func (e *env) run(args ...string) (string, string, error) {
	e.t.Helper()

	cfg := &config.Config{ServerEndpointAddr: e.addr, SessionFile: e.sessionFile, RequestTimeout: time.Second}
	var out, errOut bytes.Buffer
	app := NewApp(cfg, strings.NewReader(e.stdin), &out, &errOut)

	app.prompt.secret = func() ([]byte, error) { return []byte(e.password), nil }

	e.api.token = ""
	app.newClient = func(addr string, _ time.Duration, _ logging.Logger) (client.Client, error) {
		return e.api, nil
	}

	err := app.Execute(context.Background(), args)
	return out.String(), errOut.String(), err
}
