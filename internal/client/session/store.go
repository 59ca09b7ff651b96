// Package session persists CLI login state in a local SQLite database, one
// row per server address, so switching --addr keeps separate logins.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/session/migrations"
	"github.com/dmitrijs2005/gophnotes/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// ErrNoSession is returned by Load when nothing is stored for the address.
var ErrNoSession = errors.New("not logged in")

// Session is the state remembered after a successful register or login.
type Session struct {
	Addr    string
	Token   string
	UserID  string
	Email   string
	Role    string
	SavedAt time.Time
}

// Store reads and writes sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RunMigrations applies the embedded schema to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Open creates (if needed) and migrates the session database at path. The
// parent directory is created with 0700 and the file restricted to 0600,
// since it holds bearer tokens.
func Open(ctx context.Context, path string) (*Store, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("session migrations: %w", err)
	}

	if err := filex.RestrictFile(path); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

// Save stores s under s.Addr, replacing any previous session for it.
func (st *Store) Save(ctx context.Context, s Session) error {
	_, err := st.db.ExecContext(ctx, `
		INSERT INTO sessions (addr, token, user_id, email, role, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(addr) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			email = excluded.email,
			role = excluded.role,
			saved_at = excluded.saved_at
	`, s.Addr, s.Token, s.UserID, s.Email, s.Role, st.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", s.Addr, err)
	}
	return nil
}

// Load returns the session stored for addr or ErrNoSession.
func (st *Store) Load(ctx context.Context, addr string) (*Session, error) {
	s := &Session{}
	var savedAt string

	err := st.db.QueryRowContext(ctx,
		`SELECT addr, token, user_id, email, role, saved_at FROM sessions WHERE addr = ?`, addr,
	).Scan(&s.Addr, &s.Token, &s.UserID, &s.Email, &s.Role, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session[%s]: %w", addr, err)
	}

	if t, err := time.Parse(time.RFC3339Nano, savedAt); err == nil {
		s.SavedAt = t
	}

	return s, nil
}

// Delete forgets the session for addr. Deleting a missing session is not an
// error.
func (st *Store) Delete(ctx context.Context, addr string) error {
	if _, err := st.db.ExecContext(ctx, `DELETE FROM sessions WHERE addr = ?`, addr); err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", addr, err)
	}
	return nil
}

// Close releases the underlying database.
func (st *Store) Close() error {
	return st.db.Close()
}
