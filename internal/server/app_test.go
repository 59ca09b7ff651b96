package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type failingMigrations struct {
	*repomanager.InMemoryRepositoryManager
}

func (failingMigrations) RunMigrations(context.Context, *sql.DB) error {
	return errors.New("migration 00002 failed")
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.BcryptCost = bcrypt.MinCost
	return c
}

func stubOpenDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	orig := openDB
	openDB = func(context.Context, string) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() { openDB = orig })

	return mock
}

func TestNewApp_SeedsAdminOnce(t *testing.T) {
	stubOpenDB(t)
	rm := repomanager.NewInMemoryRepositoryManager()

	cfg := testConfig()
	cfg.AdminEmail = "admin@gmail.com"
	cfg.AdminPassword = "admin123"

	_, err := newApp(context.Background(), cfg, logging.Nop(), rm)
	require.NoError(t, err)
	_, err = newApp(context.Background(), cfg, logging.Nop(), rm)
	require.NoError(t, err)

	list, err := rm.Users(nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.RoleAdmin, list[0].Role)
	assert.Equal(t, "Admin User", list[0].Name)
}

func TestNewApp_SkipsSeedWithoutCredentials(t *testing.T) {
	stubOpenDB(t)
	rm := repomanager.NewInMemoryRepositoryManager()

	_, err := newApp(context.Background(), testConfig(), logging.Nop(), rm)
	require.NoError(t, err)

	list, err := rm.Users(nil).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewApp_DBError(t *testing.T) {
	orig := openDB
	openDB = func(context.Context, string) (*sql.DB, error) { return nil, errors.New("connection refused") }
	t.Cleanup(func() { openDB = orig })

	_, err := newApp(context.Background(), testConfig(), logging.Nop(), repomanager.NewInMemoryRepositoryManager())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_MigrationError(t *testing.T) {
	mock := stubOpenDB(t)
	mock.ExpectClose()

	_, err := newApp(context.Background(), testConfig(), logging.Nop(), failingMigrations{repomanager.NewInMemoryRepositoryManager()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	mock := stubOpenDB(t)
	mock.ExpectClose()

	app, err := newApp(context.Background(), testConfig(), logging.Nop(), repomanager.NewInMemoryRepositoryManager())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
