// Package server initializes and runs the gophnotes server: it opens the
// database pool, applies migrations, seeds the admin account, wires services
// and serves gRPC until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophnotes/internal/server/reqctx"
	"github.com/dmitrijs2005/gophnotes/internal/server/services"

	gs "github.com/dmitrijs2005/gophnotes/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	userService *services.UserService
	noteService *services.NoteService
}

// openDB is a seam for tests.
var openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
	return dbx.OpenPostgres(ctx, dsn, dbx.PoolOptions{MaxOpenConns: 20, MaxIdleConns: 5})
}

func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	return newApp(ctx, c, l, repomanager.NewPostgresRepositoryManager())
}

func newApp(ctx context.Context, c *config.Config, l logging.Logger, rm repomanager.RepositoryManager) (*App, error) {
	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	hasher := auth.NewBcryptHasher(c.BcryptCost)

	app := &App{
		config:      c,
		logger:      l,
		db:          db,
		repomanager: rm,
		tokens:      tokens,
		userService: services.NewUserService(rm, hasher, tokens, l),
		noteService: services.NewNoteService(rm, l),
	}

	if err := app.seedAdmin(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

// seedAdmin provisions the configured admin account when both email and
// password are set.
func (app *App) seedAdmin(ctx context.Context) error {
	if app.config.AdminEmail == "" || app.config.AdminPassword == "" {
		app.logger.Debug(ctx, "admin seeding skipped")
		return nil
	}

	user, created, err := app.userService.EnsureAdmin(ctx, &reqctx.Request{DB: app.db}, services.RegisterInput{
		Name:     app.config.AdminName,
		Email:    app.config.AdminEmail,
		Password: app.config.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("admin seed error: %w", err)
	}

	if created {
		app.logger.Info(ctx, "admin account created", "user_id", user.ID, "email", user.Email)
	} else {
		app.logger.Info(ctx, "admin account exists", "user_id", user.ID)
	}

	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) newGRPCServer() *gs.GRPCServer {
	return gs.NewGRPCServer(
		app.config.EndpointAddrGRPC,
		app.logger,
		app.db,
		app.repomanager,
		auth.NewResolver(app.tokens),
		app.userService,
		app.noteService,
		app.config.IsProduction(),
	)
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.newGRPCServer().Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the database pool.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "mode", app.config.Mode)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
