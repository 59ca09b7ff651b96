package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
)

// SessionStore remembers one login per server address.
type SessionStore interface {
	Save(ctx context.Context, s session.Session) error
	Load(ctx context.Context, addr string) (*session.Session, error)
	Delete(ctx context.Context, addr string) error
	Close() error
}

type App struct {
	config *config.Config
	prompt *Prompter
	out    io.Writer
	errOut io.Writer
	logger logging.Logger

	jsonOutput bool
	verbose    bool

	newClient func(addr string, timeout time.Duration, logger logging.Logger) (client.Client, error)
	openStore func(ctx context.Context, path string) (SessionStore, error)

	api      client.Client
	sessions SessionStore
	current  *session.Session
}

// NewApp builds the CLI around cfg. Prompts read from in; results go to out,
// prompts and diagnostics to errOut.
func NewApp(cfg *config.Config, in io.Reader, out, errOut io.Writer) *App {
	return &App{
		config: cfg,
		prompt: NewPrompter(in, errOut),
		out:    out,
		errOut: errOut,
		logger: logging.Nop(),
		newClient: func(addr string, timeout time.Duration, l logging.Logger) (client.Client, error) {
			return client.NewGRPCClient(addr, timeout, l)
		},
		openStore: func(ctx context.Context, path string) (SessionStore, error) {
			st, err := session.Open(ctx, path)
			if err != nil {
				return nil, err
			}
			return st, nil
		},
	}
}

// Execute parses args and runs the selected command. A saved session the
// server no longer accepts is forgotten.
func (a *App) Execute(ctx context.Context, args []string) error {
	defer a.close()

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err != nil && errors.Is(err, common.ErrorUnauthenticated) && a.current != nil {
		a.forgetSession(ctx)
		return fmt.Errorf("%w (saved session cleared, log in again)", err)
	}
	return err
}

// connect opens the session store, restores the token saved for the selected
// server and prepares the API client.
func (a *App) connect(ctx context.Context) error {
	if a.verbose {
		a.logger = logging.NewForMode(a.errOut, false)
	}

	sessions, err := a.openStore(ctx, a.config.SessionFile)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	a.sessions = sessions

	s, err := sessions.Load(ctx, a.config.ServerEndpointAddr)
	switch {
	case errors.Is(err, session.ErrNoSession):
	case err != nil:
		return err
	default:
		a.current = s
	}

	c, err := a.newClient(a.config.ServerEndpointAddr, a.config.RequestTimeout, a.logger)
	if err != nil {
		return fmt.Errorf("connect %s: %w", a.config.ServerEndpointAddr, err)
	}
	if a.current != nil {
		c.SetToken(a.current.Token)
	}
	a.api = c

	a.logger.Debug(ctx, "client ready", "addr", a.config.ServerEndpointAddr, "logged_in", a.current != nil)
	return nil
}

func (a *App) close() {
	if a.api != nil {
		_ = a.api.Close()
	}
	if a.sessions != nil {
		_ = a.sessions.Close()
	}
}

func (a *App) saveSession(ctx context.Context, p *models.AuthPayload) error {
	s := session.Session{
		Addr:   a.config.ServerEndpointAddr,
		Token:  p.Token,
		UserID: p.User.ID,
		Email:  p.User.Email,
		Role:   p.User.Role,
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.current = &s
	return nil
}

func (a *App) forgetSession(ctx context.Context) {
	if err := a.sessions.Delete(ctx, a.config.ServerEndpointAddr); err != nil {
		a.logger.Warn(ctx, "cannot clear session", "error", err.Error())
	}
	a.current = nil
	a.api.SetToken("")
}

// ask returns value, prompting for it when empty.
func (a *App) ask(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.prompt.Line(prompt)
}

func (a *App) askPassword(value string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.prompt.Password("Enter password")
}
