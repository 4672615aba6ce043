package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/backend"
	"github.com/dmitrijs2005/portfolio/internal/config"
	"github.com/dmitrijs2005/portfolio/internal/contact"
	"github.com/dmitrijs2005/portfolio/internal/credentials"
	"github.com/dmitrijs2005/portfolio/internal/database"
	"github.com/dmitrijs2005/portfolio/internal/filex"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/repositories/kv"
	"github.com/dmitrijs2005/portfolio/internal/session"
	"github.com/dmitrijs2005/portfolio/internal/ui"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Controller
	contact *contact.Service
	term    *ui.Terminal
	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// NewApp opens the configured storage and builds the controllers on top of
// it, rendering to stdout and reading from stdin.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	return newApp(ctx, c, log, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	a := &App{config: c, log: log, reader: bufio.NewReader(in), out: out}

	repo, err := a.openRepository(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	store := credentials.NewStore(repo, log.With("component", "credentials"))
	gw := backend.NewLocal(store, c.AuthDelay, c.ContactDelay, log.With("component", "backend"))

	a.term = ui.NewTerminal(out, c.NotificationTTL)
	a.session = session.NewController(gw, store, a.term, log.With("component", "session"))
	a.contact = contact.NewService(gw, a.term, log.With("component", "contact"))
	return a, nil
}

func (a *App) openRepository(ctx context.Context) (kv.Repository, error) {
	switch a.config.StorageBackend {
	case config.BackendSQLite:
		path, err := filex.EnsureParentDir(a.config.DatabasePath)
		if err != nil {
			return nil, err
		}
		db, err := database.InitDatabase(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		return kv.NewSQLiteRepository(db), nil

	case config.BackendRedis:
		client := kv.NewRedisClient(a.config.RedisAddr, a.config.RedisPassword, a.config.RedisDB)
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("error connecting to redis at %s: %w", a.config.RedisAddr, err)
		}
		return kv.NewRedisRepository(client, a.config.RedisKeyPrefix), nil

	case config.BackendMemory:
		return kv.NewMemoryRepository(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", a.config.StorageBackend)
}

// Run restores the persisted session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Portfolio (type 'help' for commands)")
	a.session.RestoreSession(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the storage backend.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn(context.Background(), "error closing storage", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.Authenticated
}

// status renders the state line of the prompt from the terminal view.
func (a *App) status() string {
	var parts []string
	if name := a.term.DisplayName(); name != "" {
		parts = append(parts, fmt.Sprintf("(%s)", name))
	}
	if pending := a.term.Pending(); len(pending) > 0 {
		parts = append(parts, fmt.Sprintf("[%s]", pending[len(pending)-1]))
	}
	if errs := a.term.FieldErrors(""); len(errs) > 0 {
		parts = append(parts, fmt.Sprintf("[field errors: %d]", len(errs)))
	}
	return strings.Join(parts, " ")
}
