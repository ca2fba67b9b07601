package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/devshowcase/internal/client/client"
	"github.com/dmitrijs2005/devshowcase/internal/client/config"
	"github.com/dmitrijs2005/devshowcase/internal/client/localdb"
	"github.com/dmitrijs2005/devshowcase/internal/client/repositories/session"
	"github.com/dmitrijs2005/devshowcase/internal/client/store"
	"github.com/dmitrijs2005/devshowcase/internal/client/views"
	"github.com/dmitrijs2005/devshowcase/internal/logging"
)

// listLimit is the page size asked for when a command loads a whole listing.
const listLimit = 100

var errNotLoggedIn = errors.New("you need to log in first")

type App struct {
	config *config.Config
	store  *store.Store
	db     *sql.DB
	logger logging.Logger

	reader *bufio.Reader
	out    io.Writer

	projectSort views.ProjectSort
	userSort    views.UserSort
}

// NewApp opens the session database, builds the gateway and the store and
// restores the persisted session.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api := client.NewHTTPClient(cfg.APIBaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.RequestsPerSecond, 1),
		client.WithLogger(logger),
	)
	st := store.New(api, session.NewSQLiteRepository(db), store.WithLogger(logger))
	api.SetTokenSource(st)

	if err := st.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(cfg, st, logger, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(cfg *config.Config, st *store.Store, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		config:      cfg,
		store:       st,
		logger:      logger,
		reader:      bufio.NewReader(in),
		out:         out,
		projectSort: views.ProjectsByRecent,
		userSort:    views.UsersByName,
	}
}

// Run starts the session supervisor and the REPL and blocks until the user
// exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer a.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.NewSupervisor(a.store, a.logger).Run(ctx)
	}()

	fmt.Fprintln(a.out, "Developer Showcase (type 'help' for commands)")
	if err := a.Home(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
	}

	runREPL(ctx, a, a.status, a.reader)

	cancel()
	wg.Wait()
	return nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return store.SelectIsAuthenticated(a.store.State())
}

func (a *App) status() string {
	if u := store.SelectCurrentUser(a.store.State()); u != nil && a.isLoggedIn() {
		return "(" + u.Username + ")"
	}
	if a.isLoggedIn() {
		return "(signed in)"
	}
	return "(guest)"
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}
