package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/portal/internal/client/api"
	"github.com/dmitrijs2005/portal/internal/client/client"
	"github.com/dmitrijs2005/portal/internal/client/config"
	"github.com/dmitrijs2005/portal/internal/client/metrics"
	"github.com/dmitrijs2005/portal/internal/client/nav"
	"github.com/dmitrijs2005/portal/internal/client/notify"
	"github.com/dmitrijs2005/portal/internal/client/repositories/state"
	"github.com/dmitrijs2005/portal/internal/client/services"
	"github.com/dmitrijs2005/portal/internal/client/session"
	"github.com/dmitrijs2005/portal/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const userAgent = "portal-cli"

type App struct {
	config    *config.Config
	log       logging.Logger
	store     *session.Store
	router    *nav.Router
	auth      services.AuthService
	profile   services.ProfileService
	stateRepo state.Repository
	registry  *prometheus.Registry
	reader    *bufio.Reader
	out       io.Writer
	now       func() time.Time
	closers   []func(context.Context) error
}

// NewApp opens the state database, restores the saved session and wires the
// request pipeline, services and router together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, c.StateDBPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	a, err := newApp(ctx, c, log, db, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return db.Close() })

	if c.MetricsAddr != "" {
		a.startMetricsServer(ctx)
	}
	return a, nil
}

func newApp(ctx context.Context, c *config.Config, log logging.Logger, db *sql.DB, in io.Reader, out io.Writer) (*App, error) {
	repo := state.NewSQLiteRepository(db)
	store := session.NewStore(session.NewRepositoryPersister(repo), log)
	if err := store.Restore(ctx); err != nil {
		// a broken snapshot only costs the user a fresh login
		log.Warn(ctx, "could not restore session, starting logged out", "error", err)
	}

	start := nav.LoginPath
	if store.Snapshot().Authenticated() {
		start = nav.HomePath
	}
	router := nav.NewRouter(start)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)
	pipeline := api.New(c.ServerBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
		api.WithOutbound(
			api.AttachCredential(store),
			api.AttachRequestID(),
			api.SetUserAgent(userAgent),
		),
		api.WithInbound(api.DefaultInbound(api.Session{
			Store:      store,
			Redirector: router,
			Notifier:   notify.NewWriter(out),
			Metrics:    m,
			Log:        log,
		})...),
	)
	apiClient := client.NewHTTPClient(pipeline)

	return &App{
		config:    c,
		log:       log,
		store:     store,
		router:    router,
		auth:      services.NewAuthService(apiClient, store, router),
		profile:   services.NewProfileService(apiClient, store),
		stateRepo: repo,
		registry:  registry,
		reader:    bufio.NewReader(in),
		out:       out,
		now:       time.Now,
	}, nil
}

func (a *App) startMetricsServer(ctx context.Context) {
	srv := metrics.NewServer(a.config.MetricsAddr, a.registry)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error(ctx, "metrics server stopped", "error", err)
		}
	}()
	a.closers = append(a.closers, srv.Shutdown)
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// Close releases the database and stops the metrics server.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) onLogin() bool {
	return a.router.OnLogin()
}
