// Package devserver runs an in-memory backend that speaks the portal wire
// protocol, for local development and end-to-end tests of the client.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/portal/internal/devserver/config"
	"github.com/dmitrijs2005/portal/internal/devserver/httpapi"
	"github.com/dmitrijs2005/portal/internal/devserver/users"
	"github.com/dmitrijs2005/portal/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *config.Config, log logging.Logger) *App {
	return &App{
		config: c,
		logger: log,
		server: &http.Server{
			Addr:              c.Addr,
			Handler:           NewHandler(c, log),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewHandler assembles the full HTTP stack over a fresh in-memory user store.
func NewHandler(c *config.Config, log logging.Logger) *gin.Engine {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	svc := users.NewService(users.NewMemoryRepository(), []byte(c.JWTSecret), c.TokenTTL)
	return httpapi.NewRouter(httpapi.RouterOptions{
		BasePath: c.BasePath,
		Service:  svc,
		Log:      log,
		Registry: reg,
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting dev server...", "addr", app.config.Addr, "base_path", app.config.BasePath)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping dev server...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return app.server.Shutdown(shutdownCtx)
}
