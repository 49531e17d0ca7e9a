// Package server initializes and runs the record store server: it wires the
// storage backend, the services and the HTTP endpoint, and handles graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"courseledger/internal/logging"
	"courseledger/internal/server/config"
	"courseledger/internal/server/httpapi"
	"courseledger/internal/server/services"
	"courseledger/internal/store"
	"courseledger/internal/store/postgres"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	services *services.Services
}

// NewApp builds the application from config. An empty DatabaseDSN selects
// the in-memory store; otherwise records live in PostgreSQL and pending
// migrations run before the server accepts traffic.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	st, err := initStore(c)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   c,
		logger:   logger,
		services: services.New(st),
	}, nil
}

func initStore(c *config.Config) (*store.Store, error) {
	if c.DatabaseDSN == "" {
		return store.NewMemory(), nil
	}

	db, err := postgres.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := postgres.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return postgres.NewStore(db), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the HTTP API until the context is cancelled or a signal
// arrives, then shuts down within the configured timeout.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	router := httpapi.NewRouter(app.logger, app.services, []byte(app.config.SecretKey))
	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
