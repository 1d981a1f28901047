package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/orthonext/team/internal/team/http"
	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/internal/team/store/drivers/memory"
	"github.com/orthonext/team/internal/team/store/drivers/postgres"
	"github.com/orthonext/team/internal/team/store/drivers/sqlite"
	"github.com/orthonext/team/pkg/cryptox"
	"github.com/orthonext/team/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application wires the directory and invite ledger behind the HTTP API.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	directoryService *service.DirectoryService
	inviteService    *service.InviteService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialised.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "team-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed API, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the server and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("team service starting",
		"port", app.cfg.Port,
		"driver", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down team service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("team service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := openStore(app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database ready", "driver", app.cfg.StoreDriver)
	return nil
}

func openStore(cfg Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case DriverMemory:
		return memory.NewStore(), nil
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		return sqlite.NewStore(dsn)
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (app *Application) initServices() error {
	pepper, err := cryptox.LoadOrGeneratePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	app.directoryService = service.NewDirectoryService(app.db, cryptox.NewArgon2id(pepper))
	app.inviteService = service.NewInviteService(app.db)
	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.DirectoryService = app.directoryService
	router.InviteService = app.inviteService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
