package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/nibbleworks/forkful/internal/recipes/http"
	"github.com/nibbleworks/forkful/internal/recipes/media"
	"github.com/nibbleworks/forkful/internal/recipes/service"
	"github.com/nibbleworks/forkful/internal/recipes/store"
	"github.com/nibbleworks/forkful/internal/recipes/store/drivers/sqlite"
	"github.com/nibbleworks/forkful/pkg/cryptox"
	"github.com/nibbleworks/forkful/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the recipe service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	media media.Store

	userService         *service.UserService
	tokenService        *service.TokenService
	recipeService       *service.RecipeService
	attributeService    *service.AttributeService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "recipes-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initMedia(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("recipes api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down recipes api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("recipes api stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMedia selects the image storage driver.
func (app *Application) initMedia() error {
	switch app.cfg.MediaDriver {
	case "", "fs":
		ms, err := media.NewFSStore(app.cfg.MediaRoot)
		if err != nil {
			return fmt.Errorf("failed to initialize media storage: %w", err)
		}
		app.media = ms
	case "minio":
		ms, err := media.NewMinioStore(context.Background(), media.MinioConfig{
			Endpoint:  app.cfg.MinioEndpoint,
			AccessKey: app.cfg.MinioAccessKey,
			SecretKey: app.cfg.MinioSecretKey,
			Bucket:    app.cfg.MinioBucket,
			UseSSL:    app.cfg.MinioUseSSL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize media storage: %w", err)
		}
		app.media = ms
	default:
		return fmt.Errorf("unknown media driver %q", app.cfg.MediaDriver)
	}

	app.logger.Info("media storage initialized", "driver", app.cfg.MediaDriver)
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db}
	app.tokenService = &service.TokenService{
		Store:    app.db,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.recipeService = &service.RecipeService{
		Store: app.db,
		Media: app.media,
	}
	app.attributeService = &service.AttributeService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.tokenService,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.UserService = app.userService
	router.TokenService = app.tokenService
	router.RecipeService = app.recipeService
	router.AttributeService = app.attributeService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
