package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/placeshare/places-api/internal/config"
	"github.com/placeshare/places-api/internal/platform/filestore"
	"github.com/placeshare/places-api/internal/platform/postgres"
	"github.com/placeshare/places-api/internal/service"
	"github.com/placeshare/places-api/internal/service/auth"
	"github.com/placeshare/places-api/internal/store"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore  store.UserStore
	placeStore store.PlaceStore
	fileStore  filestore.FileStore

	// Services
	tokenService auth.TokenService
	userService  service.UserService
	placeService service.PlaceService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logging, and the database connection must
// already be established.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token authentication service initialized",
		"signup_token_lifetime_minutes", cfg.Auth.SignupTokenLifetimeMinutes,
		"login_token_lifetime_minutes", cfg.Auth.LoginTokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.placeStore = postgres.NewPostgresPlaceStore(db, logger)

	app.fileStore, err = filestore.NewDiskStore(cfg.Upload.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file store: %w", err)
	}

	app.userService, err = service.NewUserService(
		app.userStore,
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		auth.NewBcryptVerifier(),
		app.tokenService,
		cfg.Auth,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.placeService, err = service.NewPlaceService(
		app.placeStore,
		app.userStore,
		app.fileStore,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create place service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
