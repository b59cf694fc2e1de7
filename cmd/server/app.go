package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/openstays/stays-api/internal/config"
	"github.com/openstays/stays-api/internal/platform/memory"
	"github.com/openstays/stays-api/internal/platform/postgres"
	"github.com/openstays/stays-api/internal/service"
	"github.com/openstays/stays-api/internal/service/auth"
	"github.com/openstays/stays-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB // nil when running on the in-memory backend

	userStore    store.UserStore
	placeStore   store.PlaceStore
	reviewStore  store.ReviewStore
	amenityStore store.AmenityStore

	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	facade         *service.Facade
}

// newApplication creates an application instance with all dependencies
// initialized. The storage backend follows the configuration: a database URL
// selects postgres (with migrations applied), no URL selects the in-memory
// stores.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	if cfg.Database.URL != "" {
		app.db, err = setupAppDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(app.db, logger); err != nil {
			return nil, err
		}

		app.userStore = postgres.NewUserStore(app.db, logger)
		app.placeStore = postgres.NewPlaceStore(app.db, logger)
		app.reviewStore = postgres.NewReviewStore(app.db, logger)
		app.amenityStore = postgres.NewAmenityStore(app.db, logger)
		logger.Info("Using postgres storage backend")
	} else {
		app.userStore = memory.NewUserStore()
		app.placeStore = memory.NewPlaceStore()
		app.reviewStore = memory.NewReviewStore()
		app.amenityStore = memory.NewAmenityStore()
		logger.Info("Using in-memory storage backend")
	}

	app.facade = service.NewFacade(
		app.userStore,
		app.placeStore,
		app.reviewStore,
		app.amenityStore,
		app.passwordHasher,
		app.db,
		logger,
	)

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

// tokenLifetime returns the configured access token lifetime.
func (app *application) tokenLifetime() time.Duration {
	return time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
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
