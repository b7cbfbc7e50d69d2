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

	httpapi "github.com/aussiebroadwan/predictclass/internal/predictclass/http"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/service"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/postgres"
	"github.com/aussiebroadwan/predictclass/internal/predictclass/store/drivers/sqlite"
	"github.com/aussiebroadwan/predictclass/pkg/cryptox"
	"github.com/aussiebroadwan/predictclass/pkg/httpx"
	"github.com/aussiebroadwan/predictclass/pkg/jwtx"
	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the predictclass service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	cookies  *httpx.SessionCookies
	hasher   cryptox.PasswordHasher

	sessionService       *service.SessionService
	userService          *service.UserService
	passwordResetService *service.PasswordResetService
	classService         *service.ClassService
	gameService          *service.GameService
	bootstrapService     *service.BootstrapService
	housekeepingService  *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "predictclass",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.PasswordHasher{Pepper: pepper}

	if err := app.initSessions(); err != nil {
		return nil, err
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

// Handler exposes the HTTP handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("predictclass starting", "port", app.cfg.Port, "version", BuildVersion)

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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down predictclass...")

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

	app.logger.Info("predictclass stopped")
	return nil
}

func (app *Application) initSessions() error {
	secret := []byte(app.cfg.SessionSecret)

	signer, err := jwtx.NewHS256Signer(secret)
	if err != nil {
		return fmt.Errorf("failed to create session signer: %w", err)
	}
	verifier, err := jwtx.NewHS256Verifier(secret, jwtx.VerifyOptions{Issuer: app.cfg.SessionIssuer})
	if err != nil {
		return fmt.Errorf("failed to create session verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	app.cookies = httpx.NewSessionCookies(
		app.cfg.SessionCookieName,
		secret,
		app.cfg.SessionTTL,
		app.cfg.Env != "dev" && app.cfg.Env != "test",
	)
	return nil
}

// initDatabase opens the configured driver and applies migrations.
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initServices() error {
	policy, err := service.PolicyByName(app.cfg.ScoringPolicy)
	if err != nil {
		return err
	}

	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: app.signer,
		Hasher: app.hasher,
		Issuer: app.cfg.SessionIssuer,
		TTL:    app.cfg.SessionTTL,
	}
	app.userService = &service.UserService{Store: app.db, Hasher: app.hasher}
	app.passwordResetService = &service.PasswordResetService{
		Store:    app.db,
		Ledger:   &service.ResetTokenLedger{Store: app.db},
		Hasher:   app.hasher,
		Notifier: service.LogNotifier{RevealToken: app.cfg.revealResetTokens()},
	}
	app.classService = &service.ClassService{
		Store: app.db,
		Allocator: &service.JoinCodeAllocator{
			Classes:     app.db.Classes(),
			MaxAttempts: app.cfg.JoinCodeMaxAttempts,
		},
	}
	app.gameService = &service.GameService{Store: app.db, Policy: policy}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Users: app.userService,
		Token: app.cfg.BootstrapToken,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	app.logger.Info("services initialised", "scoring_policy", app.cfg.ScoringPolicy)
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		app.cookies,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.StrictLimit = app.cfg.StrictLimit
	router.ModerateLimit = app.cfg.ModerateLimit
	router.SessionService = app.sessionService
	router.UserService = app.userService
	router.PasswordResetService = app.passwordResetService
	router.ClassService = app.classService
	router.GameService = app.gameService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
