package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	httpapi "github.com/guildnet/board/internal/board/http"
	"github.com/guildnet/board/internal/board/notify"
	"github.com/guildnet/board/internal/board/service"
	"github.com/guildnet/board/internal/board/store"
	"github.com/guildnet/board/internal/board/store/drivers/sqlite"
	"github.com/guildnet/board/pkg/cryptox"
	"github.com/guildnet/board/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the board service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db store.Store

	// Services
	tokenService        *service.TokenService
	registrationService *service.RegistrationService
	confirmationService *service.ConfirmationService
	categoryService     *service.CategoryService
	postService         *service.PostService
	moderationService   *service.ModerationService
	subscriptionService *service.SubscriptionService
	housekeepingService *service.HousekeepingService

	// Background notification delivery
	dispatcher *notify.Dispatcher

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "board-service",
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
		return nil, err
	}

	if err := app.seedCategories(); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start background workers
	app.dispatcher.Start()
	app.housekeepingService.Start()

	app.logger.Info("board service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down board service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop background workers
	app.housekeepingService.Stop()
	app.dispatcher.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("board service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

// initServices initializes all business logic services
func (app *Application) initServices() error {
	secret := app.cfg.TokenSecret
	if secret == "" {
		if app.cfg.Env == "prod" {
			return fmt.Errorf("BOARD_TOKEN_SECRET is required in prod")
		}
		// Dev convenience: sessions do not survive restarts
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate token secret: %w", err)
		}
		secret = generated
		app.logger.Warn("BOARD_TOKEN_SECRET not set, using an ephemeral secret")
	}

	app.tokenService = &service.TokenService{
		Store:  app.db,
		Secret: []byte(secret),
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.TokenTTL,
	}

	app.confirmationService = &service.ConfirmationService{Store: app.db}
	app.registrationService = &service.RegistrationService{
		Store:   app.db,
		Confirm: app.confirmationService,
	}
	app.categoryService = &service.CategoryService{Store: app.db}
	app.subscriptionService = &service.SubscriptionService{
		Store:   app.db,
		Confirm: app.confirmationService,
	}
	app.postService = &service.PostService{
		Store:         app.db,
		Confirm:       app.confirmationService,
		Subscriptions: app.subscriptionService,
	}
	app.moderationService = &service.ModerationService{
		Store:   app.db,
		Confirm: app.confirmationService,
	}

	app.dispatcher = notify.NewDispatcher(
		app.db,
		app.newNotifier(),
		app.logger,
		app.cfg.DispatchInterval,
		app.cfg.DispatchBatch,
	)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.OutboxRetention,
	)

	return nil
}

// newNotifier picks the SMTP mailer when configured. Without one, dev and
// test environments render mail to the log so confirmation codes stay
// reachable; production discards.
func (app *Application) newNotifier() notify.Notifier {
	if app.cfg.SMTPAddr == "" {
		if app.cfg.Env != "prod" {
			app.logger.Warn("BOARD_SMTP_ADDR not set, notifications will be logged")
			return notify.NewLogNotifier(app.logger)
		}
		app.logger.Warn("BOARD_SMTP_ADDR not set, notifications will be discarded")
		return notify.NewNoopNotifier(app.logger)
	}

	var auth smtp.Auth
	if user := os.Getenv("BOARD_SMTP_USER"); user != "" {
		host := app.cfg.SMTPAddr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", user, os.Getenv("BOARD_SMTP_PASSWORD"), host)
	}

	return &notify.SMTPNotifier{
		Addr: app.cfg.SMTPAddr,
		From: app.cfg.SMTPFrom,
		Auth: auth,
	}
}

// seedCategories makes sure every configured category exists and is active.
func (app *Application) seedCategories() error {
	ctx := context.Background()
	for _, name := range app.cfg.Categories {
		if _, err := app.categoryService.EnsureCategory(ctx, name); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", name, err)
		}
	}
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)

	// Wire services to router
	router.TokenService = app.tokenService
	router.RegistrationService = app.registrationService
	router.ConfirmationService = app.confirmationService
	router.CategoryService = app.categoryService
	router.PostService = app.postService
	router.ModerationService = app.moderationService
	router.SubscriptionService = app.subscriptionService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
