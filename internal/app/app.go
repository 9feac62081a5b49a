package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"awreports/internal/config"
	apierrors "awreports/internal/errors"
	"awreports/internal/infrastructure"
	customMiddleware "awreports/internal/middleware"
	"awreports/internal/services"
	"awreports/internal/storage"
	handlers "awreports/internal/transport/http"
	"awreports/pkg/contracts"
)

// AppName is logged at startup
const AppName = "AdventureWorks Reports"

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	DB            *sql.DB
	Logger        *slog.Logger
	Services      *ServiceContainer
	ErrorHandler  *apierrors.ErrorHandler
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.BusinessMetrics
	SystemMetrics *infrastructure.SystemMetrics
}

// NewApplication loads the configuration, initializes the global logger and
// builds the application.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(ctx, cfg, logger)
}

// New wires the store, services, router and server for cfg
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	logger.InfoContext(ctx, "Application starting",
		slog.String("name", AppName),
		slog.String("version", contracts.GetVersionString()))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	db, err := OpenStore(ctx, cfg.Database, logger)
	if err != nil {
		_ = otelProviders.Shutdown(ctx)
		return nil, err
	}

	app := &Application{
		Config:        cfg,
		DB:            db,
		Logger:        logger,
		ErrorHandler:  apierrors.NewErrorHandler(logger, cfg.Logging.Development),
		OTelProviders: otelProviders,
	}

	if err := app.initializeServices(); err != nil {
		db.Close()
		_ = otelProviders.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// OpenStore opens the report database, applying the schema and loading the
// demo data set when the configuration asks for it.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate || cfg.SeedDemoData {
		if err := storage.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	if cfg.SeedDemoData {
		rows, err := storage.Seed(ctx, db)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.InfoContext(ctx, "Demo data loaded", slog.Int("rows", rows))
	}

	return db, nil
}

// initializeServices initializes all application services
func (a *Application) initializeServices() error {
	businessMetrics, err := infrastructure.CreateBusinessMetrics(a.OTelProviders.Meter)
	if err != nil {
		return fmt.Errorf("failed to create business metrics: %w", err)
	}
	a.Metrics = businessMetrics

	systemMetrics, err := infrastructure.RegisterSystemMetrics(a.OTelProviders.Meter, a.DB.Stats)
	if err != nil {
		return fmt.Errorf("failed to register system metrics: %w", err)
	}
	a.SystemMetrics = systemMetrics

	observer := infrastructure.NewReportObserver(a.OTelProviders.Tracer, businessMetrics)
	a.Services = NewServiceContainer(a.DB, a.Config.Database, observer, a.Logger)

	return nil
}

// setupRouter configures the HTTP router with all routes.
// Middleware order: RequestID → RealIP → OTel → Logger → Recoverer →
// SecurityHeaders → CORS → RateLimit → Timeout.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.NewOTelMiddleware(a.OTelProviders.Tracer, a.Metrics).Handler)
	r.Use(customMiddleware.StructuredLogger(a.Logger))
	r.Use(customMiddleware.Recoverer(a.ErrorHandler))
	r.Use(customMiddleware.SecurityHeaders)

	// preflight requests are answered here, before routing
	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
			a.ErrorHandler,
		).Handler)
	}

	r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.ErrorHandler))

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	a.setupReportRoutes(r)
	r.Mount("/api", handlers.NewHealthHandler(a.Services.Health).Routes())
	r.Method(http.MethodGet, "/metrics", handlers.NewMetricsHandler(a.OTelProviders.PrometheusHTTP, a.ErrorHandler))

	a.Router = r
}

// setupReportRoutes registers every report at the router root
func (a *Application) setupReportRoutes(r chi.Router) {
	validator := customMiddleware.NewQueryValidator(a.Logger)

	handlers.NewProductionHandler(a.Services.Production, validator, a.ErrorHandler, a.Logger).Routes(r)
	handlers.NewSalesHandler(a.Services.Sales, validator, a.ErrorHandler, a.Logger).Routes(r)
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Addr(),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start starts the HTTP server in the background. A listen failure is
// logged and cancels ctx through cancel.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("name", AppName),
		slog.String("version", contracts.Version),
		slog.String("address", a.Server.Addr),
		slog.String("level", a.Config.Logging.Level))

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	if err := a.performStartupHealthCheck(ctx); err != nil {
		a.Logger.WarnContext(ctx, "Startup health check warnings", slog.String("warnings", err.Error()))
	}

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", a.Server.Addr))

	return nil
}

// performStartupHealthCheck reports whether the store is reachable
func (a *Application) performStartupHealthCheck(ctx context.Context) error {
	status := a.Services.Health.ReadinessCheck(ctx)
	if status.Status == services.StatusReady {
		return nil
	}
	db := status.Services["database"]
	return fmt.Errorf("database %s: %s", db.Status, db.Message)
}

// Stop gracefully shuts down the server, flushes telemetry and closes the store
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
	}

	if err := a.SystemMetrics.Unregister(); err != nil {
		a.Logger.WarnContext(ctx, "Failed to unregister system metrics", slog.String("error", err.Error()))
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("database close error: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

// Run starts the application and blocks until SIGINT, SIGTERM or a server
// failure, then shuts down.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	select {
	case sig := <-sigChan:
		a.Logger.InfoContext(ctx, "Received interrupt signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		a.Logger.WarnContext(ctx, "Server stopped unexpectedly")
	}

	// ctx may already be cancelled; shutdown gets its own deadline
	return a.Stop(context.Background())
}
