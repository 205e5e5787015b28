package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mailfleet/mailfleet/config"
	"github.com/mailfleet/mailfleet/internal/database"
	"github.com/mailfleet/mailfleet/internal/domain"
	httpHandler "github.com/mailfleet/mailfleet/internal/http"
	"github.com/mailfleet/mailfleet/internal/http/middleware"
	"github.com/mailfleet/mailfleet/internal/provider"
	"github.com/mailfleet/mailfleet/internal/repository"
	"github.com/mailfleet/mailfleet/internal/service"
	"github.com/mailfleet/mailfleet/pkg/alerts"
	"github.com/mailfleet/mailfleet/pkg/logger"
	"github.com/mailfleet/mailfleet/pkg/tracing"

	"contrib.go.opencensus.io/integrations/ocsql"
)

// App wires configuration, the database, repositories, services and the HTTP
// surface together, and owns the server lifecycle.
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer alerts.Mailer
	mux    *http.ServeMux
	server *http.Server

	// Repositories
	accountRepo   domain.AccountRepository
	sendCountRepo domain.SendCountRepository
	campaignRepo  domain.CampaignRepository
	sendLogRepo   domain.SendLogRepository
	queueRepo     domain.QueueRepository
	trackingRepo  domain.TrackingRepository
	templateRepo  domain.TemplateRepository
	recurringRepo domain.RecurringRepository
	sequenceRepo  domain.SequenceRepository

	// Services
	breaker         domain.CircuitBreakerService
	accountManager  domain.AccountManagerService
	trackingService domain.TrackingTokenService
	executor        domain.ExecutorService
	queueProcessor  *service.QueueProcessorService
	scheduler       domain.SchedulerService
	accountService  domain.AccountService
	campaignService domain.CampaignService

	// Graceful shutdown
	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	shutdownTimeout time.Duration
	activeRequests  int64
	requestWg       sync.WaitGroup
}

// AppOption configures the App during construction.
type AppOption func(*App)

// WithLogger overrides the default logger.
func WithLogger(log logger.Logger) AppOption {
	return func(a *App) {
		a.logger = log
	}
}

// WithMailer overrides the alert mailer, mostly for tests.
func WithMailer(mailer alerts.Mailer) AppOption {
	return func(a *App) {
		a.mailer = mailer
	}
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Initialize runs every initialization step in dependency order.
func (a *App) Initialize() error {
	if err := a.InitTracing(); err != nil {
		return err
	}
	if err := a.InitDB(); err != nil {
		return err
	}
	a.InitMailer()
	a.InitRepositories()
	a.InitServices()
	a.InitHandlers()
	return nil
}

// InitTracing initializes OpenCensus tracing and metrics exporters.
func (a *App) InitTracing() error {
	if err := tracing.InitTracing(&a.config.Tracing, a.logger); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if a.config.Tracing.Enabled {
		a.logger.WithField("trace_exporter", a.config.Tracing.TraceExporter).
			WithField("sampling_rate", a.config.Tracing.SamplingProbability).
			Info("Tracing initialized")
	}

	return nil
}

// InitDB ensures the engine database exists, connects and applies the schema.
func (a *App) InitDB() error {
	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d/%s as %s, sslmode %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.DBName,
		a.config.Database.User, a.config.Database.SSLMode))

	if err := database.EnsureDatabaseExists(&a.config.Database); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	driverName := "postgres"
	if a.config.Tracing.Enabled {
		var err error
		driverName, err = ocsql.Register(driverName, ocsql.WithAllTraceOptions())
		if err != nil {
			return fmt.Errorf("failed to register opencensus sql driver: %w", err)
		}
		a.logger.Info("Database driver wrapped with OpenCensus tracing")
	}

	db, err := sql.Open(driverName, database.GetDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	maxOpen, maxIdle, maxLifetime := database.GetConnectionPoolSettings()
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.InitializeSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.db = db
	a.logger.Info("Database initialized")
	return nil
}

// InitMailer picks the operator alert channel: SMTP when configured, the
// console otherwise.
func (a *App) InitMailer() {
	if a.mailer != nil {
		return
	}

	if a.config.Alerts.SMTPHost == "" || a.config.Alerts.AdminEmail == "" {
		a.mailer = alerts.NewConsoleMailer()
		a.logger.Info("Alert mailer not configured, alerts go to the log")
		return
	}

	a.mailer = alerts.NewSMTPMailer(&alerts.Config{
		SMTPHost:     a.config.Alerts.SMTPHost,
		SMTPPort:     a.config.Alerts.SMTPPort,
		SMTPUsername: a.config.Alerts.SMTPUsername,
		SMTPPassword: a.config.Alerts.SMTPPassword,
		FromEmail:    a.config.Alerts.FromEmail,
		FromName:     a.config.Alerts.FromName,
		AdminEmail:   a.config.Alerts.AdminEmail,
	})
	a.logger.WithField("admin_email", a.config.Alerts.AdminEmail).Info("Alert mailer configured")
}

// InitRepositories creates the PostgreSQL repositories.
func (a *App) InitRepositories() {
	a.accountRepo = repository.NewAccountRepository(a.db)
	a.sendCountRepo = repository.NewSendCountRepository(a.db)
	a.campaignRepo = repository.NewCampaignRepository(a.db)
	a.sendLogRepo = repository.NewSendLogRepository(a.db)
	a.queueRepo = repository.NewQueueRepository(a.db)
	a.trackingRepo = repository.NewTrackingRepository(a.db)
	a.templateRepo = repository.NewTemplateRepository(a.db)
	a.recurringRepo = repository.NewRecurringRepository(a.db)
	a.sequenceRepo = repository.NewSequenceRepository(a.db)
}

// InitServices creates the delivery engine services.
func (a *App) InitServices() {
	a.breaker = service.NewCircuitBreakerService(
		a.accountRepo,
		a.mailer,
		a.logger,
		a.config.Delivery.CircuitBreakerThreshold,
		a.config.Delivery.CircuitBreakerCooldown,
	)

	a.accountManager = service.NewAccountManagerService(
		a.accountRepo,
		a.sendCountRepo,
		a.sendLogRepo,
		a.breaker,
		a.logger,
		a.config.Security.SecretKey,
	)

	a.trackingService = service.NewTrackingTokenService(a.trackingRepo, a.logger)

	a.executor = service.NewExecutorService(
		a.campaignRepo,
		a.sendLogRepo,
		a.queueRepo,
		a.templateRepo,
		a.accountManager,
		a.breaker,
		a.trackingService,
		provider.NewProvider,
		a.logger,
		a.config.Delivery.TrustedBaseURL,
		a.config.Delivery.PaceInterval,
	)

	a.queueProcessor = service.NewQueueProcessorService(
		a.queueRepo,
		a.campaignRepo,
		a.templateRepo,
		a.executor,
		a.logger,
	)

	scheduled := service.NewScheduledDispatcher(a.campaignRepo, a.templateRepo, a.executor, a.logger)
	recurring := service.NewRecurringDispatcher(a.recurringRepo, a.templateRepo, a.executor, a.logger)
	sequences := service.NewSequenceDispatcher(a.sequenceRepo, a.templateRepo, a.executor, a.logger)
	a.scheduler = service.NewScheduler(scheduled, recurring, sequences, a.queueProcessor, a.logger)

	a.accountService = service.NewAccountService(a.accountRepo, provider.NewProvider, a.logger, a.config.Security.SecretKey)
	a.campaignService = service.NewCampaignService(a.campaignRepo, a.templateRepo, a.logger)
}

// InitHandlers creates the HTTP handlers and registers their routes.
func (a *App) InitHandlers() {
	campaignHandler := httpHandler.NewCampaignHandler(a.executor, a.campaignService, a.logger)
	accountHandler := httpHandler.NewAccountHandler(a.accountService, a.logger)
	queueHandler := httpHandler.NewQueueHandler(a.queueProcessor, a.queueRepo, a.logger)
	recurringHandler := httpHandler.NewRecurringHandler(a.recurringRepo, a.logger)
	sequenceHandler := httpHandler.NewSequenceHandler(a.sequenceRepo, a.logger)
	trackingHandler := httpHandler.NewTrackingHandler(a.trackingService, a.logger)
	rootHandler := httpHandler.NewRootHandler(a.db, a.logger, a.config.Version)

	campaignHandler.RegisterRoutes(a.mux)
	accountHandler.RegisterRoutes(a.mux)
	queueHandler.RegisterRoutes(a.mux)
	recurringHandler.RegisterRoutes(a.mux)
	sequenceHandler.RegisterRoutes(a.mux)
	trackingHandler.RegisterRoutes(a.mux)
	rootHandler.RegisterRoutes(a.mux)
}

// Start reports interrupted campaigns, starts the scheduler and serves HTTP.
// It blocks until the server stops.
func (a *App) Start() error {
	if err := service.ReportInterruptedCampaigns(context.Background(), a.campaignRepo, a.mailer, a.logger); err != nil {
		// Startup continues; the alert is best effort.
		a.logger.WithField("error", err.Error()).Error("Failed to report interrupted campaigns")
	}

	if err := a.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	var handler http.Handler = a.mux
	handler = middleware.LoggingMiddleware(a.logger)(handler)
	handler = middleware.RecoverMiddleware(a.logger)(handler)
	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
		a.logger.Info("OpenCensus tracing middleware enabled")
	}
	handler = a.gracefulShutdownMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	a.logger.WithField("address", addr).
		WithField("version", a.config.Version).
		Info("Server starting")

	err := a.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the scheduler, drains in-flight requests and closes the
// database.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown")
	a.shutdownCancel()

	if a.scheduler != nil && a.scheduler.IsRunning() {
		a.scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()

	var serverErr error
	if a.server != nil {
		serverErr = a.server.Shutdown(shutdownCtx)
	}

	// Wait for tracked requests; Shutdown already waits for most, this covers
	// hijacked and streaming responses.
	done := make(chan struct{})
	go func() {
		a.requestWg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		a.logger.WithField("active_requests", a.getActiveRequestCount()).
			Warn("Shutdown timeout reached with requests still active")
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Failed to close database")
		}
	}

	a.logger.Info("Shutdown complete")
	return serverErr
}

// GetConfig returns the application configuration.
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the application logger.
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the HTTP mux, mostly for tests.
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the database handle.
func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) incrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, 1)
	a.requestWg.Add(1)
}

func (a *App) decrementActiveRequests() {
	atomic.AddInt64(&a.activeRequests, -1)
	a.requestWg.Done()
}

func (a *App) getActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks in-flight requests and refuses new ones
// once shutdown has begun.
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		a.incrementActiveRequests()
		defer a.decrementActiveRequests()

		next.ServeHTTP(w, r)
	})
}
