// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
	"github.com/ammerola/wardrobe-be/internal/bootstrap"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/handlers"
	"github.com/ammerola/wardrobe-be/internal/handlers/middleware"
	"github.com/ammerola/wardrobe-be/internal/pkg/config"
	"github.com/ammerola/wardrobe-be/internal/pkg/logger"
	"github.com/ammerola/wardrobe-be/internal/workers"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	slogger.Info("starting wardrobe inventory api",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("store_backend", cfg.Store.Backend),
		slog.String("backup_driver", cfg.Backup.Driver),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(ctx, cfg, deps, slogger)

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server", slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}
		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	backend        *bootstrap.Backend
	store          *services.InventoryStore
	asynqClient    *asynq.Client
	asynqInspector *asynq.Inspector
	handlers       *handlers.Handlers
}

func (d *dependencies) cleanup() {
	if d.store != nil {
		d.store.Dispose()
	}
	if d.asynqClient != nil {
		d.asynqClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
	if d.backend != nil {
		d.backend.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	if err := bootstrap.ApplySecrets(ctx, cfg, logger); err != nil {
		return nil, err
	}

	backend, err := bootstrap.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	deps.backend = backend

	// A failed load leaves the API serving 503 until a retry succeeds.
	store, err := bootstrap.NewStore(ctx, cfg, backend.KV, logger)
	if err != nil {
		logger.Error("inventory not loaded, retrying in background", slog.String("error", err.Error()))
		go bootstrap.KeepLoading(ctx, store, cfg.Store.LoadTimeout, logger)
	}
	deps.store = store

	storage, err := bootstrap.OpenBackupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Warn("backup storage unavailable, remote backups disabled", slog.String("error", err.Error()))
	}

	var enqueuer ports.TaskEnqueuer
	if cfg.Asynq.RedisAddr != "" {
		redisOpt := workers.RedisOpt(cfg.Asynq)
		deps.asynqClient = asynq.NewClient(redisOpt)
		deps.asynqInspector = asynq.NewInspector(redisOpt)
		enqueuer = workers.NewEnqueuer(deps.asynqClient, cfg.Asynq.RetryMax, logger)
	}

	backups := services.NewBackupService(store, storage, logger)
	reports := services.NewReportService(store, spreadsheet.NewXLSXRenderer(), storage, logger)

	pingers := make(map[string]handlers.Pinger, len(backend.Pingers))
	for name, p := range backend.Pingers {
		pingers[name] = p
	}

	maxFileSize := int64(cfg.Backup.MaxSizeMB) * 1024 * 1024
	deps.handlers = &handlers.Handlers{
		Health:        handlers.NewHealthHandler(store, pingers, deps.asynqInspector, cfg, logger),
		Inventory:     handlers.NewInventoryHandler(store, logger),
		Dashboard:     handlers.NewDashboardHandler(store, logger),
		Import:        handlers.NewImportHandler(backups, enqueuer, maxFileSize, logger),
		Export:        handlers.NewExportHandler(backups, reports, logger),
		EnableMetrics: cfg.Server.EnableMetrics,
	}

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(ctx context.Context, cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps.handlers)

	// Metrics reads the matched route pattern, so it wraps the mux directly.
	var handler http.Handler = middleware.Metrics(mux)

	mws := []middleware.Middleware{
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(logger),
		middleware.Recovery(logger),
	}
	if cfg.Security.RateLimitRequests > 0 {
		mws = append(mws, middleware.RateLimit(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		mws = append(mws, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.SecureHeaders {
		mws = append(mws, middleware.SecureHeaders)
	}
	mws = append(mws, middleware.MaxBodySize(int64(cfg.Backup.MaxSizeMB)*1024*1024))
	if cfg.Server.RequestTimeout > 0 {
		mws = append(mws, middleware.Timeout(cfg.Server.RequestTimeout))
	}
	handler = middleware.Chain(handler, mws...)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
