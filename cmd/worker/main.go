// cmd/worker/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
	"github.com/ammerola/wardrobe-be/internal/bootstrap"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/pkg/config"
	"github.com/ammerola/wardrobe-be/internal/pkg/logger"
	"github.com/ammerola/wardrobe-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()

	if err := bootstrap.ApplySecrets(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to load secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend, err := bootstrap.OpenBackend(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to open store backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	storage, err := bootstrap.OpenBackupStorage(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to open backup storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The worker keeps its own store and reloads it before every job, so a
	// failed initial load is not fatal.
	store, err := bootstrap.NewStore(ctx, cfg, backend.KV, slogger)
	if err != nil {
		slogger.Warn("initial inventory load failed", slog.String("error", err.Error()))
	}
	defer store.Dispose()

	backups := services.NewBackupService(store, storage, slogger)
	reports := services.NewReportService(store, spreadsheet.NewXLSXRenderer(), storage, slogger)

	mux := workers.NewServeMux(
		workers.NewBackupProcessor(store, backups, cfg.Backup.Retention, slogger),
		workers.NewReportProcessor(store, reports, slogger),
	)

	srv := workers.NewServer(cfg.Asynq, slogger)
	scheduler := workers.NewScheduler(workers.RedisOpt(cfg.Asynq), slogger)

	entries, err := workers.RegisterBackupSchedule(scheduler, cfg.Backup.Schedule, cfg.Backup.Retention)
	if err != nil {
		slogger.Error("failed to register backup schedule", slog.String("error", err.Error()))
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	if err := srv.Start(mux); err != nil {
		slogger.Error("failed to start worker server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(entries) > 0 {
		if err := scheduler.Start(); err != nil {
			slogger.Error("failed to start scheduler", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("backup schedule registered",
			slog.String("schedule", cfg.Backup.Schedule),
			slog.Int("retention", cfg.Backup.Retention))
	}

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	if len(entries) > 0 {
		scheduler.Shutdown()
	}
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}
