// internal/workers/backup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/pkg/metrics"
)

// BackupProcessor handles backup export and prune tasks
type BackupProcessor struct {
	inventory ports.InventoryService
	backups   *services.BackupService
	retention int
	logger    *slog.Logger
}

// NewBackupProcessor creates a new backup processor. The inventory is
// reloaded from the durable store before every export.
func NewBackupProcessor(inventory ports.InventoryService, backups *services.BackupService, retention int, logger *slog.Logger) *BackupProcessor {
	return &BackupProcessor{
		inventory: inventory,
		backups:   backups,
		retention: retention,
		logger:    logger.With(slog.String("processor", "backup")),
	}
}

// ProcessExport uploads a fresh backup of the inventory.
func (p *BackupProcessor) ProcessExport(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload BackupPayload
	if err := decodePayload(t, &payload); err != nil {
		metrics.BackupsTotal.WithLabelValues("failed").Inc()
		return err
	}

	p.logger.InfoContext(ctx, "exporting backup", slog.String("reason", payload.Reason))

	if err := p.inventory.Load(ctx); err != nil {
		metrics.BackupsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	key, err := p.backups.Upload(ctx)
	if err != nil {
		metrics.BackupsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.BackupsTotal.WithLabelValues("success").Inc()
	p.logger.InfoContext(ctx, "backup exported",
		slog.String("key", key),
		slog.String("reason", payload.Reason),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// ProcessPrune deletes backups beyond the retention count.
func (p *BackupProcessor) ProcessPrune(ctx context.Context, t *asynq.Task) error {
	var payload PrunePayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}

	keep := payload.Keep
	if keep <= 0 {
		keep = p.retention
	}

	deleted, err := p.backups.Prune(ctx, keep)
	if err != nil {
		return fmt.Errorf("failed to prune backups: %w", err)
	}

	p.logger.InfoContext(ctx, "backup prune finished",
		slog.Int("deleted", len(deleted)),
		slog.Int("keep", keep))
	return nil
}
