// internal/workers/report_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
)

// ReportProcessor builds spreadsheet reports and stores them
type ReportProcessor struct {
	inventory ports.InventoryService
	reports   *services.ReportService
	logger    *slog.Logger
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(inventory ports.InventoryService, reports *services.ReportService, logger *slog.Logger) *ReportProcessor {
	return &ReportProcessor{
		inventory: inventory,
		reports:   reports,
		logger:    logger.With(slog.String("processor", "report")),
	}
}

// ProcessReport renders the report from freshly loaded state and uploads it.
func (p *ReportProcessor) ProcessReport(ctx context.Context, t *asynq.Task) error {
	var payload ReportPayload
	if err := decodePayload(t, &payload); err != nil {
		return err
	}

	if err := p.inventory.Load(ctx); err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}

	key, err := p.reports.Upload(ctx)
	if err != nil {
		return err
	}

	p.logger.InfoContext(ctx, "report stored",
		slog.String("key", key),
		slog.Time("requested_at", payload.RequestedAt))
	return nil
}
