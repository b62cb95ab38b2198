// internal/core/services/report.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// ReportService renders inventory reports and stores them next to backups.
type ReportService struct {
	inventory ports.InventoryService
	renderer  ports.ReportRenderer
	storage   ports.BackupStorage
	keys      *BackupService
	now       func() time.Time
	logger    *slog.Logger
}

// NewReportService creates a new report service. storage may be nil when
// reports are only rendered for download.
func NewReportService(inventory ports.InventoryService, renderer ports.ReportRenderer, storage ports.BackupStorage, logger *slog.Logger) *ReportService {
	return &ReportService{
		inventory: inventory,
		renderer:  renderer,
		storage:   storage,
		keys:      NewBackupService(inventory, storage, logger),
		now:       time.Now,
		logger:    logger.With(slog.String("service", "report")),
	}
}

// ContentType is the MIME type of rendered reports.
func (s *ReportService) ContentType() string { return s.renderer.ContentType() }

// FileName suggests a download name for a report generated now.
func (s *ReportService) FileName() string {
	return fmt.Sprintf("wardrobe-report-%s%s", s.now().Format("2006-01-02"), s.renderer.Extension())
}

// Build renders the current inventory.
func (s *ReportService) Build(ctx context.Context) ([]byte, error) {
	overview, err := s.inventory.Overview(ctx)
	if err != nil {
		return nil, err
	}
	batches, err := s.inventory.ListActiveBatches(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(ctx, &ports.ReportData{
		Overview:      overview,
		ActiveBatches: batches,
		GeneratedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return data, nil
}

// Upload renders the report and stores it under ReportPrefix.
func (s *ReportService) Upload(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", ports.ErrStorageNotConfigured
	}

	data, err := s.Build(ctx)
	if err != nil {
		return "", err
	}

	key := s.keys.NewObjectKey(ReportPrefix, s.renderer.Extension())
	if _, err := s.storage.Upload(ctx, key, bytes.NewReader(data), s.renderer.ContentType()); err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.InfoContext(ctx, "report uploaded", slog.String("key", key), slog.Int("bytes", len(data)))
	return key, nil
}
