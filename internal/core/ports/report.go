// internal/core/ports/report.go
package ports

import (
	"context"
	"time"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
)

// ReportData is everything a rendered wardrobe report shows.
type ReportData struct {
	Overview      *Overview
	ActiveBatches []domain.Batch
	GeneratedAt   time.Time
}

// ReportRenderer turns report data into a downloadable document.
type ReportRenderer interface {
	Render(ctx context.Context, data *ReportData) ([]byte, error)
	ContentType() string
	Extension() string
}
