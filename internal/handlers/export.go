// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/wardrobe-be/internal/core/services"
)

// ExportHandler serves backup files and spreadsheet reports for download
type ExportHandler struct {
	responder
	backups *services.BackupService
	reports *services.ReportService
	now     func() time.Time
}

// NewExportHandler creates a new export handler
func NewExportHandler(backups *services.BackupService, reports *services.ReportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		responder: newResponder(logger.With(slog.String("handler", "export"))),
		backups:   backups,
		reports:   reports,
		now:       time.Now,
	}
}

// DownloadBackup handles GET /api/v1/backup
func (h *ExportHandler) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	data, err := h.backups.Encode(r.Context())
	if err != nil {
		h.handleError(w, r, err, "export backup")
		return
	}

	filename := fmt.Sprintf("wardrobe-backup-%s.json", h.now().Format("2006-01-02"))
	h.attach(w, "application/json", filename, data)
}

// ExportExcel handles GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	data, err := h.reports.Build(r.Context())
	if err != nil {
		h.handleError(w, r, err, "export report")
		return
	}

	h.logger.InfoContext(r.Context(), "report exported", slog.Int("bytes", len(data)))
	h.attach(w, h.reports.ContentType(), h.reports.FileName(), data)
}

func (h *ExportHandler) attach(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write download", slog.String("error", err.Error()))
	}
}
