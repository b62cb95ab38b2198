// internal/handlers/import.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
)

// ImportHandler restores the inventory from backup files and manages
// backups kept in storage.
type ImportHandler struct {
	responder
	backups     *services.BackupService
	enqueuer    ports.TaskEnqueuer
	maxFileSize int64
}

// NewImportHandler creates a new import handler. enqueuer may be nil, in
// which case remote backups run inline.
func NewImportHandler(backups *services.BackupService, enqueuer ports.TaskEnqueuer, maxFileSize int64, logger *slog.Logger) *ImportHandler {
	if maxFileSize <= 0 {
		maxFileSize = 10 << 20
	}
	return &ImportHandler{
		responder:   newResponder(logger.With(slog.String("handler", "import"))),
		backups:     backups,
		enqueuer:    enqueuer,
		maxFileSize: maxFileSize,
	}
}

// RestoreRemoteRequest is the body of POST /api/v1/backup/remote/restore
type RestoreRemoteRequest struct {
	Key string `json:"key" validate:"required"`
}

// RestoreBackup handles POST /api/v1/backup with a backup file as the body
func (h *ImportHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxFileSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "Backup file too large")
			return
		}
		h.respondError(w, http.StatusBadRequest, "Failed to read backup file")
		return
	}

	warning, err := h.persistenceWarning(r, h.backups.Restore(ctx, data))
	if err != nil {
		h.handleError(w, r, err, "restore backup")
		return
	}

	h.logger.InfoContext(ctx, "backup restored from upload", slog.Int("bytes", len(data)))
	h.respondRestored(w, warning)
}

// ListRemoteBackups handles GET /api/v1/backup/remote
func (h *ImportHandler) ListRemoteBackups(w http.ResponseWriter, r *http.Request) {
	objects, err := h.backups.List(r.Context())
	if err != nil {
		h.handleError(w, r, err, "list backups")
		return
	}
	if objects == nil {
		objects = []ports.BackupObject{}
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"backups": objects})
}

// CreateRemoteBackup handles POST /api/v1/backup/remote
func (h *ImportHandler) CreateRemoteBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.enqueuer != nil {
		taskID, err := h.enqueuer.EnqueueBackup(ctx, "manual")
		if err != nil {
			h.handleError(w, r, err, "queue backup")
			return
		}
		h.respondJSON(w, http.StatusAccepted, map[string]string{
			"task_id": taskID,
			"status":  "queued",
		})
		return
	}

	key, err := h.backups.Upload(ctx)
	if err != nil {
		h.handleError(w, r, err, "create backup")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]string{"key": key})
}

// RestoreRemoteBackup handles POST /api/v1/backup/remote/restore
func (h *ImportHandler) RestoreRemoteBackup(w http.ResponseWriter, r *http.Request) {
	var req RestoreRemoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	warning, err := h.persistenceWarning(r, h.backups.RestoreFromStorage(r.Context(), req.Key))
	if err != nil {
		h.handleError(w, r, err, "restore backup")
		return
	}
	h.respondRestored(w, warning)
}

// QueueReport handles POST /api/v1/reports
func (h *ImportHandler) QueueReport(w http.ResponseWriter, r *http.Request) {
	if h.enqueuer == nil {
		h.respondError(w, http.StatusServiceUnavailable, "Background jobs are not configured")
		return
	}

	taskID, err := h.enqueuer.EnqueueReport(r.Context())
	if err != nil {
		h.handleError(w, r, err, "queue report")
		return
	}
	h.respondJSON(w, http.StatusAccepted, map[string]string{
		"task_id": taskID,
		"status":  "queued",
	})
}

func (h *ImportHandler) respondRestored(w http.ResponseWriter, warning string) {
	resp := map[string]interface{}{"restored": true}
	if warning != "" {
		resp["warning"] = warning
	}
	h.respondJSON(w, http.StatusOK, resp)
}
