// internal/core/ports/backup_storage.go
package ports

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned by BackupStorage.Download for unknown keys.
var ErrObjectNotFound = errors.New("backup object not found")

// ErrStorageNotConfigured is returned when no BackupStorage is available.
var ErrStorageNotConfigured = errors.New("backup storage is not configured")

// BackupObject describes a stored backup or report file.
type BackupObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// BackupStorage is the backup transport port.
type BackupStorage interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]BackupObject, error)
}

// TaskEnqueuer schedules background jobs.
type TaskEnqueuer interface {
	EnqueueBackup(ctx context.Context, reason string) (string, error)
	EnqueueReport(ctx context.Context) (string, error)
}
