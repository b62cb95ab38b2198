// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TypeBackupExport = "backup:export"
	TypeBackupPrune  = "backup:prune"
	TypeReportExcel  = "report:excel"
)

// Queues
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"
)

// Backup reasons
const (
	ReasonManual    = "manual"
	ReasonScheduled = "scheduled"
)

// BackupPayload is the payload of backup:export tasks
type BackupPayload struct {
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

// PrunePayload is the payload of backup:prune tasks. Keep <= 0 means use the
// processor's configured retention.
type PrunePayload struct {
	Keep int `json:"keep,omitempty"`
}

// ReportPayload is the payload of report:excel tasks
type ReportPayload struct {
	RequestedAt time.Time `json:"requested_at"`
}

// NewBackupExportTask builds a backup:export task.
func NewBackupExportTask(reason string, now time.Time) (*asynq.Task, error) {
	return newTask(TypeBackupExport, BackupPayload{Reason: reason, RequestedAt: now.UTC()})
}

// NewBackupPruneTask builds a backup:prune task.
func NewBackupPruneTask(keep int) (*asynq.Task, error) {
	return newTask(TypeBackupPrune, PrunePayload{Keep: keep})
}

// NewReportTask builds a report:excel task.
func NewReportTask(now time.Time) (*asynq.Task, error) {
	return newTask(TypeReportExcel, ReportPayload{RequestedAt: now.UTC()})
}

func newTask(typename string, payload interface{}) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", typename, err)
	}
	return asynq.NewTask(typename, data), nil
}

func decodePayload(t *asynq.Task, dst interface{}) error {
	if len(t.Payload()) == 0 {
		return nil
	}
	if err := json.Unmarshal(t.Payload(), dst); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}
	return nil
}
