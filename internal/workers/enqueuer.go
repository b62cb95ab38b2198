// internal/workers/enqueuer.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// TaskClient is the subset of *asynq.Client the enqueuer needs.
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer queues background jobs on asynq.
type Enqueuer struct {
	client   TaskClient
	maxRetry int
	now      func() time.Time
	logger   *slog.Logger
}

var _ ports.TaskEnqueuer = (*Enqueuer)(nil)

// NewEnqueuer creates an enqueuer over an asynq client.
func NewEnqueuer(client TaskClient, maxRetry int, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{
		client:   client,
		maxRetry: maxRetry,
		now:      time.Now,
		logger:   logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueueBackup queues a backup export and returns the task ID.
func (e *Enqueuer) EnqueueBackup(ctx context.Context, reason string) (string, error) {
	if reason == "" {
		reason = ReasonManual
	}
	task, err := NewBackupExportTask(reason, e.now())
	if err != nil {
		return "", err
	}
	return e.enqueue(ctx, task, QueueCritical)
}

// EnqueueReport queues a spreadsheet report and returns the task ID.
func (e *Enqueuer) EnqueueReport(ctx context.Context) (string, error) {
	task, err := NewReportTask(e.now())
	if err != nil {
		return "", err
	}
	return e.enqueue(ctx, task, QueueDefault)
}

func (e *Enqueuer) enqueue(ctx context.Context, task *asynq.Task, queue string) (string, error) {
	id := uuid.New().String()
	info, err := e.client.EnqueueContext(ctx, task,
		asynq.TaskID(id),
		asynq.Queue(queue),
		asynq.MaxRetry(e.maxRetry),
	)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}
	if info != nil && info.ID != "" {
		id = info.ID
	}

	e.logger.InfoContext(ctx, "task enqueued",
		slog.String("task_id", id),
		slog.String("task_type", task.Type()),
		slog.String("queue", queue))
	return id, nil
}
