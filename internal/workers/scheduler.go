// internal/workers/scheduler.go
package workers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// TaskRegistrar is the subset of *asynq.Scheduler used to register periodic tasks.
type TaskRegistrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// NewScheduler creates an asynq scheduler that logs through logger.
func NewScheduler(opt asynq.RedisConnOpt, logger *slog.Logger) *asynq.Scheduler {
	l := logger.With(slog.String("component", "scheduler"))
	return asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Logger:   NewAsynqLogger(logger),
		Location: time.UTC,
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				l.Error("scheduled enqueue failed", slog.String("error", err.Error()))
				return
			}
			l.Debug("scheduled task enqueued",
				slog.String("task_id", info.ID),
				slog.String("task_type", info.Type))
		},
	})
}

// RegisterBackupSchedule registers a backup export followed by a prune on
// schedule. An empty schedule registers nothing and returns no entries.
func RegisterBackupSchedule(s TaskRegistrar, schedule string, retention int) ([]string, error) {
	if schedule == "" {
		return nil, nil
	}

	export, err := NewBackupExportTask(ReasonScheduled, time.Time{})
	if err != nil {
		return nil, err
	}
	prune, err := NewBackupPruneTask(retention)
	if err != nil {
		return nil, err
	}

	exportID, err := s.Register(schedule, export, asynq.Queue(QueueCritical))
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", TypeBackupExport, err)
	}
	pruneID, err := s.Register(schedule, prune, asynq.Queue(QueueLow))
	if err != nil {
		return []string{exportID}, fmt.Errorf("failed to register %s: %w", TypeBackupPrune, err)
	}
	return []string{exportID, pruneID}, nil
}
