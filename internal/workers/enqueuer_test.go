// internal/workers/enqueuer_test.go
package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wardrobe-be/internal/workers"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

type enqueued struct {
	task *asynq.Task
	opts map[asynq.OptionType]interface{}
}

type fakeClient struct {
	calls []enqueued
	err   error
}

func (f *fakeClient) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	values := make(map[asynq.OptionType]interface{}, len(opts))
	for _, o := range opts {
		values[o.Type()] = o.Value()
	}
	f.calls = append(f.calls, enqueued{task: task, opts: values})
	id, _ := values[asynq.TaskIDOpt].(string)
	return &asynq.TaskInfo{ID: id, Type: task.Type()}, nil
}

type fakeRegistrar struct {
	specs []string
	tasks []*asynq.Task
	fail  string
}

func (f *fakeRegistrar) Register(spec string, task *asynq.Task, _ ...asynq.Option) (string, error) {
	if task.Type() == f.fail {
		return "", errors.New("bad spec")
	}
	f.specs = append(f.specs, spec)
	f.tasks = append(f.tasks, task)
	return task.Type() + "-entry", nil
}

func TestEnqueuer_EnqueueBackup(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		want   string
	}{
		{name: "explicit_reason", reason: "pre-restore", want: "pre-restore"},
		{name: "defaults_to_manual", reason: "", want: workers.ReasonManual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			enq := workers.NewEnqueuer(client, 5, helpers.TestLogger())

			id, err := enq.EnqueueBackup(context.Background(), tt.reason)
			require.NoError(t, err)
			require.Len(t, client.calls, 1)

			call := client.calls[0]
			assert.Equal(t, workers.TypeBackupExport, call.task.Type())
			assert.Equal(t, id, call.opts[asynq.TaskIDOpt])
			assert.Equal(t, workers.QueueCritical, call.opts[asynq.QueueOpt])
			assert.Equal(t, 5, call.opts[asynq.MaxRetryOpt])

			var payload workers.BackupPayload
			require.NoError(t, json.Unmarshal(call.task.Payload(), &payload))
			assert.Equal(t, tt.want, payload.Reason)
			assert.WithinDuration(t, time.Now(), payload.RequestedAt, time.Minute)
		})
	}
}

func TestEnqueuer_EnqueueReport(t *testing.T) {
	client := &fakeClient{}
	enq := workers.NewEnqueuer(client, 3, helpers.TestLogger())

	first, err := enq.EnqueueReport(context.Background())
	require.NoError(t, err)
	second, err := enq.EnqueueReport(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	require.Len(t, client.calls, 2)
	assert.Equal(t, workers.TypeReportExcel, client.calls[0].task.Type())
	assert.Equal(t, workers.QueueDefault, client.calls[0].opts[asynq.QueueOpt])
}

func TestEnqueuer_ClientError(t *testing.T) {
	enq := workers.NewEnqueuer(&fakeClient{err: errors.New("redis unavailable")}, 3, helpers.TestLogger())

	_, err := enq.EnqueueBackup(context.Background(), workers.ReasonManual)
	assert.ErrorContains(t, err, "failed to enqueue backup:export")
	assert.ErrorContains(t, err, "redis unavailable")
}

func TestRegisterBackupSchedule(t *testing.T) {
	t.Run("registers_export_and_prune", func(t *testing.T) {
		reg := &fakeRegistrar{}
		ids, err := workers.RegisterBackupSchedule(reg, "@daily", 7)
		require.NoError(t, err)

		assert.Equal(t, []string{"backup:export-entry", "backup:prune-entry"}, ids)
		assert.Equal(t, []string{"@daily", "@daily"}, reg.specs)

		var prune workers.PrunePayload
		require.NoError(t, json.Unmarshal(reg.tasks[1].Payload(), &prune))
		assert.Equal(t, 7, prune.Keep)

		var export workers.BackupPayload
		require.NoError(t, json.Unmarshal(reg.tasks[0].Payload(), &export))
		assert.Equal(t, workers.ReasonScheduled, export.Reason)
	})

	t.Run("empty_schedule_disabled", func(t *testing.T) {
		reg := &fakeRegistrar{}
		ids, err := workers.RegisterBackupSchedule(reg, "", 7)
		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.Empty(t, reg.tasks)
	})

	t.Run("register_fails", func(t *testing.T) {
		reg := &fakeRegistrar{fail: workers.TypeBackupPrune}
		ids, err := workers.RegisterBackupSchedule(reg, "@hourly", 7)
		assert.ErrorContains(t, err, "failed to register backup:prune")
		assert.Equal(t, []string{"backup:export-entry"}, ids)
	})
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want time.Duration
	}{
		{name: "first_retry", n: 0, want: time.Second},
		{name: "third_retry", n: 3, want: 8 * time.Second},
		{name: "capped", n: 12, want: 10 * time.Minute},
		{name: "huge_attempt_count", n: 100, want: 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workers.ExponentialBackoff(tt.n, nil, nil))
		})
	}
}

func TestNewServeMux_RoutesTasks(t *testing.T) {
	logger := helpers.TestLogger()
	mux := workers.NewServeMux(
		workers.NewBackupProcessor(nil, nil, 0, logger),
		workers.NewReportProcessor(nil, nil, logger),
	)

	for _, typename := range []string{workers.TypeBackupExport, workers.TypeBackupPrune, workers.TypeReportExcel} {
		_, pattern := mux.Handler(asynq.NewTask(typename, nil))
		assert.Equal(t, typename, pattern)
	}

	_, pattern := mux.Handler(asynq.NewTask("unknown:task", nil))
	assert.Empty(t, pattern)
}
