// internal/workers/processors_test.go
package workers_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/wardrobe-be/internal/adapters/redis_adapter"
	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
	"github.com/ammerola/wardrobe-be/internal/adapters/storage"
	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/pkg/metrics"
	"github.com/ammerola/wardrobe-be/internal/workers"
	"github.com/ammerola/wardrobe-be/test/helpers"
	"github.com/ammerola/wardrobe-be/test/mocks"
)

func testSnapshot() *domain.Snapshot {
	return domain.BuildSnapshot(
		[]domain.Category{helpers.CreateTestCategory("Socks", 2, 0)},
		nil,
	)
}

func TestBackupProcessor_ProcessExport(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockInventoryService, *mocks.MockBackupStorage)
		payload       []byte
		status        string
		errorContains string
		skipRetry     bool
	}{
		{
			name: "uploads_fresh_snapshot",
			setupMocks: func(inv *mocks.MockInventoryService, store *mocks.MockBackupStorage) {
				gomock.InOrder(
					inv.EXPECT().Load(gomock.Any()).Return(nil),
					inv.EXPECT().ExportSnapshot(gomock.Any()).Return(testSnapshot(), nil),
					store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "application/json").
						DoAndReturn(func(_ context.Context, key string, r io.Reader, _ string) (string, error) {
							body, err := io.ReadAll(r)
							require.NoError(t, err)
							assert.Contains(t, string(body), "SOC-1")
							return key, nil
						}),
				)
			},
			status: "success",
		},
		{
			name: "load_fails",
			setupMocks: func(inv *mocks.MockInventoryService, _ *mocks.MockBackupStorage) {
				inv.EXPECT().Load(gomock.Any()).Return(errors.New("redis down"))
			},
			status:        "failed",
			errorContains: "failed to load inventory",
		},
		{
			name: "upload_fails",
			setupMocks: func(inv *mocks.MockInventoryService, store *mocks.MockBackupStorage) {
				inv.EXPECT().Load(gomock.Any()).Return(nil)
				inv.EXPECT().ExportSnapshot(gomock.Any()).Return(testSnapshot(), nil)
				store.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket gone"))
			},
			status:        "failed",
			errorContains: "bucket gone",
		},
		{
			name:          "malformed_payload",
			setupMocks:    func(*mocks.MockInventoryService, *mocks.MockBackupStorage) {},
			payload:       []byte("{not json"),
			status:        "failed",
			errorContains: "failed to unmarshal payload",
			skipRetry:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inv := mocks.NewMockInventoryService(ctrl)
			store := mocks.NewMockBackupStorage(ctrl)
			tt.setupMocks(inv, store)

			logger := helpers.TestLogger()
			processor := workers.NewBackupProcessor(inv, services.NewBackupService(inv, store, logger), 3, logger)

			task, err := workers.NewBackupExportTask(workers.ReasonManual, time.Now())
			require.NoError(t, err)
			if tt.payload != nil {
				task = asynq.NewTask(workers.TypeBackupExport, tt.payload)
			}

			counter := metrics.BackupsTotal.WithLabelValues(tt.status)
			before := testutil.ToFloat64(counter)

			err = processor.ProcessExport(context.Background(), task)
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Equal(t, tt.skipRetry, errors.Is(err, asynq.SkipRetry))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestBackupProcessor_ProcessPrune(t *testing.T) {
	objects := []ports.BackupObject{
		{Key: "backups/20260101T000000Z-a.json", LastModified: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Key: "backups/20260103T000000Z-c.json", LastModified: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)},
		{Key: "backups/20260102T000000Z-b.json", LastModified: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	tests := []struct {
		name    string
		keep    int
		deleted []string
	}{
		{
			name:    "uses_configured_retention",
			keep:    0,
			deleted: []string{"backups/20260101T000000Z-a.json"},
		},
		{
			name:    "payload_overrides_retention",
			keep:    1,
			deleted: []string{"backups/20260102T000000Z-b.json", "backups/20260101T000000Z-a.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inv := mocks.NewMockInventoryService(ctrl)
			store := mocks.NewMockBackupStorage(ctrl)

			listed := append([]ports.BackupObject(nil), objects...)
			store.EXPECT().List(gomock.Any(), services.BackupPrefix).Return(listed, nil)
			var got []string
			store.EXPECT().Delete(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, key string) error {
					got = append(got, key)
					return nil
				}).Times(len(tt.deleted))

			logger := helpers.TestLogger()
			processor := workers.NewBackupProcessor(inv, services.NewBackupService(inv, store, logger), 2, logger)

			task, err := workers.NewBackupPruneTask(tt.keep)
			require.NoError(t, err)

			require.NoError(t, processor.ProcessPrune(context.Background(), task))
			assert.Equal(t, tt.deleted, got)
		})
	}
}

func TestBackupProcessor_ProcessPrune_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockInventoryService(ctrl)
	store := mocks.NewMockBackupStorage(ctrl)
	store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

	logger := helpers.TestLogger()
	processor := workers.NewBackupProcessor(inv, services.NewBackupService(inv, store, logger), 2, logger)

	task, err := workers.NewBackupPruneTask(0)
	require.NoError(t, err)

	err = processor.ProcessPrune(context.Background(), task)
	assert.ErrorContains(t, err, "access denied")
}

// The worker keeps its own store over the shared key-value backend and must
// see writes made by the API process.
func TestReportProcessor_ProcessReport_ReloadsSharedState(t *testing.T) {
	ctx := context.Background()
	logger := helpers.TestLogger()
	redis := helpers.SetupTestRedis(t)
	kv := redis_a.NewKVStore(redis.Client, logger)
	keys := services.KeysForPrefix("test")

	api := services.NewInventoryStore(kv, keys, logger)
	require.NoError(t, api.Load(ctx))

	worker := services.NewInventoryStore(kv, keys, logger)
	require.NoError(t, worker.Load(ctx))

	_, err := api.AddCategory(ctx, "Shirts")
	require.NoError(t, err)
	_, err = api.IncrementCategory(ctx, 0)
	require.NoError(t, err)

	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir, logger)
	require.NoError(t, err)

	reports := services.NewReportService(worker, spreadsheet.NewXLSXRenderer(), local, logger)
	processor := workers.NewReportProcessor(worker, reports, logger)

	task, err := workers.NewReportTask(time.Now())
	require.NoError(t, err)
	require.NoError(t, processor.ProcessReport(ctx, task))

	matches, err := filepath.Glob(filepath.Join(dir, "reports", "*.xlsx"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	counts, err := spreadsheet.ReadCategoryCounts(data)
	require.NoError(t, err)
	assert.Equal(t, []spreadsheet.CategoryCount{
		{Name: "Shirts", Count: 1},
		{Name: "Total", Count: 1},
	}, counts)
}

func TestReportProcessor_ProcessReport_LoadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockInventoryService(ctrl)
	renderer := mocks.NewMockReportRenderer(ctrl)
	store := mocks.NewMockBackupStorage(ctrl)
	inv.EXPECT().Load(gomock.Any()).Return(&domain.PersistenceError{Op: "load", Key: "k", Err: errors.New("timeout")})

	logger := helpers.TestLogger()
	processor := workers.NewReportProcessor(inv, services.NewReportService(inv, renderer, store, logger), logger)

	task, err := workers.NewReportTask(time.Now())
	require.NoError(t, err)

	err = processor.ProcessReport(context.Background(), task)
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
}
