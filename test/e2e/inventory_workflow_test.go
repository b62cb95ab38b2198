//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	redis_a "github.com/ammerola/wardrobe-be/internal/adapters/redis_adapter"
	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
	"github.com/ammerola/wardrobe-be/internal/adapters/storage"
	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/handlers"
	"github.com/ammerola/wardrobe-be/internal/handlers/middleware"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

type InventoryE2ESuite struct {
	suite.Suite
	ctx       context.Context
	cancel    context.CancelFunc
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testRedis *helpers.TestRedis
	kv        ports.KeyValueStore
	keys      services.StoreKeys
	store     *services.InventoryStore
}

func (s *InventoryE2ESuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.testRedis = helpers.SetupTestRedis(s.T())

	logger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()
	s.kv = redis_a.NewKVStore(s.testRedis.Client, logger)
	s.keys = services.KeysForPrefix(cfg.Store.KeyPrefix)

	s.store = services.NewInventoryStore(s.kv, s.keys, logger)
	s.Require().NoError(s.store.Load(s.ctx))

	local, err := storage.NewLocalStorage(s.T().TempDir(), logger)
	s.Require().NoError(err)

	backups := services.NewBackupService(s.store, local, logger)
	reports := services.NewReportService(s.store, spreadsheet.NewXLSXRenderer(), local, logger)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, &handlers.Handlers{
		Health:    handlers.NewHealthHandler(s.store, map[string]handlers.Pinger{"redis": s.kv}, nil, cfg, logger),
		Inventory: handlers.NewInventoryHandler(s.store, logger),
		Dashboard: handlers.NewDashboardHandler(s.store, logger),
		Import:    handlers.NewImportHandler(backups, nil, 1<<20, logger),
		Export:    handlers.NewExportHandler(backups, reports, logger),
	})

	handler := middleware.Chain(middleware.Metrics(mux),
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.RateLimit(s.ctx, 10000, time.Minute),
		middleware.CORS(cfg.Security.AllowedOrigins),
		middleware.MaxBodySize(1<<20),
		middleware.Timeout(10*time.Second),
	)

	s.server = httptest.NewServer(handler)
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *InventoryE2ESuite) TearDownTest() {
	s.server.Close()
	s.cancel()
	s.store.Dispose()
}

func (s *InventoryE2ESuite) TestCompleteLaundryWorkflow() {
	// 1. Create categories and stock them
	for _, name := range []string{"Socks", "Shirts"} {
		resp := s.makeRequest(http.MethodPost, "/categories", map[string]string{"name": name})
		s.Equal(http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	s.increment(0, 3)
	s.increment(1, 2)

	// 2. Send part of it to the laundry
	resp := s.makeRequest(http.MethodPost, "/batches", map[string]interface{}{
		"items": []map[string]int{
			{"itemIndex": 0, "quantity": 2},
			{"itemIndex": 1, "quantity": 1},
		},
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var sent handlers.BatchResponse
	s.decodeResponse(resp, &sent)
	s.Require().NotNil(sent.Batch)
	s.Len(sent.Batch.UnitIDs, 3)
	s.Equal(3, sent.Batch.TotalItems)
	s.True(sent.Batch.Active)
	s.Empty(sent.Warning)

	// 3. Overview reflects the trip
	overview := s.overview()
	s.Equal(5, overview.Total)
	s.Equal(2, overview.Available)
	s.Equal(3, overview.InLaundry)
	s.Equal(1, overview.ActiveBatches)

	// 4. Active batches list
	resp = s.makeRequest(http.MethodGet, "/batches", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var listed struct {
		Batches []handlers.BatchView `json:"batches"`
	}
	s.decodeResponse(resp, &listed)
	s.Require().Len(listed.Batches, 1)
	s.Equal(sent.Batch.ID, listed.Batches[0].ID)

	// 5. Return the batch
	resp = s.makeRequest(http.MethodPost, fmt.Sprintf("/batches/%d/return", sent.Batch.ID), nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var returned map[string]bool
	s.decodeResponse(resp, &returned)
	s.True(returned["returned"])

	overview = s.overview()
	s.Equal(5, overview.Available)
	s.Equal(0, overview.InLaundry)
	s.Equal(0, overview.ActiveBatches)

	// 6. Returning again is a no-op
	resp = s.makeRequest(http.MethodPost, fmt.Sprintf("/batches/%d/return", sent.Batch.ID), nil)
	s.decodeResponse(resp, &returned)
	s.False(returned["returned"])

	// 7. State survives a restart
	restarted := services.NewInventoryStore(s.kv, s.keys, helpers.TestLogger())
	s.Require().NoError(restarted.Load(s.ctx))
	categories, err := restarted.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Category{
		{Name: "Socks", Total: 3, Available: 3},
		{Name: "Shirts", Total: 2, Available: 2},
	}, categories)
}

func (s *InventoryE2ESuite) TestBackupRoundTrip() {
	resp := s.makeRequest(http.MethodPost, "/categories", map[string]string{"name": "Towels"})
	resp.Body.Close()
	s.increment(0, 4)

	// Download the backup file
	resp = s.makeRequest(http.MethodGet, "/backup", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Disposition"), "wardrobe-backup-")
	backup, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)

	// Change state, then restore the file
	resp = s.makeRequest(http.MethodPost, "/categories", map[string]string{"name": "Hats"})
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/backup", bytes.NewReader(backup))
	s.Require().NoError(err)
	resp, err = s.client.Do(req)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest(http.MethodGet, "/categories", nil)
	var listed struct {
		Categories []domain.Category `json:"categories"`
	}
	s.decodeResponse(resp, &listed)
	s.Equal([]domain.Category{{Name: "Towels", Total: 4, Available: 4}}, listed.Categories)

	// Malformed backup files are rejected without touching state
	req, err = http.NewRequest(http.MethodPost, s.baseURL+"/backup", bytes.NewReader([]byte(`{"units": 5}`)))
	s.Require().NoError(err)
	resp, err = s.client.Do(req)
	s.Require().NoError(err)
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Remote backup runs inline without a queue, then shows up in the list
	resp = s.makeRequest(http.MethodPost, "/backup/remote", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)
	var created map[string]string
	s.decodeResponse(resp, &created)
	s.Contains(created["key"], "backups/")

	resp = s.makeRequest(http.MethodGet, "/backup/remote", nil)
	var remote struct {
		Backups []ports.BackupObject `json:"backups"`
	}
	s.decodeResponse(resp, &remote)
	s.Require().Len(remote.Backups, 1)
	s.Equal(created["key"], remote.Backups[0].Key)

	resp = s.makeRequest(http.MethodPost, "/backup/remote/restore", map[string]string{"key": created["key"]})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *InventoryE2ESuite) TestExcelExport() {
	resp := s.makeRequest(http.MethodPost, "/categories", map[string]string{"name": "Jeans"})
	resp.Body.Close()
	s.increment(0, 1)

	resp = s.makeRequest(http.MethodGet, "/export/excel", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(spreadsheet.ContentTypeXLSX, resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.Require().NoError(err)

	counts, err := spreadsheet.ReadCategoryCounts(data)
	s.Require().NoError(err)
	s.Contains(counts, spreadsheet.CategoryCount{Name: "Jeans", Count: 1})
}

func (s *InventoryE2ESuite) TestConcurrentIncrements() {
	resp := s.makeRequest(http.MethodPost, "/categories", map[string]string{"name": "Socks"})
	resp.Body.Close()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := s.makeRequest(http.MethodPost, "/categories/0/increment", nil)
			s.Equal(http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		}()
	}
	wg.Wait()

	s.Equal(n, s.overview().Total)
}

func (s *InventoryE2ESuite) TestHealthCheck() {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/health", nil)
	s.Require().NoError(err)
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])

	deps := health["services"].(map[string]interface{})
	s.Contains(deps, "inventory")
	s.Contains(deps, "redis")
}

// Helper methods

func (s *InventoryE2ESuite) increment(index, times int) {
	for i := 0; i < times; i++ {
		resp := s.makeRequest(http.MethodPost, fmt.Sprintf("/categories/%d/increment", index), nil)
		s.Equal(http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}

func (s *InventoryE2ESuite) overview() ports.Overview {
	resp := s.makeRequest(http.MethodGet, "/overview", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	var out ports.Overview
	s.decodeResponse(resp, &out)
	return out
}

func (s *InventoryE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *InventoryE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestInventoryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(InventoryE2ESuite))
}
