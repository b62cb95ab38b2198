// internal/handlers/router.go
package handlers

import (
	"net/http"

	"github.com/ammerola/wardrobe-be/internal/pkg/metrics"
)

const apiV1 = "/api/v1"

// Handlers groups everything the API server routes to.
type Handlers struct {
	Health        *HealthHandler
	Inventory     *InventoryHandler
	Dashboard     *DashboardHandler
	Import        *ImportHandler
	Export        *ExportHandler
	EnableMetrics bool
}

// RegisterRoutes registers all routes on mux using method patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	if h.Health != nil {
		mux.HandleFunc("GET /health", h.Health.Health)
		mux.HandleFunc("GET /ready", h.Health.Readiness)
	}
	if h.EnableMetrics {
		mux.Handle("GET /metrics", metrics.Handler())
	}

	mux.HandleFunc("GET "+apiV1+"/categories", h.Inventory.ListCategories)
	mux.HandleFunc("POST "+apiV1+"/categories", h.Inventory.AddCategory)
	mux.HandleFunc("DELETE "+apiV1+"/categories/{index}", h.Inventory.DeleteCategory)
	mux.HandleFunc("POST "+apiV1+"/categories/{index}/increment", h.Inventory.IncrementCategory)
	mux.HandleFunc("POST "+apiV1+"/categories/{index}/decrement", h.Inventory.DecrementCategory)

	mux.HandleFunc("GET "+apiV1+"/batches", h.Inventory.ListActiveBatches)
	mux.HandleFunc("POST "+apiV1+"/batches", h.Inventory.SendToLaundry)
	mux.HandleFunc("POST "+apiV1+"/batches/{id}/return", h.Inventory.MarkBatchReturned)

	mux.HandleFunc("GET "+apiV1+"/overview", h.Dashboard.GetOverview)

	mux.HandleFunc("GET "+apiV1+"/backup", h.Export.DownloadBackup)
	mux.HandleFunc("POST "+apiV1+"/backup", h.Import.RestoreBackup)
	mux.HandleFunc("GET "+apiV1+"/backup/remote", h.Import.ListRemoteBackups)
	mux.HandleFunc("POST "+apiV1+"/backup/remote", h.Import.CreateRemoteBackup)
	mux.HandleFunc("POST "+apiV1+"/backup/remote/restore", h.Import.RestoreRemoteBackup)

	mux.HandleFunc("GET "+apiV1+"/export/excel", h.Export.ExportExcel)
	mux.HandleFunc("POST "+apiV1+"/reports", h.Import.QueueReport)
}
