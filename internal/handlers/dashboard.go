// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// DashboardHandler serves the wardrobe overview table
type DashboardHandler struct {
	responder
	service ports.InventoryService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service ports.InventoryService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder: newResponder(logger.With(slog.String("handler", "dashboard"))),
		service:   service,
	}
}

// GetOverview handles GET /api/v1/overview
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		h.handleError(w, r, err, "load overview")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	h.respondJSON(w, http.StatusOK, overview)
}
