// internal/handlers/inventory.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// InventoryHandler handles category and laundry batch requests
type InventoryHandler struct {
	responder
	service ports.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		responder: newResponder(logger.With(slog.String("handler", "inventory"))),
		service:   service,
	}
}

// AddCategoryRequest is the body of POST /api/v1/categories
type AddCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// SendToLaundryRequest is the body of POST /api/v1/batches. Each line needs a
// positive quantity; the store skips lines it cannot apply to current stock.
type SendToLaundryRequest struct {
	Items []domain.LineRequest `json:"items" validate:"required,min=1,dive"`
}

// CategoryResponse wraps a single category.
type CategoryResponse struct {
	Category domain.Category `json:"category"`
	Warning  string          `json:"warning,omitempty"`
}

// BatchView adds display fields to a batch.
type BatchView struct {
	domain.Batch
	DisplayDate string `json:"display_date"`
	TotalItems  int    `json:"total_items"`
}

// BatchResponse wraps a created batch; Batch is null when no line applied.
type BatchResponse struct {
	Batch   *BatchView `json:"batch"`
	Warning string     `json:"warning,omitempty"`
}

func newBatchView(b domain.Batch) BatchView {
	return BatchView{Batch: b, DisplayDate: b.DisplayDate(), TotalItems: b.TotalItems()}
}

// ListCategories handles GET /api/v1/categories
func (h *InventoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err, "list categories")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// AddCategory handles POST /api/v1/categories
func (h *InventoryHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req AddCategoryRequest
	if !h.decode(w, r, &req) {
		return
	}

	category, err := h.service.AddCategory(r.Context(), req.Name)
	warning, err := h.persistenceWarning(r, err)
	if err != nil {
		h.handleError(w, r, err, "add category")
		return
	}

	h.respondJSON(w, http.StatusCreated, CategoryResponse{Category: category, Warning: warning})
}

// DeleteCategory handles DELETE /api/v1/categories/{index}
func (h *InventoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r.PathValue("index"))
	if err != nil {
		h.handleError(w, r, err, "delete category")
		return
	}

	warning, err := h.persistenceWarning(r, h.service.DeleteCategory(r.Context(), index))
	if err != nil {
		h.handleError(w, r, err, "delete category")
		return
	}

	resp := map[string]interface{}{"deleted": true}
	if warning != "" {
		resp["warning"] = warning
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// IncrementCategory handles POST /api/v1/categories/{index}/increment
func (h *InventoryHandler) IncrementCategory(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.service.IncrementCategory, "increment category")
}

// DecrementCategory handles POST /api/v1/categories/{index}/decrement
func (h *InventoryHandler) DecrementCategory(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.service.DecrementCategory, "decrement category")
}

func (h *InventoryHandler) adjust(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, index int) (domain.Category, error),
	action string,
) {
	index, err := parseIndex(r.PathValue("index"))
	if err != nil {
		h.handleError(w, r, err, action)
		return
	}

	category, err := op(r.Context(), index)
	warning, err := h.persistenceWarning(r, err)
	if err != nil {
		h.handleError(w, r, err, action)
		return
	}

	h.respondJSON(w, http.StatusOK, CategoryResponse{Category: category, Warning: warning})
}

// ListActiveBatches handles GET /api/v1/batches
func (h *InventoryHandler) ListActiveBatches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.service.ListActiveBatches(r.Context())
	if err != nil {
		h.handleError(w, r, err, "list batches")
		return
	}

	views := make([]BatchView, 0, len(batches))
	for _, b := range batches {
		views = append(views, newBatchView(b))
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"batches": views})
}

// SendToLaundry handles POST /api/v1/batches
func (h *InventoryHandler) SendToLaundry(w http.ResponseWriter, r *http.Request) {
	var req SendToLaundryRequest
	if !h.decode(w, r, &req) {
		return
	}

	batch, err := h.service.SendToLaundry(r.Context(), req.Items)
	warning, err := h.persistenceWarning(r, err)
	if err != nil {
		h.handleError(w, r, err, "send to laundry")
		return
	}

	if batch == nil {
		h.respondJSON(w, http.StatusOK, BatchResponse{})
		return
	}

	view := newBatchView(*batch)
	h.respondJSON(w, http.StatusCreated, BatchResponse{Batch: &view, Warning: warning})
}

// MarkBatchReturned handles POST /api/v1/batches/{id}/return
func (h *InventoryHandler) MarkBatchReturned(w http.ResponseWriter, r *http.Request) {
	id, err := ParseBatchID(r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err, "return batch")
		return
	}

	returned, err := h.service.MarkBatchReturned(r.Context(), id)
	warning, err := h.persistenceWarning(r, err)
	if err != nil {
		h.handleError(w, r, err, "return batch")
		return
	}

	resp := map[string]interface{}{"returned": returned}
	if warning != "" {
		resp["warning"] = warning
	}
	h.respondJSON(w, http.StatusOK, resp)
}
