// internal/core/ports/inventory_service.go
package ports

import (
	"context"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
)

// InventoryService defines the application service port for the wardrobe
// inventory. It is implemented by services.InventoryStore.
type InventoryService interface {
	Load(ctx context.Context) error
	Ready() bool

	ListCategories(ctx context.Context) ([]domain.Category, error)
	AddCategory(ctx context.Context, name string) (domain.Category, error)
	DeleteCategory(ctx context.Context, index int) error
	IncrementCategory(ctx context.Context, index int) (domain.Category, error)
	DecrementCategory(ctx context.Context, index int) (domain.Category, error)

	ListActiveBatches(ctx context.Context) ([]domain.Batch, error)
	SendToLaundry(ctx context.Context, lines []domain.LineRequest) (*domain.Batch, error)
	MarkBatchReturned(ctx context.Context, batchID int64) (bool, error)

	ExportSnapshot(ctx context.Context) (*domain.Snapshot, error)
	ImportSnapshot(ctx context.Context, snapshot *domain.Snapshot) error

	Overview(ctx context.Context) (*Overview, error)
}
