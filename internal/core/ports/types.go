// internal/core/ports/types.go
package ports

import (
	"github.com/shopspring/decimal"
)

// Overview summarizes the wardrobe for the status table.
type Overview struct {
	Categories       []OverviewRow   `json:"categories"`
	Total            int             `json:"total"`
	Available        int             `json:"available"`
	InLaundry        int             `json:"in_laundry"`
	ActiveBatches    int             `json:"active_batches"`
	AvailablePercent decimal.Decimal `json:"available_percent"`
	InLaundryPercent decimal.Decimal `json:"in_laundry_percent"`
}

// OverviewRow is one category line of the overview.
type OverviewRow struct {
	Category         string          `json:"category"`
	Total            int             `json:"total"`
	Available        int             `json:"available"`
	InLaundry        int             `json:"in_laundry"`
	InLaundryPercent decimal.Decimal `json:"in_laundry_percent"`
}
