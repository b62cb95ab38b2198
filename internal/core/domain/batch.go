// internal/core/domain/batch.go
package domain

import (
	"fmt"
	"time"
)

// BatchDateLayout is the month/day/year layout stored on batches, without zero padding.
const BatchDateLayout = "1/2/2006"

// batchDisplayLayout renders dates for people ("Jan 16, 2026").
const batchDisplayLayout = "Jan 2, 2006"

// LineRequest asks for quantity units of the category at CategoryIndex.
type LineRequest struct {
	CategoryIndex int `json:"itemIndex" validate:"gte=0"`
	Quantity      int `json:"quantity" validate:"gt=0"`
}

// Validate rejects non-positive quantities.
func (r LineRequest) Validate() error {
	if r.CategoryIndex < 0 {
		return &ValidationError{Field: "itemIndex", Message: "itemIndex cannot be negative"}
	}
	if r.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "quantity must be positive"}
	}
	return nil
}

// LineItem is an accepted line of a batch.
type LineItem struct {
	CategoryIndex int    `json:"itemIndex"`
	Quantity      int    `json:"quantity"`
	CategoryName  string `json:"itemName"`
}

// Batch is one laundry trip. Batches are never deleted; returning one
// clears Active.
type Batch struct {
	ID            int64      `json:"id"`
	Date          string     `json:"d"`
	DisplayLabels []string   `json:"txt"`
	UnitIDs       []string   `json:"ids"`
	Active        bool       `json:"act"`
	LineItems     []LineItem `json:"items"`
}

// LineLabel is the display label of a line item, e.g. "3 Socks".
func LineLabel(quantity int, name string) string {
	return fmt.Sprintf("%d %s", quantity, name)
}

// FormatBatchDate renders t as M/D/YYYY.
func FormatBatchDate(t time.Time) string {
	return t.Format(BatchDateLayout)
}

// ParseBatchDate parses an M/D/YYYY batch date.
func ParseBatchDate(s string) (time.Time, error) {
	return time.Parse(BatchDateLayout, s)
}

// TotalItems sums the line quantities, falling back to the number of unit ids.
func (b Batch) TotalItems() int {
	total := 0
	for _, li := range b.LineItems {
		total += li.Quantity
	}
	if total > 0 {
		return total
	}
	return len(b.UnitIDs)
}

// DisplayDate renders the batch date as "Jan 16, 2026", or verbatim when it
// cannot be parsed.
func (b Batch) DisplayDate() string {
	t, err := ParseBatchDate(b.Date)
	if err != nil {
		return b.Date
	}
	return t.Format(batchDisplayLayout)
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (b Batch) Clone() Batch {
	out := b
	if b.DisplayLabels != nil {
		out.DisplayLabels = append(make([]string, 0, len(b.DisplayLabels)), b.DisplayLabels...)
	}
	if b.UnitIDs != nil {
		out.UnitIDs = append(make([]string, 0, len(b.UnitIDs)), b.UnitIDs...)
	}
	if b.LineItems != nil {
		out.LineItems = append(make([]LineItem, 0, len(b.LineItems)), b.LineItems...)
	}
	return out
}
