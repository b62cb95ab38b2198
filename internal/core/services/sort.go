// internal/core/services/sort.go
package services

import (
	"sort"
	"time"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
)

type datedBatch struct {
	batch domain.Batch
	date  time.Time
}

// sortNewestFirst orders batches by date descending. Unparsable dates sort
// last; equal dates keep their relative order.
func sortNewestFirst(batches []domain.Batch) {
	dated := make([]datedBatch, len(batches))
	for i, b := range batches {
		dated[i].batch = b
		if t, err := domain.ParseBatchDate(b.Date); err == nil {
			dated[i].date = t
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.After(dated[j].date)
	})
	for i := range dated {
		batches[i] = dated[i].batch
	}
}
