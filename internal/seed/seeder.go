// internal/seed/seeder.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

// Result summarizes a seeding run.
type Result struct {
	CategoriesAdded int `json:"categories_added"`
	UnitsAdded      int `json:"units_added"`
	Skipped         int `json:"skipped"`
	// PersistWarnings counts operations applied in memory whose save failed.
	PersistWarnings int `json:"persist_warnings"`
}

// Seeder applies entries to an inventory through its public operations.
type Seeder struct {
	inventory ports.InventoryService
	dryRun    bool
	logger    *slog.Logger
}

// NewSeeder creates a seeder. With dryRun set nothing is written.
func NewSeeder(inventory ports.InventoryService, dryRun bool, logger *slog.Logger) *Seeder {
	return &Seeder{
		inventory: inventory,
		dryRun:    dryRun,
		logger:    logger.With(slog.String("component", "seeder")),
	}
}

// Apply adds each entry's category if it is missing and increments it Count
// times. Entries naming an existing category add to it.
func (s *Seeder) Apply(ctx context.Context, entries []Entry) (Result, error) {
	var res Result

	categories, err := s.inventory.ListCategories(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list categories: %w", err)
	}

	for _, e := range entries {
		index := findCategory(categories, e.Name)
		if index < 0 {
			if s.dryRun {
				s.logger.InfoContext(ctx, "would add category", slog.String("name", e.Name), slog.Int("count", e.Count))
				res.CategoriesAdded++
				res.UnitsAdded += e.Count
				categories = append(categories, domain.NewCategory(e.Name))
				continue
			}

			c, err := s.inventory.AddCategory(ctx, e.Name)
			if err := s.check(ctx, err, &res); err != nil {
				if domain.IsValidation(err) {
					s.logger.WarnContext(ctx, "skipping entry", slog.String("name", e.Name), slog.String("error", err.Error()))
					res.Skipped++
					continue
				}
				return res, err
			}
			categories = append(categories, c)
			index = len(categories) - 1
			res.CategoriesAdded++
		}

		if s.dryRun {
			res.UnitsAdded += e.Count
			continue
		}
		for i := 0; i < e.Count; i++ {
			_, err := s.inventory.IncrementCategory(ctx, index)
			if err := s.check(ctx, err, &res); err != nil {
				return res, fmt.Errorf("failed to increment %q: %w", e.Name, err)
			}
			res.UnitsAdded++
		}
	}

	s.logger.InfoContext(ctx, "seed applied",
		slog.Int("categories_added", res.CategoriesAdded),
		slog.Int("units_added", res.UnitsAdded),
		slog.Int("skipped", res.Skipped),
		slog.Bool("dry_run", s.dryRun))
	return res, nil
}

// check swallows persistence errors, which leave the change applied in memory.
func (s *Seeder) check(ctx context.Context, err error, res *Result) error {
	var perr *domain.PersistenceError
	if errors.As(err, &perr) {
		res.PersistWarnings++
		s.logger.WarnContext(ctx, "change not persisted", slog.String("key", perr.Key), slog.String("error", perr.Err.Error()))
		return nil
	}
	return err
}

func findCategory(categories []domain.Category, name string) int {
	for i, c := range categories {
		if c.SameName(name) {
			return i
		}
	}
	return -1
}
