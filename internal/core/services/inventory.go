// internal/core/services/inventory.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/pkg/metrics"
)

// StoreKeys names the two persistence keys.
type StoreKeys struct {
	Categories string
	Batches    string
}

// KeysForPrefix returns "<prefix>:categories" and "<prefix>:batches".
func KeysForPrefix(prefix string) StoreKeys {
	if prefix == "" {
		prefix = "wardrobe"
	}
	return StoreKeys{
		Categories: prefix + ":categories",
		Batches:    prefix + ":batches",
	}
}

// Option configures an InventoryStore.
type Option func(*InventoryStore)

// WithClock overrides the time source used for batch ids and dates.
func WithClock(now func() time.Time) Option {
	return func(s *InventoryStore) { s.now = now }
}

// InventoryStore owns the category and batch collections. Every public
// operation runs under one mutex; mutations are saved synchronously and a
// failed save keeps the in-memory change.
type InventoryStore struct {
	mu         sync.Mutex
	kv         ports.KeyValueStore
	keys       StoreKeys
	categories []domain.Category
	batches    []domain.Batch
	ready      bool
	lastID     int64
	now        func() time.Time
	logger     *slog.Logger
}

// Statically assert that *InventoryStore implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryStore)(nil)

// NewInventoryStore creates a store. Call Load before use.
func NewInventoryStore(kv ports.KeyValueStore, keys StoreKeys, logger *slog.Logger, opts ...Option) *InventoryStore {
	s := &InventoryStore{
		kv:     kv,
		keys:   keys,
		now:    time.Now,
		logger: logger.With(slog.String("service", "inventory")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads both collections from the key-value store. A missing key is an
// empty collection. On failure the in-memory state is left untouched: a
// first load leaves the store not ready, a reload keeps the previous state.
func (s *InventoryStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categories []domain.Category
	if err := s.read(ctx, s.keys.Categories, &categories); err != nil {
		return err
	}
	var batches []domain.Batch
	if err := s.read(ctx, s.keys.Batches, &batches); err != nil {
		return err
	}

	for i, c := range categories {
		if err := c.Validate(); err != nil {
			return &domain.PersistenceError{
				Op:  "load",
				Key: s.keys.Categories,
				Err: fmt.Errorf("category %d: %w", i, err),
			}
		}
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	if batches == nil {
		batches = []domain.Batch{}
	}

	s.categories = categories
	s.batches = batches
	s.lastID = maxBatchID(batches)
	s.ready = true
	s.publish()

	s.logger.InfoContext(ctx, "inventory loaded",
		slog.Int("categories", len(categories)),
		slog.Int("batches", len(batches)))
	return nil
}

func (s *InventoryStore) read(ctx context.Context, key string, dest interface{}) error {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return &domain.PersistenceError{Op: "load", Key: key, Err: err}
	}
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return &domain.PersistenceError{Op: "decode", Key: key, Err: err}
	}
	return nil
}

// Dispose releases the in-memory state. Later calls fail with ErrNotReady.
func (s *InventoryStore) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = false
	s.categories = nil
	s.batches = nil
}

// Ready reports whether Load has completed.
func (s *InventoryStore) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// ListCategories returns a copy of the category collection.
func (s *InventoryStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, domain.ErrNotReady
	}
	return append([]domain.Category{}, s.categories...), nil
}

// AddCategory appends a category with zero counts.
func (s *InventoryStore) AddCategory(ctx context.Context, name string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return domain.Category{}, domain.ErrNotReady
	}

	c := domain.NewCategory(name)
	if c.Name == "" {
		return domain.Category{}, &domain.ValidationError{Field: "name", Message: "is required"}
	}
	for _, existing := range s.categories {
		if existing.SameName(c.Name) {
			return domain.Category{}, &domain.ValidationError{
				Field:   "name",
				Message: fmt.Sprintf("category %q already exists", existing.Name),
			}
		}
	}

	s.categories = append(s.categories, c)
	s.logger.InfoContext(ctx, "category added", slog.String("name", c.Name))

	return c, s.persist(ctx, true, false)
}

// DeleteCategory removes the category at index. Batches that reference it
// are left untouched.
func (s *InventoryStore) DeleteCategory(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return domain.ErrNotReady
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}

	name := s.categories[index].Name
	s.categories = append(s.categories[:index:index], s.categories[index+1:]...)
	s.logger.InfoContext(ctx, "category deleted", slog.String("name", name), slog.Int("index", index))

	return s.persist(ctx, true, false)
}

// IncrementCategory adds one available unit.
func (s *InventoryStore) IncrementCategory(ctx context.Context, index int) (domain.Category, error) {
	return s.adjust(ctx, index, (*domain.Category).Increment)
}

// DecrementCategory removes one unit, from available first, then laundry.
func (s *InventoryStore) DecrementCategory(ctx context.Context, index int) (domain.Category, error) {
	return s.adjust(ctx, index, (*domain.Category).Decrement)
}

func (s *InventoryStore) adjust(ctx context.Context, index int, fn func(*domain.Category)) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return domain.Category{}, domain.ErrNotReady
	}
	if err := s.checkIndex(index); err != nil {
		return domain.Category{}, err
	}

	before := s.categories[index]
	fn(&s.categories[index])
	after := s.categories[index]
	if before == after {
		return after, nil
	}
	return after, s.persist(ctx, true, false)
}

// ListActiveBatches returns copies of the active batches, newest date first.
// Batches with the same date keep their stored order.
func (s *InventoryStore) ListActiveBatches(ctx context.Context) ([]domain.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, domain.ErrNotReady
	}

	active := make([]domain.Batch, 0, len(s.batches))
	for _, b := range s.batches {
		if b.Active {
			active = append(active, b.Clone())
		}
	}
	sortNewestFirst(active)
	return active, nil
}

// SendToLaundry applies every line that has a positive quantity and enough
// available units; other lines are skipped. A batch is recorded only when at
// least one line applied, otherwise it returns a nil batch.
func (s *InventoryStore) SendToLaundry(ctx context.Context, lines []domain.LineRequest) (*domain.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, domain.ErrNotReady
	}

	batch := domain.Batch{
		DisplayLabels: []string{},
		UnitIDs:       []string{},
		LineItems:     []domain.LineItem{},
	}

	for _, line := range lines {
		if line.Quantity <= 0 || line.CategoryIndex < 0 || line.CategoryIndex >= len(s.categories) {
			s.logger.DebugContext(ctx, "skipping invalid laundry line",
				slog.Int("index", line.CategoryIndex),
				slog.Int("quantity", line.Quantity))
			continue
		}

		c := &s.categories[line.CategoryIndex]
		if !c.CanSend(line.Quantity) {
			s.logger.DebugContext(ctx, "skipping laundry line, not enough available",
				slog.String("category", c.Name),
				slog.Int("available", c.Available),
				slog.Int("quantity", line.Quantity))
			continue
		}

		start := c.UnitRangeStart()
		c.Send(line.Quantity)

		batch.LineItems = append(batch.LineItems, domain.LineItem{
			CategoryIndex: line.CategoryIndex,
			Quantity:      line.Quantity,
			CategoryName:  c.Name,
		})
		batch.DisplayLabels = append(batch.DisplayLabels, domain.LineLabel(line.Quantity, c.Name))
		batch.UnitIDs = append(batch.UnitIDs, domain.UnitIDRange(domain.GenerateCode(c.Name), start, line.Quantity)...)
	}

	if len(batch.LineItems) == 0 {
		return nil, nil
	}

	now := s.now()
	batch.ID = s.nextID(now)
	batch.Date = domain.FormatBatchDate(now)
	batch.Active = true
	s.batches = append(s.batches, batch)

	s.logger.InfoContext(ctx, "batch sent to laundry",
		slog.Int64("batch_id", batch.ID),
		slog.Int("lines", len(batch.LineItems)),
		slog.Int("units", len(batch.UnitIDs)))

	out := batch.Clone()
	return &out, s.persist(ctx, true, true)
}

// MarkBatchReturned brings a batch's units back from the laundry and
// archives it. Unknown or archived batches report false without changes.
func (s *InventoryStore) MarkBatchReturned(ctx context.Context, batchID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return false, domain.ErrNotReady
	}

	pos := -1
	for i := range s.batches {
		if s.batches[i].ID == batchID {
			pos = i
			break
		}
	}
	if pos < 0 || !s.batches[pos].Active {
		s.logger.DebugContext(ctx, "batch not active", slog.Int64("batch_id", batchID))
		return false, nil
	}

	b := &s.batches[pos]
	for _, item := range b.LineItems {
		idx := s.lineCategory(item)
		if idx < 0 {
			s.logger.WarnContext(ctx, "skipping return line, category no longer exists",
				slog.Int64("batch_id", batchID),
				slog.String("category", item.CategoryName),
				slog.Int("quantity", item.Quantity))
			continue
		}
		c := &s.categories[idx]
		if !c.CanReturn(item.Quantity) {
			s.logger.WarnContext(ctx, "skipping return line, not enough in laundry",
				slog.Int64("batch_id", batchID),
				slog.String("category", c.Name),
				slog.Int("in_laundry", c.InLaundry),
				slog.Int("quantity", item.Quantity))
			continue
		}
		c.Return(item.Quantity)
	}
	b.Active = false

	s.logger.InfoContext(ctx, "batch returned", slog.Int64("batch_id", batchID))
	return true, s.persist(ctx, true, true)
}

// lineCategory finds the category a batch line was sent from: the stored
// index when it still holds a category of that name, else a lookup by name.
// It returns -1 when the category is gone.
func (s *InventoryStore) lineCategory(item domain.LineItem) int {
	if item.CategoryIndex >= 0 && item.CategoryIndex < len(s.categories) &&
		s.categories[item.CategoryIndex].SameName(item.CategoryName) {
		return item.CategoryIndex
	}
	for i := range s.categories {
		if s.categories[i].SameName(item.CategoryName) {
			return i
		}
	}
	return -1
}

// ExportSnapshot flattens the store into per-unit records.
func (s *InventoryStore) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, domain.ErrNotReady
	}
	return domain.BuildSnapshot(s.categories, s.batches), nil
}

// ImportSnapshot replaces both collections with the snapshot's contents.
// The snapshot is validated before anything is replaced.
func (s *InventoryStore) ImportSnapshot(ctx context.Context, snapshot *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return domain.ErrNotReady
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}

	batches := make([]domain.Batch, 0, len(snapshot.ActiveBatches))
	for _, b := range snapshot.ActiveBatches {
		batches = append(batches, b.Clone())
	}

	s.categories = snapshot.Categories()
	s.batches = batches
	if id := maxBatchID(batches); id > s.lastID {
		s.lastID = id
	}

	s.logger.InfoContext(ctx, "inventory restored from backup",
		slog.Int("categories", len(s.categories)),
		slog.Int("units", len(snapshot.Units)),
		slog.Int("batches", len(batches)))

	return s.persist(ctx, true, true)
}

// Overview summarizes counts per category and overall.
func (s *InventoryStore) Overview(ctx context.Context) (*ports.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil, domain.ErrNotReady
	}

	ov := &ports.Overview{Categories: make([]ports.OverviewRow, 0, len(s.categories))}
	for _, c := range s.categories {
		ov.Categories = append(ov.Categories, ports.OverviewRow{
			Category:         c.Name,
			Total:            c.Total,
			Available:        c.Available,
			InLaundry:        c.InLaundry,
			InLaundryPercent: percent(c.InLaundry, c.Total),
		})
		ov.Total += c.Total
		ov.Available += c.Available
		ov.InLaundry += c.InLaundry
	}
	for _, b := range s.batches {
		if b.Active {
			ov.ActiveBatches++
		}
	}
	ov.AvailablePercent = percent(ov.Available, ov.Total)
	ov.InLaundryPercent = percent(ov.InLaundry, ov.Total)

	return ov, nil
}

func (s *InventoryStore) checkIndex(index int) error {
	if index < 0 || index >= len(s.categories) {
		return &domain.IndexError{Kind: "category", Index: index, Len: len(s.categories)}
	}
	return nil
}

// nextID returns a millisecond timestamp, bumped past the last issued id.
func (s *InventoryStore) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes the requested collections. Both writes are attempted; the
// first failure is returned.
func (s *InventoryStore) persist(ctx context.Context, categories, batches bool) error {
	s.publish()

	var first error
	if categories {
		if err := s.write(ctx, s.keys.Categories, s.categories); err != nil {
			first = err
		}
	}
	if batches {
		if err := s.write(ctx, s.keys.Batches, s.batches); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *InventoryStore) write(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &domain.PersistenceError{Op: "encode", Key: key, Err: err}
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		metrics.PersistenceFailures.WithLabelValues(key).Inc()
		s.logger.WarnContext(ctx, "failed to persist collection",
			slog.String("key", key),
			"err", err)
		return &domain.PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}

func (s *InventoryStore) publish() {
	var total, available, inLaundry, active int
	for _, c := range s.categories {
		total += c.Total
		available += c.Available
		inLaundry += c.InLaundry
	}
	for _, b := range s.batches {
		if b.Active {
			active++
		}
	}
	metrics.RecordInventory(total, available, inLaundry, active)
}

func maxBatchID(batches []domain.Batch) int64 {
	var max int64
	for _, b := range batches {
		if b.ID > max {
			max = b.ID
		}
	}
	return max
}
