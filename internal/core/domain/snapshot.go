// internal/core/domain/snapshot.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// UnitStatus is the state of one physical unit in the flattened backup view.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "available"
	UnitOut       UnitStatus = "out"
)

// wire codes for unit statuses in backup files
const (
	wireAvailable = "av"
	wireOut       = "out"
)

// Unit is one countable item of a category, identified only in backups.
type Unit struct {
	ID       string
	Category string
	Status   UnitStatus
}

// Snapshot is the flattened, serializable view of the whole store.
type Snapshot struct {
	CodeMap       map[string]string
	Units         []Unit
	ActiveBatches []Batch
}

// Validate checks the snapshot shape before any state is replaced.
func (s *Snapshot) Validate() error {
	if s == nil {
		return &FormatError{Reason: "snapshot is missing"}
	}
	if s.CodeMap == nil {
		return &FormatError{Reason: "code map is missing"}
	}
	if s.Units == nil {
		return &FormatError{Reason: "unit list is missing"}
	}
	for i, u := range s.Units {
		if u.Category == "" {
			return &FormatError{Reason: fmt.Sprintf("unit %d has no category", i)}
		}
		if u.Status != UnitAvailable && u.Status != UnitOut {
			return &FormatError{Reason: fmt.Sprintf("unit %d has unknown status %q", i, u.Status)}
		}
	}

	names := make([]string, 0, len(s.CodeMap))
	for name := range s.CodeMap {
		names = append(names, name)
	}
	sort.Strings(names)
	if err := checkNameCase(names, "code map"); err != nil {
		return err
	}
	unitNames := make([]string, 0, len(s.Units))
	for _, u := range s.Units {
		unitNames = append(unitNames, u.Category)
	}
	return checkNameCase(unitNames, "units")
}

// checkNameCase rejects names that differ only by case or surrounding space,
// since categories are unique case-insensitively.
func checkNameCase(names []string, where string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if prev, ok := seen[key]; ok && prev != name {
			return &FormatError{Reason: fmt.Sprintf("%s has conflicting names %q and %q", where, prev, name)}
		}
		seen[key] = name
	}
	return nil
}

// unitRecord is the backup file form of a Unit.
type unitRecord struct {
	ID       string `json:"id"`
	Category string `json:"c"`
	Status   string `json:"s"`
}

// backupFile is the top-level backup document.
type backupFile struct {
	Config  map[string]string `json:"config"`
	Inv     []unitRecord      `json:"inv"`
	Batches []Batch           `json:"batches"`
}

// EncodeSnapshot renders a snapshot as backup file JSON.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	file := backupFile{
		Config:  s.CodeMap,
		Inv:     make([]unitRecord, 0, len(s.Units)),
		Batches: s.ActiveBatches,
	}
	if file.Batches == nil {
		file.Batches = []Batch{}
	}
	for _, u := range s.Units {
		code := wireAvailable
		if u.Status == UnitOut {
			code = wireOut
		}
		file.Inv = append(file.Inv, unitRecord{ID: u.ID, Category: u.Category, Status: code})
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses backup file JSON. It fails with a *FormatError when
// the config or inv keys are absent or any record has the wrong shape. A
// batches key that is not an array yields no batches.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Reason: "backup is not a JSON object", Err: err}
	}

	configRaw, ok := raw["config"]
	if !ok || isNull(configRaw) {
		return nil, &FormatError{Reason: "config is missing"}
	}
	invRaw, ok := raw["inv"]
	if !ok || isNull(invRaw) {
		return nil, &FormatError{Reason: "inv is missing"}
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(configRaw, &snap.CodeMap); err != nil {
		return nil, &FormatError{Reason: "config must map names to codes", Err: err}
	}

	var records []unitRecord
	if err := json.Unmarshal(invRaw, &records); err != nil {
		return nil, &FormatError{Reason: "inv must be an array of units", Err: err}
	}
	snap.Units = make([]Unit, 0, len(records))
	for i, r := range records {
		var status UnitStatus
		switch r.Status {
		case wireAvailable:
			status = UnitAvailable
		case wireOut:
			status = UnitOut
		default:
			return nil, &FormatError{Reason: fmt.Sprintf("unit %d has unknown status %q", i, r.Status)}
		}
		if r.Category == "" {
			return nil, &FormatError{Reason: fmt.Sprintf("unit %d has no category", i)}
		}
		snap.Units = append(snap.Units, Unit{ID: r.ID, Category: r.Category, Status: status})
	}

	if batchesRaw, ok := raw["batches"]; ok && isArray(batchesRaw) {
		if err := json.Unmarshal(batchesRaw, &snap.ActiveBatches); err != nil {
			return nil, &FormatError{Reason: "batches must be batch records", Err: err}
		}
	}

	return snap, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// BuildSnapshot flattens categories into per-unit records: each category
// emits its available units, then its units in the laundry, numbered from 1
// without resetting between the two. Only active batches are included.
func BuildSnapshot(categories []Category, batches []Batch) *Snapshot {
	snap := &Snapshot{
		CodeMap:       make(map[string]string, len(categories)),
		Units:         []Unit{},
		ActiveBatches: []Batch{},
	}

	for _, c := range categories {
		code := GenerateCode(c.Name)
		if c.Name != "" {
			snap.CodeMap[c.Name] = code
		}

		n := 1
		for i := 0; i < c.Available; i++ {
			snap.Units = append(snap.Units, Unit{ID: UnitID(code, n), Category: c.Name, Status: UnitAvailable})
			n++
		}
		for i := 0; i < c.InLaundry; i++ {
			snap.Units = append(snap.Units, Unit{ID: UnitID(code, n), Category: c.Name, Status: UnitOut})
			n++
		}
	}

	for _, b := range batches {
		if b.Active {
			snap.ActiveBatches = append(snap.ActiveBatches, b.Clone())
		}
	}

	return snap
}

// Categories rebuilds the category collection: units aggregated in
// first-seen order, then code map names with no units as empty categories,
// sorted by name.
func (s *Snapshot) Categories() []Category {
	categories := AggregateUnits(s.Units)

	var empty []string
	for name := range s.CodeMap {
		if strings.TrimSpace(name) == "" || hasCategory(categories, name) {
			continue
		}
		empty = append(empty, name)
	}
	sort.Strings(empty)
	for _, name := range empty {
		categories = append(categories, Category{Name: name})
	}
	return categories
}

func hasCategory(categories []Category, name string) bool {
	for _, c := range categories {
		if c.SameName(name) {
			return true
		}
	}
	return false
}

// AggregateUnits re-counts units into categories, ordered by the first
// appearance of each category name.
func AggregateUnits(units []Unit) []Category {
	categories := []Category{}
	index := make(map[string]int)

	for _, u := range units {
		i, ok := index[u.Category]
		if !ok {
			i = len(categories)
			index[u.Category] = i
			categories = append(categories, Category{Name: u.Category})
		}

		c := &categories[i]
		c.Total++
		switch u.Status {
		case UnitAvailable:
			c.Available++
		case UnitOut:
			c.InLaundry++
		}
	}

	return categories
}
