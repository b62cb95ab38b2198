// internal/adapters/spreadsheet/reader.go
package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx/v3"
)

// CategoryCount is one "name, count" row of a seed sheet.
type CategoryCount struct {
	Name  string
	Count int
}

// ReadCategoryCounts reads name and count from the first two columns of the
// first sheet. A header row and rows without a numeric count are skipped.
func ReadCategoryCounts(data []byte) ([]CategoryCount, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, nil
	}

	var out []CategoryCount
	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		name := cellString(r, 0)
		if name == "" {
			return nil
		}
		count, err := strconv.Atoi(cellString(r, 1))
		if err != nil || count < 0 {
			return nil
		}
		out = append(out, CategoryCount{Name: name, Count: count})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process Excel rows: %w", err)
	}
	return out, nil
}

func cellString(r *xlsx.Row, i int) string {
	c := r.GetCell(i)
	if c == nil {
		return ""
	}
	s := strings.TrimSpace(c.String())
	// numeric cells may come back as "4.0" style floats
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return strconv.Itoa(int(f))
	}
	return s
}
