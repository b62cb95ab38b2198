// internal/seed/parse.go
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
)

// Entry is one category and the number of units to seed for it.
type Entry = spreadsheet.CategoryCount

// ErrUnsupportedFormat is returned for files that are not csv, txt, xlsx or pdf.
var ErrUnsupportedFormat = errors.New("unsupported seed file format")

var (
	// "3 x Socks", "3x Socks"
	countFirstRe = regexp.MustCompile(`^(\d+)\s*[xX×]\s*(.+)$`)
	// "Socks 3", "Socks: 3", "Socks, 3"
	countLastRe = regexp.MustCompile(`^(.+?)[\s,:;]+(\d+)$`)
)

// ReadFile parses a seed file, choosing the reader by extension.
func ReadFile(path string) ([]Entry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open seed file: %w", err)
		}
		defer f.Close()
		return ParseText(f)
	case ".xlsx":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		return spreadsheet.ReadCategoryCounts(data)
	case ".pdf":
		lines, err := pdfLines(path)
		if err != nil {
			return nil, err
		}
		return ParseLines(lines), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseText reads "name,count" records. Blank lines, comment lines starting
// with '#' and records without a numeric count are skipped.
func ParseText(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse seed file: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		count, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if name == "" || err != nil || count < 0 {
			continue
		}
		out = append(out, Entry{Name: name, Count: count})
	}
	return out, nil
}

// ParseLines extracts entries from free text lines such as a packing list.
// Lines matching neither "<count> x <name>" nor "<name> <count>" are ignored.
func ParseLines(lines []string) []Entry {
	var out []Entry
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := countFirstRe.FindStringSubmatch(line); m != nil {
			if e, ok := entry(m[2], m[1]); ok {
				out = append(out, e)
			}
			continue
		}
		if m := countLastRe.FindStringSubmatch(line); m != nil {
			if e, ok := entry(m[1], m[2]); ok {
				out = append(out, e)
			}
		}
	}
	return out
}

func entry(name, count string) (Entry, bool) {
	name = strings.TrimSpace(name)
	n, err := strconv.Atoi(count)
	if name == "" || err != nil {
		return Entry{}, false
	}
	return Entry{Name: name, Count: n}, true
}

func pdfLines(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var lines []string
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		lines = append(lines, strings.Split(text, "\n")...)
	}
	return lines, nil
}
