// internal/adapters/spreadsheet/report.go
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

const (
	// ContentTypeXLSX is the MIME type of xlsx workbooks.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	categoriesSheet = "Categories"
	batchesSheet    = "Active Batches"
)

var (
	categoryHeaders = []string{"Category", "Total", "Available", "In Laundry", "In Laundry %"}
	batchHeaders    = []string{"Batch ID", "Date", "Items", "Contents", "Unit IDs"}
)

// XLSXRenderer writes the wardrobe report as a two-sheet workbook.
type XLSXRenderer struct{}

var _ ports.ReportRenderer = XLSXRenderer{}

// NewXLSXRenderer creates a new renderer
func NewXLSXRenderer() XLSXRenderer { return XLSXRenderer{} }

func (XLSXRenderer) ContentType() string { return ContentTypeXLSX }

func (XLSXRenderer) Extension() string { return ".xlsx" }

// Render builds the workbook in memory.
func (XLSXRenderer) Render(_ context.Context, data *ports.ReportData) ([]byte, error) {
	if data == nil || data.Overview == nil {
		return nil, fmt.Errorf("report data is required")
	}

	file := xlsx.NewFile()

	cats, err := file.AddSheet(categoriesSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeader(cats, categoryHeaders)
	for _, row := range data.Overview.Categories {
		r := cats.AddRow()
		r.AddCell().SetString(row.Category)
		r.AddCell().SetInt(row.Total)
		r.AddCell().SetInt(row.Available)
		r.AddCell().SetInt(row.InLaundry)
		r.AddCell().SetFloat(row.InLaundryPercent.InexactFloat64())
	}
	totals := cats.AddRow()
	label := totals.AddCell()
	label.SetString("Total")
	label.GetStyle().Font.Bold = true
	totals.AddCell().SetInt(data.Overview.Total)
	totals.AddCell().SetInt(data.Overview.Available)
	totals.AddCell().SetInt(data.Overview.InLaundry)
	totals.AddCell().SetFloat(data.Overview.InLaundryPercent.InexactFloat64())
	cats.SetColWidth(1, len(categoryHeaders), 16)

	batches, err := file.AddSheet(batchesSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}
	addHeader(batches, batchHeaders)
	for _, b := range data.ActiveBatches {
		r := batches.AddRow()
		r.AddCell().SetString(fmt.Sprintf("%d", b.ID))
		r.AddCell().SetString(b.DisplayDate())
		r.AddCell().SetInt(b.TotalItems())
		r.AddCell().SetString(strings.Join(b.DisplayLabels, ", "))
		r.AddCell().SetString(strings.Join(b.UnitIDs, " "))
	}
	batches.SetColWidth(1, 3, 16)
	batches.SetColWidth(4, 5, 40)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func addHeader(sheet *xlsx.Sheet, headers []string) {
	row := sheet.AddRow()
	for _, h := range headers {
		cell := row.AddCell()
		cell.SetString(h)
		style := cell.GetStyle()
		style.Font.Bold = true
		style.Fill.PatternType = "solid"
		style.Fill.FgColor = "FFCCCCCC"
	}
}
