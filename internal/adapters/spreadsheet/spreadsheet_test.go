package spreadsheet_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

func cellValue(t *testing.T, sheet *xlsx.Sheet, row, col int) string {
	t.Helper()
	c, err := sheet.Cell(row, col)
	require.NoError(t, err)
	return c.String()
}

func TestXLSXRenderer_Render(t *testing.T) {
	batch := helpers.CreateTestBatch(1700000000000, time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		domain.LineItem{CategoryIndex: 0, Quantity: 2, CategoryName: "Socks"})

	data := &ports.ReportData{
		Overview: &ports.Overview{
			Categories: []ports.OverviewRow{
				{Category: "Socks", Total: 6, Available: 4, InLaundry: 2, InLaundryPercent: decimal.RequireFromString("33.3")},
				{Category: "Hats", Total: 1, Available: 1},
			},
			Total:            7,
			Available:        5,
			InLaundry:        2,
			InLaundryPercent: decimal.RequireFromString("28.6"),
		},
		ActiveBatches: []domain.Batch{batch},
		GeneratedAt:   time.Date(2026, 1, 16, 9, 30, 0, 0, time.UTC),
	}

	renderer := spreadsheet.NewXLSXRenderer()
	out, err := renderer.Render(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", renderer.Extension())

	file, err := xlsx.OpenBinary(out)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 2)

	cats := file.Sheets[0]
	assert.Equal(t, "Categories", cats.Name)
	assert.Equal(t, "Category", cellValue(t, cats, 0, 0))
	assert.Equal(t, "Socks", cellValue(t, cats, 1, 0))
	assert.Equal(t, "4", cellValue(t, cats, 1, 2))
	assert.Equal(t, "Total", cellValue(t, cats, 3, 0))
	assert.Equal(t, "7", cellValue(t, cats, 3, 1))

	batches := file.Sheets[1]
	assert.Equal(t, "Active Batches", batches.Name)
	assert.Equal(t, "1700000000000", cellValue(t, batches, 1, 0))
	assert.Equal(t, "Jan 16, 2026", cellValue(t, batches, 1, 1))
	assert.Equal(t, "2 Socks", cellValue(t, batches, 1, 3))
	assert.Equal(t, "SOC-1 SOC-2", cellValue(t, batches, 1, 4))
}

func TestXLSXRenderer_RequiresOverview(t *testing.T) {
	_, err := spreadsheet.NewXLSXRenderer().Render(context.Background(), &ports.ReportData{})
	assert.Error(t, err)
}

func TestReadCategoryCounts(t *testing.T) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Seed")
	require.NoError(t, err)

	rows := [][]string{
		{"Name", "Count"},
		{"Socks", "12"},
		{"", "3"},
		{"Blue Jeans", "4"},
		{"Scarves", "many"},
	}
	for _, values := range rows {
		r := sheet.AddRow()
		for _, v := range values {
			r.AddCell().SetString(v)
		}
	}
	r := sheet.AddRow()
	r.AddCell().SetString("Hats")
	r.AddCell().SetInt(2)

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))

	got, err := spreadsheet.ReadCategoryCounts(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []spreadsheet.CategoryCount{
		{Name: "Socks", Count: 12},
		{Name: "Blue Jeans", Count: 4},
		{Name: "Hats", Count: 2},
	}, got)
}

func TestReadCategoryCounts_InvalidFile(t *testing.T) {
	_, err := spreadsheet.ReadCategoryCounts([]byte("not a workbook"))
	assert.Error(t, err)
}
