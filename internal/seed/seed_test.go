// internal/seed/seed_test.go
package seed_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/wardrobe-be/internal/adapters/redis_adapter"
	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/internal/seed"
	"github.com/ammerola/wardrobe-be/test/helpers"
	"github.com/ammerola/wardrobe-be/test/mocks"
)

func TestParseText(t *testing.T) {
	input := strings.Join([]string{
		"# wardrobe seed",
		"name,count",
		"Socks, 12",
		"",
		"Blue Jeans,4",
		"Scarves,many",
		",3",
		"Hats,2,extra",
		"Belts",
	}, "\n")

	got, err := seed.ParseText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []seed.Entry{
		{Name: "Socks", Count: 12},
		{Name: "Blue Jeans", Count: 4},
		{Name: "Hats", Count: 2},
	}, got)
}

func TestParseLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []seed.Entry
	}{
		{name: "count_first", line: "3 x Socks", want: []seed.Entry{{Name: "Socks", Count: 3}}},
		{name: "count_first_no_space", line: "10x Dress Shirts", want: []seed.Entry{{Name: "Dress Shirts", Count: 10}}},
		{name: "count_last", line: "Hoodies 2", want: []seed.Entry{{Name: "Hoodies", Count: 2}}},
		{name: "count_last_colon", line: "  Rain Jackets: 1 ", want: []seed.Entry{{Name: "Rain Jackets", Count: 1}}},
		{name: "heading_ignored", line: "PACKING LIST", want: nil},
		{name: "blank_ignored", line: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seed.ParseLines([]string{tt.line}))
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		path := helpers.CreateTempFile(t, []byte("Socks,2\nShirts,1\n"), ".csv")
		got, err := seed.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("xlsx", func(t *testing.T) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Seed")
		require.NoError(t, err)
		row := sheet.AddRow()
		row.AddCell().SetString("Towels")
		row.AddCell().SetInt(6)

		var buf bytes.Buffer
		require.NoError(t, file.Write(&buf))
		path := helpers.CreateTempFile(t, buf.Bytes(), ".xlsx")

		got, err := seed.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []seed.Entry{{Name: "Towels", Count: 6}}, got)
	})

	t.Run("pdf_unreadable", func(t *testing.T) {
		path := helpers.CreateTempFile(t, []byte("not a pdf"), ".pdf")
		_, err := seed.ReadFile(path)
		assert.ErrorContains(t, err, "failed to open PDF")
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := helpers.CreateTempFile(t, []byte("{}"), ".json")
		_, err := seed.ReadFile(path)
		assert.ErrorIs(t, err, seed.ErrUnsupportedFormat)
	})
}

func TestSeeder_Apply(t *testing.T) {
	ctx := context.Background()
	logger := helpers.TestLogger()
	redis := helpers.SetupTestRedis(t)
	kv := redis_a.NewKVStore(redis.Client, logger)
	keys := services.KeysForPrefix("seed")

	store := services.NewInventoryStore(kv, keys, logger)
	require.NoError(t, store.Load(ctx))
	_, err := store.AddCategory(ctx, "Socks")
	require.NoError(t, err)

	res, err := seed.NewSeeder(store, false, logger).Apply(ctx, []seed.Entry{
		{Name: "socks", Count: 2},
		{Name: "Shirts", Count: 3},
		{Name: "Shirts", Count: 1},
		{Name: "Empty", Count: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, seed.Result{CategoriesAdded: 2, UnitsAdded: 6}, res)

	reloaded := services.NewInventoryStore(kv, keys, logger)
	require.NoError(t, reloaded.Load(ctx))
	categories, err := reloaded.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{Name: "Socks", Total: 2, Available: 2},
		{Name: "Shirts", Total: 4, Available: 4},
		{Name: "Empty"},
	}, categories)
}

func TestSeeder_Apply_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	inv := mocks.NewMockInventoryService(ctrl)
	inv.EXPECT().ListCategories(gomock.Any()).Return([]domain.Category{{Name: "Socks"}}, nil)

	res, err := seed.NewSeeder(inv, true, helpers.TestLogger()).Apply(context.Background(), []seed.Entry{
		{Name: "Socks", Count: 1},
		{Name: "Hats", Count: 2},
		{Name: "hats", Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, seed.Result{CategoriesAdded: 1, UnitsAdded: 4}, res)
}

func TestSeeder_Apply_Errors(t *testing.T) {
	t.Run("persistence_failure_is_a_warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := mocks.NewMockInventoryService(ctrl)
		saveErr := &domain.PersistenceError{Op: "save", Key: "seed:categories", Err: errors.New("disk full")}

		inv.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
		inv.EXPECT().AddCategory(gomock.Any(), "Hats").Return(domain.Category{Name: "Hats"}, saveErr)
		inv.EXPECT().IncrementCategory(gomock.Any(), 0).Return(domain.Category{Name: "Hats", Total: 1, Available: 1}, saveErr)

		res, err := seed.NewSeeder(inv, false, helpers.TestLogger()).Apply(context.Background(), []seed.Entry{{Name: "Hats", Count: 1}})
		require.NoError(t, err)
		assert.Equal(t, seed.Result{CategoriesAdded: 1, UnitsAdded: 1, PersistWarnings: 2}, res)
	})

	t.Run("invalid_name_skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := mocks.NewMockInventoryService(ctrl)

		inv.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
		inv.EXPECT().AddCategory(gomock.Any(), " ").Return(domain.Category{}, &domain.ValidationError{Field: "name", Message: "is required"})

		res, err := seed.NewSeeder(inv, false, helpers.TestLogger()).Apply(context.Background(), []seed.Entry{{Name: " ", Count: 1}})
		require.NoError(t, err)
		assert.Equal(t, seed.Result{Skipped: 1}, res)
	})

	t.Run("not_ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := mocks.NewMockInventoryService(ctrl)
		inv.EXPECT().ListCategories(gomock.Any()).Return(nil, domain.ErrNotReady)

		_, err := seed.NewSeeder(inv, false, helpers.TestLogger()).Apply(context.Background(), []seed.Entry{{Name: "Hats", Count: 1}})
		assert.ErrorIs(t, err, domain.ErrNotReady)
	})
}
