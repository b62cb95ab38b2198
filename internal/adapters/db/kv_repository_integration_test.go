//go:build integration

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wardrobe-be/internal/adapters/db"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

func TestKVRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testDB := helpers.SetupTestDB(t)
	defer testDB.Database.Close()

	repo := db.NewKVRepository(testDB.Database, helpers.TestLogger())
	ctx := context.Background()

	t.Run("missing_key", func(t *testing.T) {
		_, err := repo.Get(ctx, "absent")
		assert.ErrorIs(t, err, ports.ErrKeyNotFound)
	})

	t.Run("set_then_overwrite", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "wardrobe:categories", `[{"name":"Socks"}]`))
		require.NoError(t, repo.Set(ctx, "wardrobe:categories", `[]`))

		got, err := repo.Get(ctx, "wardrobe:categories")
		require.NoError(t, err)
		assert.Equal(t, `[]`, got)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "gone", "x"))
		require.NoError(t, repo.Remove(ctx, "gone"))
		require.NoError(t, repo.Remove(ctx, "gone"))

		_, err := repo.Get(ctx, "gone")
		assert.ErrorIs(t, err, ports.ErrKeyNotFound)
	})
}
