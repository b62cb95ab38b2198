package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/wardrobe-be/internal/adapters/storage"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

func newLocal(t *testing.T) *storage.LocalStorage {
	t.Helper()
	s, err := storage.NewLocalStorage(t.TempDir(), helpers.TestLogger())
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadDownload(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	path, err := s.Upload(ctx, "backups/20260116T093000Z-a.json", strings.NewReader(`{"config":{}}`), "application/json")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "20260116T093000Z-a.json"))

	data, err := s.Download(ctx, "backups/20260116T093000Z-a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"config":{}}`, string(data))
}

func TestLocalStorage_DownloadMissing(t *testing.T) {
	_, err := newLocal(t).Download(context.Background(), "backups/none.json")
	assert.ErrorIs(t, err, ports.ErrObjectNotFound)
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	for _, key := range []string{"", "../secret", "/etc/passwd", "a/../../b"} {
		_, err := s.Upload(ctx, key, strings.NewReader("x"), "")
		assert.Error(t, err, key)
	}
}

func TestLocalStorage_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newLocal(t)

	for _, key := range []string{"backups/b.json", "backups/a.json", "reports/r.xlsx"} {
		_, err := s.Upload(ctx, key, strings.NewReader(key), "")
		require.NoError(t, err)
	}

	objects, err := s.List(ctx, "backups/")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "backups/a.json", objects[0].Key)
	assert.Equal(t, "backups/b.json", objects[1].Key)
	assert.Equal(t, int64(len("backups/a.json")), objects[0].Size)

	require.NoError(t, s.Delete(ctx, "backups/a.json"))
	require.NoError(t, s.Delete(ctx, "backups/a.json"))

	objects, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, objects, 2)
}
