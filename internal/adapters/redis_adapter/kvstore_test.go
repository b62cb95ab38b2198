package redis_a_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/ammerola/wardrobe-be/internal/adapters/redis_adapter"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

func newStore(t *testing.T) (*redis_a.KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis_a.NewKVStore(client, helpers.TestLogger()), mr
}

func TestKVStore_SetAndGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "stores_json_array", key: "wardrobe:categories", value: `[{"name":"Socks","total":2,"available":2,"inLaundry":0}]`},
		{name: "stores_empty_array", key: "wardrobe:batches", value: `[]`},
		{name: "stores_empty_string", key: "blank", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, tt.key, tt.value))

			got, err := store.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
			assert.Equal(t, tt.value, mustGet(t, mr, tt.key))
			assert.Equal(t, int64(0), int64(mr.TTL(tt.key)))
		})
	}
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}

func TestKVStore_GetMissing(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestKVStore_Remove(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	require.NoError(t, store.Set(ctx, "k", "v"))
	require.NoError(t, store.Remove(ctx, "k"))
	assert.False(t, mr.Exists("k"))

	require.NoError(t, store.Remove(ctx, "k"))
}

func TestKVStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)
	mr.Close()

	_, err := store.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrKeyNotFound)
	assert.Error(t, store.Set(ctx, "k", "v"))
	assert.Error(t, store.Ping(ctx))
}
