// test/benchmarks/helpers.go
package benchmarks

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redis_a "github.com/ammerola/wardrobe-be/internal/adapters/redis_adapter"
	"github.com/ammerola/wardrobe-be/internal/core/services"
	"github.com/ammerola/wardrobe-be/test/helpers"
)

var benchCategories = []string{
	"Shirts", "T-Shirts", "Jeans", "Socks", "Underwear",
	"Towels", "Bed Sheets", "Sweaters", "Dresses", "Jackets",
}

// newBenchStore returns a loaded store backed by an in-memory Redis.
func newBenchStore(b *testing.B) *services.InventoryStore {
	b.Helper()

	mr := miniredis.RunT(b)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	b.Cleanup(func() { client.Close() })

	logger := helpers.TestLogger()
	store := services.NewInventoryStore(
		redis_a.NewKVStore(client, logger),
		services.KeysForPrefix("wardrobe-bench"),
		logger,
	)
	if err := store.Load(context.Background()); err != nil {
		b.Fatalf("load store: %v", err)
	}
	b.Cleanup(store.Dispose)
	return store
}

// stockStore adds every bench category with perCategory units each.
func stockStore(b *testing.B, store *services.InventoryStore, perCategory int) {
	b.Helper()
	ctx := context.Background()

	for i, name := range benchCategories {
		if _, err := store.AddCategory(ctx, name); err != nil {
			b.Fatalf("add %s: %v", name, err)
		}
		for n := 0; n < perCategory; n++ {
			if _, err := store.IncrementCategory(ctx, i); err != nil {
				b.Fatalf("increment %s: %v", name, err)
			}
		}
	}
}

// seedText renders n seed lines alternating between the two accepted layouts.
func seedText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		name := benchCategories[i%len(benchCategories)]
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d x %s\n", i%7+1, name)
		} else {
			fmt.Fprintf(&sb, "%s: %d\n", name, i%7+1)
		}
	}
	return sb.String()
}
