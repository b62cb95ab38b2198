package benchmarks

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ammerola/wardrobe-be/internal/adapters/spreadsheet"
	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
	"github.com/ammerola/wardrobe-be/internal/seed"
)

func BenchmarkInventoryOperations(b *testing.B) {
	ctx := context.Background()

	b.Run("AddCategory", func(b *testing.B) {
		store := newBenchStore(b)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = store.AddCategory(ctx, fmt.Sprintf("Category %d", i))
		}
	})

	b.Run("Increment", func(b *testing.B) {
		store := newBenchStore(b)
		stockStore(b, store, 0)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = store.IncrementCategory(ctx, i%len(benchCategories))
		}
	})

	b.Run("SendAndReturn", func(b *testing.B) {
		store := newBenchStore(b)
		stockStore(b, store, 5)
		lines := []domain.LineRequest{
			{CategoryIndex: 0, Quantity: 2},
			{CategoryIndex: 3, Quantity: 3},
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			batch, err := store.SendToLaundry(ctx, lines)
			if err != nil || batch == nil {
				b.Fatalf("send: %v", err)
			}
			_, _ = store.MarkBatchReturned(ctx, batch.ID)
		}
	})

	b.Run("ListActiveBatches", func(b *testing.B) {
		store := newBenchStore(b)
		stockStore(b, store, 50)
		for i := 0; i < 50; i++ {
			_, _ = store.SendToLaundry(ctx, []domain.LineRequest{{CategoryIndex: i % len(benchCategories), Quantity: 1}})
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = store.ListActiveBatches(ctx)
		}
	})

	b.Run("Overview", func(b *testing.B) {
		store := newBenchStore(b)
		stockStore(b, store, 20)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = store.Overview(ctx)
		}
	})
}

func BenchmarkSnapshot(b *testing.B) {
	ctx := context.Background()
	store := newBenchStore(b)
	stockStore(b, store, 100)
	for i := 0; i < 20; i++ {
		_, _ = store.SendToLaundry(ctx, []domain.LineRequest{{CategoryIndex: i % len(benchCategories), Quantity: 2}})
	}

	snap, err := store.ExportSnapshot(ctx)
	if err != nil {
		b.Fatalf("export: %v", err)
	}
	data, err := domain.EncodeSnapshot(snap)
	if err != nil {
		b.Fatalf("encode: %v", err)
	}

	b.Run("Export", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s, _ := store.ExportSnapshot(ctx)
			_, _ = domain.EncodeSnapshot(s)
		}
	})

	b.Run("Decode", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = domain.DecodeSnapshot(data)
		}
	})

	b.Run("Aggregate", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = domain.AggregateUnits(snap.Units)
		}
	})
}

func BenchmarkReportRendering(b *testing.B) {
	ctx := context.Background()
	store := newBenchStore(b)
	stockStore(b, store, 10)
	for i := 0; i < 10; i++ {
		_, _ = store.SendToLaundry(ctx, []domain.LineRequest{{CategoryIndex: i, Quantity: 1}})
	}

	overview, err := store.Overview(ctx)
	if err != nil {
		b.Fatalf("overview: %v", err)
	}
	batches, err := store.ListActiveBatches(ctx)
	if err != nil {
		b.Fatalf("batches: %v", err)
	}
	data := &ports.ReportData{Overview: overview, ActiveBatches: batches}
	renderer := spreadsheet.NewXLSXRenderer()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = renderer.Render(ctx, data)
	}
}

func BenchmarkSeedParsing(b *testing.B) {
	text := seedText(500)
	lines := strings.Split(text, "\n")

	b.Run("Lines", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = seed.ParseLines(lines)
		}
	})

	b.Run("CSV", func(b *testing.B) {
		var sb strings.Builder
		for i, name := range benchCategories {
			fmt.Fprintf(&sb, "%s,%d\n", name, i+1)
		}
		csv := sb.String()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = seed.ParseText(strings.NewReader(csv))
		}
	})
}

func BenchmarkCodeGeneration(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		code := domain.GenerateCode(benchCategories[i%len(benchCategories)])
		_ = domain.UnitIDRange(code, 1, 10)
	}
}
