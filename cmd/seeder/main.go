// cmd/seeder/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ammerola/wardrobe-be/internal/bootstrap"
	"github.com/ammerola/wardrobe-be/internal/pkg/config"
	"github.com/ammerola/wardrobe-be/internal/pkg/logger"
	"github.com/ammerola/wardrobe-be/internal/seed"
)

// seederState tracks files already applied so reruns do not double count.
type seederState struct {
	ProcessedFiles []string  `json:"processed_files"`
	LastUpdate     time.Time `json:"last_update"`
}

func main() {
	var (
		inputDir  = flag.String("dir", "", "Directory of seed files (.csv, .txt, .xlsx, .pdf)")
		stateFile = flag.String("state", "./.seed_state.json", "State file for tracking processed files")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun    = flag.Bool("dry-run", false, "Preview changes without modifying the store")
		force     = flag.Bool("force", false, "Reprocess files listed in the state file")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: seeder [flags] [file ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "text")

	files, err := collectFiles(*inputDir, flag.Args())
	if err != nil {
		slogger.Error("failed to find seed files", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := bootstrap.ApplySecrets(ctx, cfg, slogger); err != nil {
		slogger.Error("failed to load secrets", slog.String("error", err.Error()))
		os.Exit(1)
	}

	backend, err := bootstrap.OpenBackend(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to open store backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	store, err := bootstrap.NewStore(ctx, cfg, backend.KV, slogger)
	if err != nil {
		slogger.Error("failed to load inventory", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Dispose()

	var state seederState
	if !*force {
		if data, err := os.ReadFile(*stateFile); err == nil {
			if err := json.Unmarshal(data, &state); err != nil {
				slogger.Warn("ignoring unreadable state file", slog.String("error", err.Error()))
			}
		}
	}

	seeder := seed.NewSeeder(store, *dryRun, slogger)
	var (
		total  seed.Result
		failed []string
	)

	for i, path := range files {
		name := filepath.Base(path)
		fmt.Printf("PROGRESS: Processing %d/%d: %s\n", i+1, len(files), name)

		if !*force && slices.Contains(state.ProcessedFiles, name) {
			slogger.Info("skipping already processed file", slog.String("file", name))
			continue
		}

		entries, err := seed.ReadFile(path)
		if err != nil {
			slogger.Error("failed to read seed file", slog.String("file", name), slog.String("error", err.Error()))
			failed = append(failed, name)
			continue
		}
		if len(entries) == 0 {
			slogger.Warn("no entries found", slog.String("file", name))
			failed = append(failed, name+" (0 entries)")
			continue
		}

		res, err := seeder.Apply(ctx, entries)
		total.CategoriesAdded += res.CategoriesAdded
		total.UnitsAdded += res.UnitsAdded
		total.Skipped += res.Skipped
		total.PersistWarnings += res.PersistWarnings
		if err != nil {
			slogger.Error("failed to apply seed file", slog.String("file", name), slog.String("error", err.Error()))
			failed = append(failed, name)
			continue
		}

		fmt.Printf("SUCCESS: %s - %d categories, %d units\n", name, res.CategoriesAdded, res.UnitsAdded)
		state.ProcessedFiles = append(state.ProcessedFiles, name)
		state.LastUpdate = time.Now()
	}

	if !*dryRun {
		if err := saveState(*stateFile, state); err != nil {
			slogger.Warn("failed to save state file", slog.String("error", err.Error()))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Categories added: %d\n", total.CategoriesAdded)
	fmt.Printf("Units added:      %d\n", total.UnitsAdded)
	fmt.Printf("Entries skipped:  %d\n", total.Skipped)
	if total.PersistWarnings > 0 {
		fmt.Printf("Unsaved changes:  %d\n", total.PersistWarnings)
	}
	if len(failed) > 0 {
		fmt.Printf("\nFailed files (%d):\n", len(failed))
		for _, f := range failed {
			fmt.Printf("  - %s\n", f)
		}
	}
	if *dryRun {
		fmt.Println("\n[DRY RUN] No changes were made to the store")
	}

	slogger.Info("seed operation completed",
		slog.Int("files", len(files)),
		slog.Int("categories_added", total.CategoriesAdded),
		slog.Int("units_added", total.UnitsAdded),
		slog.Int("failed_files", len(failed)))

	if len(failed) > 0 || total.PersistWarnings > 0 {
		os.Exit(1)
	}
}

func collectFiles(dir string, args []string) ([]string, error) {
	files := append([]string(nil), args...)
	if dir == "" {
		return files, nil
	}
	for _, pattern := range []string{"*.csv", "*.txt", "*.xlsx", "*.pdf"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return files, nil
}

func saveState(path string, state seederState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
