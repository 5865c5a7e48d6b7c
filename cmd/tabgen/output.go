package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/go-gota/gota/dataframe"
	"github.com/pterm/pterm"

	"pkg.jsn.cam/tabgen/internal/export"
	"pkg.jsn.cam/tabgen/internal/ui"
	"pkg.jsn.cam/tabgen/pkg/storage"
	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

func openCatalog() (storage.Store, error) {
	if catalogPath == "" {
		return nil, errors.New("--catalog is required")
	}
	ui.Debug.Printf("[STORAGE] Opening catalog %s\n", catalogPath)
	store, err := storage.NewBoltStore(catalogPath)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// pinSeed rewrites cfg so that replaying it reproduces the same table.
func pinSeed(cfg tabgen.Config, seed int64, known bool) tabgen.Config {
	if known {
		cfg.Seed = &seed
		cfg.RandomSeed = false
	}
	return cfg
}

// writeOutput exports df to path. The returned path is absolute unless df
// went to stdout.
func writeOutput(path, name string, df dataframe.DataFrame, progress bool) (string, error) {
	n, err := export.ToFile(path, name, df, export.Options{Progress: progress})
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if path == export.Stdout {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	ui.Success.Printf("Wrote %s to %s\n", humanize.Bytes(uint64(n)), abs)
	return abs, nil
}

// recordRun saves df's run into store.
func recordRun(store storage.Store, cfg tabgen.Config, df dataframe.DataFrame, output string) (*storage.Run, error) {
	run := storage.NewRun(cfg, df)
	run.Output = output
	if err := store.SaveRun(run); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	ui.Debug.Printf("[STORAGE] Recorded run %s (%s)\n", run.ID, run.Name)
	return run, nil
}

// quietForStdout keeps status messages out of CSV written to stdout.
func quietForStdout(path string) {
	if path == export.Stdout {
		pterm.SetDefaultOutput(os.Stderr)
	}
}
