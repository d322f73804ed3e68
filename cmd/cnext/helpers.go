package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cnext/internal/diag"
	"cnext/internal/diagfmt"
	"cnext/internal/driver"
	"cnext/internal/project"
	"cnext/internal/source"
)

// loadConfig assembles the driver config: defaults, then cnext.toml, then
// explicit flags on top.
func loadConfig(cmd *cobra.Command, startPath string) (driver.Config, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	cfg := driver.Config{MaxDiagnostics: maxDiagnostics}

	if f := cmd.Flags().Lookup("warn-depth"); f != nil {
		v, _ := cmd.Flags().GetUint("warn-depth")
		cfg.WarnDepth = v
	}
	if f := cmd.Flags().Lookup("max-depth"); f != nil {
		v, _ := cmd.Flags().GetUint("max-depth")
		cfg.MaxDepth = v
	}
	if f := cmd.Flags().Lookup("out-dir"); f != nil {
		v, _ := cmd.Flags().GetString("out-dir")
		cfg.OutDir = v
	}

	startDir := startPath
	if info, err := os.Stat(startPath); err != nil || !info.IsDir() {
		startDir = filepath.Dir(startPath)
	}
	manifest, _, err := project.LoadNearest(startDir)
	if err != nil {
		return driver.Config{}, err
	}
	return cfg.ApplyManifest(manifest), nil
}

// printDiagnostics renders a bag to stderr and reports whether it held
// errors.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) bool {
	if bag == nil || bag.Len() == 0 {
		return false
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
	return bag.HasErrors()
}
