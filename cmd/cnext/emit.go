package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cnext/internal/driver"
	"cnext/internal/source"
)

var emitCmd = &cobra.Command{
	Use:   "emit [flags] path",
	Short: "Transpile C-Next sources to C",
	Long:  `Emit transpiles a file or every .cnx file under a directory into .c units`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEmit,
}

func init() {
	emitCmd.Flags().String("out-dir", "", "directory for generated .c files (default: next to sources)")
	emitCmd.Flags().Uint("warn-depth", 0, "conditional nesting depth that triggers a warning (0 = default)")
	emitCmd.Flags().Uint("max-depth", 0, "hard limit on conditional nesting (0 = default)")
	emitCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
	emitCmd.Flags().Bool("no-cache", false, "bypass the transpile cache")
}

func runEmit(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		// a broken cache dir should not block transpilation
		cache, _ = driver.OpenDiskCache("cnext")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		fs := source.NewFileSet()
		res, err := driver.EmitFile(fs, path, cfg, cache)
		if err != nil {
			return fmt.Errorf("emit failed: %w", err)
		}
		if printDiagnostics(cmd, res.Bag, fs) {
			os.Exit(1)
		}
		outPath, err := driver.WriteUnit(path, cfg.OutDir, res.Output)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%s -> %s\n", path, outPath)
		return nil
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	fs, results, err := driver.EmitDir(cmd.Context(), path, cfg, jobs, cache)
	if err != nil {
		return fmt.Errorf("emit failed: %w", err)
	}
	failed := false
	emitted := 0
	for _, r := range results {
		if printDiagnostics(cmd, r.Bag, fs) {
			failed = true
			continue
		}
		if r.OutPath != "" {
			fmt.Fprintf(os.Stdout, "%s -> %s\n", r.Path, r.OutPath)
			emitted++
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "emitted %d unit(s)\n", emitted)
	return nil
}
