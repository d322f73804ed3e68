package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cnext/internal/driver"
	"cnext/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path",
	Short: "Type-check C-Next sources without emitting C",
	Long:  `Check runs the full front end over a file or every .cnx file under a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Uint("warn-depth", 0, "conditional nesting depth that triggers a warning (0 = default)")
	checkCmd.Flags().Uint("max-depth", 0, "hard limit on conditional nesting (0 = default)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg, err := loadConfig(cmd, path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		fs := source.NewFileSet()
		res, err := driver.CheckFile(fs, path, cfg)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		if printDiagnostics(cmd, res.Bag, fs) {
			os.Exit(1)
		}
		return nil
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	fs, results, err := driver.CheckDir(cmd.Context(), path, cfg, jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	failed := false
	for _, r := range results {
		if printDiagnostics(cmd, r.Bag, fs) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, "checked %d file(s)\n", len(results))
	return nil
}
