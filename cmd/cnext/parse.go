package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cnext/internal/diagfmt"
	"cnext/internal/driver"
	"cnext/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.cnx",
	Short: "Parse a C-Next source file and report syntax diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
	parseCmd.Flags().Uint("warn-depth", 0, "conditional nesting depth that triggers a warning (0 = default)")
	parseCmd.Flags().Uint("max-depth", 0, "hard limit on conditional nesting (0 = default)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	res, err := driver.ParseFile(fs, args[0], cfg)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if format == "json" {
		res.Bag.Sort()
		if err := diagfmt.JSON(os.Stdout, res.Bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		}); err != nil {
			return err
		}
		if res.Bag.HasErrors() {
			os.Exit(1)
		}
		return nil
	}

	if printDiagnostics(cmd, res.Bag, fs) {
		os.Exit(1)
	}
	decls := res.Builder.Files.Get(res.File).Decls
	fmt.Fprintf(os.Stdout, "parsed %s: %d declaration(s)\n", args[0], len(decls))
	return nil
}
