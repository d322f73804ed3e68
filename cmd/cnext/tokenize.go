package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cnext/internal/diagfmt"
	"cnext/internal/driver"
	"cnext/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.cnx",
	Short: "Tokenize a C-Next source file",
	Long:  `Tokenize breaks down a C-Next source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	tokens, _, bag, err := driver.TokenizeFile(fs, args[0], cfg)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	printDiagnostics(cmd, bag, fs)

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fs)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
