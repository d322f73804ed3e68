package driver

import (
	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/lexer"
	"cnext/internal/parser"
	"cnext/internal/source"
)

// ParseResult bundles everything downstream phases need from a parse.
type ParseResult struct {
	Builder    *ast.Builder
	File       ast.FileID
	SourceFile source.FileID
	Bag        *diag.Bag
}

// ParseFile loads and parses one file into a fresh builder.
func ParseFile(fs *source.FileSet, path string, cfg Config) (ParseResult, error) {
	cfg = cfg.normalized()
	fileID, err := fs.Load(path)
	if err != nil {
		return ParseResult{}, err
	}
	return parseLoaded(fs, fileID, cfg), nil
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, cfg Config) ParseResult {
	bag := diag.NewBag(cfg.MaxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(source.NewInterner(), ast.Hints{})

	opts := cfg.parserOptions()
	opts.Reporter = reporter
	res := parser.ParseFile(fs, lx, builder, opts)

	return ParseResult{
		Builder:    builder,
		File:       res.File,
		SourceFile: fileID,
		Bag:        bag,
	}
}
