package driver

import (
	"cnext/internal/diag"
	"cnext/internal/sema"
	"cnext/internal/source"
	"cnext/internal/types"
)

// CheckResult is a ParseResult with types resolved.
type CheckResult struct {
	ParseResult
	Types   *types.Interner
	Checker *sema.Checker
}

// CheckFile loads, parses and type-checks one file.
func CheckFile(fs *source.FileSet, path string, cfg Config) (CheckResult, error) {
	cfg = cfg.normalized()
	fileID, err := fs.Load(path)
	if err != nil {
		return CheckResult{}, err
	}
	return checkLoaded(fs, fileID, cfg), nil
}

func checkLoaded(fs *source.FileSet, fileID source.FileID, cfg Config) CheckResult {
	parsed := parseLoaded(fs, fileID, cfg)

	interner := types.NewInterner()
	checker := sema.NewChecker(parsed.Builder, interner, sema.Options{
		Reporter: &diag.BagReporter{Bag: parsed.Bag},
	})
	checker.CheckFile(parsed.File)

	return CheckResult{
		ParseResult: parsed,
		Types:       interner,
		Checker:     checker,
	}
}
