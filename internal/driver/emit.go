package driver

import (
	"os"
	"path/filepath"
	"strings"

	"cnext/internal/cgen"
	"cnext/internal/diag"
	"cnext/internal/project"
	"cnext/internal/source"
)

// EmitResult is a CheckResult plus the rendered C unit. Output is empty
// when the front end reported errors.
type EmitResult struct {
	CheckResult
	Output string
	// CacheHit is set when the unit came from the disk cache; Builder,
	// Types and Checker are nil in that case.
	CacheHit bool
}

// EmitFile transpiles one file, consulting cache when non-nil. Only clean
// transpiles are cached; a file with diagnostics is always re-run so its
// messages reappear.
func EmitFile(fs *source.FileSet, path string, cfg Config, cache *DiskCache) (EmitResult, error) {
	cfg = cfg.normalized()
	fileID, err := fs.Load(path)
	if err != nil {
		return EmitResult{}, err
	}
	return emitLoaded(fs, fileID, path, cfg, cache), nil
}

// emitLoaded is the load-free core of EmitFile; the parallel driver calls
// it after pre-loading the file set.
func emitLoaded(fs *source.FileSet, fileID source.FileID, path string, cfg Config, cache *DiskCache) EmitResult {
	content := fs.Get(fileID).Content
	key := CacheKey(content, cfg)

	var payload DiskPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		return EmitResult{
			CheckResult: CheckResult{ParseResult: ParseResult{
				SourceFile: fileID,
				Bag:        diag.NewBag(1),
			}},
			Output:   payload.Output,
			CacheHit: true,
		}
	}

	checked := checkLoaded(fs, fileID, cfg)
	result := EmitResult{CheckResult: checked}
	if checked.Bag.HasErrors() {
		return result
	}

	emitter := cgen.New(checked.Builder, checked.Types, checked.Checker.Symbols())
	result.Output = emitter.EmitUnit(checked.File)

	if !checked.Bag.HasWarnings() {
		// best effort; a failed write only costs the next run a re-transpile
		_ = cache.Put(key, &DiskPayload{
			Schema:     diskCacheSchemaVersion,
			SourcePath: path,
			SourceHash: project.Digest(fs.Get(fileID).Hash),
			WarnDepth:  cfg.WarnDepth,
			MaxDepth:   cfg.MaxDepth,
			Output:     result.Output,
		})
	}
	return result
}

// OutputPath maps a .cnx source path to its .c destination under outDir,
// or next to the source when outDir is empty.
func OutputPath(srcPath, outDir string) string {
	base := filepath.Base(srcPath)
	base = strings.TrimSuffix(base, ".cnx") + ".c"
	if outDir == "" {
		return filepath.Join(filepath.Dir(srcPath), base)
	}
	return filepath.Join(outDir, base)
}

// WriteUnit writes an emitted unit to its destination, creating outDir as
// needed.
func WriteUnit(srcPath, outDir, output string) (string, error) {
	dst := OutputPath(srcPath, outDir)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, []byte(output), 0o644); err != nil {
		return "", err
	}
	return dst, nil
}
