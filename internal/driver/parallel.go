package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"cnext/internal/diag"
	"cnext/internal/source"
)

// CheckDirResult is one file's outcome from CheckDir.
type CheckDirResult struct {
	Path string
	Bag  *diag.Bag
}

// EmitDirResult is one file's outcome from EmitDir.
type EmitDirResult struct {
	Path     string
	OutPath  string
	Output   string
	Bag      *diag.Bag
	CacheHit bool
}

// listCnxFiles returns every *.cnx file under dir, sorted for
// deterministic output order.
func listCnxFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".cnx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir parses and type-checks every *.cnx file under dir in parallel.
func CheckDir(ctx context.Context, dir string, cfg Config, jobs int) (*source.FileSet, []CheckDirResult, error) {
	cfg = cfg.normalized()
	files, err := listCnxFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadBags := loadAll(fileSet, files, cfg)
	results := make([]CheckDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if bag, failed := loadBags[path]; failed {
				results[i] = CheckDirResult{Path: path, Bag: bag}
				return nil
			}
			checked := checkLoaded(fileSet, fileIDs[path], cfg)
			results[i] = CheckDirResult{Path: path, Bag: checked.Bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

// EmitDir transpiles every *.cnx file under dir in parallel and writes the
// .c units to cfg.OutDir. Files with diagnostics produce no output file.
func EmitDir(ctx context.Context, dir string, cfg Config, jobs int, cache *DiskCache) (*source.FileSet, []EmitDirResult, error) {
	cfg = cfg.normalized()
	files, err := listCnxFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadBags := loadAll(fileSet, files, cfg)
	results := make([]EmitDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobLimit(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if bag, failed := loadBags[path]; failed {
				results[i] = EmitDirResult{Path: path, Bag: bag}
				return nil
			}
			emitted := emitLoaded(fileSet, fileIDs[path], path, cfg, cache)
			res := EmitDirResult{
				Path:     path,
				Output:   emitted.Output,
				Bag:      emitted.Bag,
				CacheHit: emitted.CacheHit,
			}
			if emitted.Output != "" {
				outPath, err := WriteUnit(path, cfg.OutDir, emitted.Output)
				if err != nil {
					return err
				}
				res.OutPath = outPath
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}

func loadAll(fileSet *source.FileSet, files []string, cfg Config) (map[string]source.FileID, map[string]*diag.Bag) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadBags := make(map[string]*diag.Bag, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// anchor the diagnostic to a virtual empty file so renderers
			// still resolve a path for it
			ghost := fileSet.AddVirtual(path, nil)
			bag := diag.NewBag(cfg.MaxDiagnostics)
			bag.Add(diag.NewError(diag.UnknownCode, source.Span{File: ghost},
				"failed to load file: "+err.Error()))
			loadBags[path] = bag
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadBags
}

func jobLimit(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, files)
}
