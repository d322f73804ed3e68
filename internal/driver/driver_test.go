package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cnext/internal/diag"
	"cnext/internal/source"
	"cnext/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.cnx", "i32 x <- 1;")
	fs := source.NewFileSet()
	tokens, _, bag, err := TokenizeFile(fs, path, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %d diagnostics", bag.Len())
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Error("token stream should end with EOF")
	}
}

func TestCheckFileReportsSemaErrors(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.cnx", "bool c; string s; i32 x; i32 r <- c ? s : x;")
	fs := source.NewFileSet()
	res, err := CheckFile(fs, path, Config{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.CountCode(diag.SemaTypeMismatch) == 0 {
		t.Error("expected a branch type mismatch")
	}
}

func TestEmitFileCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.cnx", "i32 x; i32 r <- x > 0 ? x : 0;")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := EmitFile(source.NewFileSet(), path, Config{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Fatal("first emit should miss the cache")
	}
	if !strings.Contains(first.Output, "(x > 0) ? (x) : (0)") {
		t.Fatalf("lowered conditional missing:\n%s", first.Output)
	}

	second, err := EmitFile(source.NewFileSet(), path, Config{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Fatal("second emit should hit the cache")
	}
	if second.Output != first.Output {
		t.Error("cached output differs from fresh output")
	}

	// a different depth config must not reuse the entry
	third, err := EmitFile(source.NewFileSet(), path, Config{WarnDepth: 7}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("changed config should miss the cache")
	}
}

func TestEmitFileWithWarningsNotCached(t *testing.T) {
	dir := t.TempDir()
	deep := "i32 c; i32 r <- c ? 1 : c ? 2 : c ? 3 : c ? 4 : 5;"
	path := writeSource(t, dir, "a.cnx", deep)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := EmitFile(source.NewFileSet(), path, Config{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first.Bag.CountCode(diag.SynDeepConditional) != 1 {
		t.Fatalf("expected one nesting warning, got %d", first.Bag.CountCode(diag.SynDeepConditional))
	}
	if first.Output == "" {
		t.Fatal("warnings must not suppress output")
	}

	second, err := EmitFile(source.NewFileSet(), path, Config{}, cache)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheHit {
		t.Error("warned transpile should re-run so the warning reappears")
	}
}

func TestEmitDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "good.cnx", "i32 x <- 1;")
	writeSource(t, dir, "bad.cnx", "i32 x <- ;")
	outDir := filepath.Join(dir, "build")

	_, results, err := EmitDir(context.Background(), dir, Config{OutDir: outDir}, 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// sorted order: bad.cnx first
	if !results[0].Bag.HasErrors() || results[0].OutPath != "" {
		t.Error("bad.cnx should fail without output")
	}
	if results[1].Bag.HasErrors() {
		t.Error("good.cnx should transpile cleanly")
	}
	content, err := os.ReadFile(filepath.Join(outDir, "good.c"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "int32_t x = 1;") {
		t.Errorf("generated unit malformed:\n%s", content)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.cnx", "i32 x <- 1;")
	writeSource(t, dir, "b.cnx", "i32 y <- x ? 1;") // x unresolved, colon missing

	_, results, err := CheckDir(context.Background(), dir, Config{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Bag.HasErrors() {
		t.Error("a.cnx should be clean")
	}
	if results[1].Bag.CountCode(diag.SynExpectColon) == 0 {
		t.Error("b.cnx should report the missing colon")
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputPath("src/a.cnx", ""); got != filepath.Join("src", "a.c") {
		t.Errorf("OutputPath = %q", got)
	}
	if got := OutputPath("src/a.cnx", "build"); got != filepath.Join("build", "a.c") {
		t.Errorf("OutputPath = %q", got)
	}
}
