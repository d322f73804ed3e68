package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "cnext.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[package]
name = "demo"
version = "0.1.0"

[transpile]
out-dir = "build"
warn-depth = 5
max-depth = 64
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Package.Name != "demo" || m.Package.Version != "0.1.0" {
		t.Errorf("package section mismatch: %+v", m.Package)
	}
	if m.Transpile.OutDir != "build" || m.Transpile.WarnDepth != 5 || m.Transpile.MaxDepth != 64 {
		t.Errorf("transpile section mismatch: %+v", m.Transpile)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown_key", "[transpile]\nwarndepth = 3\n"},
		{"warn_above_max", "[transpile]\nwarn-depth = 10\nmax-depth = 5\n"},
		{"bad_toml", "[package\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			if _, err := LoadManifest(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	// resolve symlinks before comparing; t.TempDir may live under one
	wantReal, _ := filepath.EvalSymlinks(root)
	gotReal, _ := filepath.EvalSymlinks(got)
	if gotReal != wantReal {
		t.Errorf("root = %q, want %q", gotReal, wantReal)
	}
}

func TestLoadNearestMissing(t *testing.T) {
	m, path, err := LoadNearest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m != nil || path != "" {
		t.Errorf("expected no manifest, got %q", path)
	}
}
