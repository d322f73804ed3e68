package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest is the parsed cnext.toml.
type Manifest struct {
	Package   PackageSection   `toml:"package"`
	Transpile TranspileSection `toml:"transpile"`
}

type PackageSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// TranspileSection tunes the front end. WarnDepth and MaxDepth bound
// conditional expression nesting; zero means the built-in default.
type TranspileSection struct {
	OutDir    string `toml:"out-dir"`
	WarnDepth uint   `toml:"warn-depth"`
	MaxDepth  uint   `toml:"max-depth"`
}

// LoadManifest parses a cnext.toml file. Unknown keys are an error so typos
// in tuning knobs do not silently fall back to defaults.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if m.Transpile.MaxDepth != 0 && m.Transpile.WarnDepth > m.Transpile.MaxDepth {
		return nil, fmt.Errorf("%s: warn-depth %d exceeds max-depth %d",
			path, m.Transpile.WarnDepth, m.Transpile.MaxDepth)
	}
	return &m, nil
}

// LoadNearest finds and parses the manifest governing startDir. Returns
// (nil, "", nil) when no manifest exists; callers fall back to defaults.
func LoadNearest(startDir string) (*Manifest, string, error) {
	path, ok, err := FindCnextToml(startDir)
	if err != nil || !ok {
		return nil, "", err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, "", err
	}
	return m, path, nil
}
