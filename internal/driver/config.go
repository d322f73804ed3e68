package driver

import (
	"cnext/internal/parser"
	"cnext/internal/project"
)

// Config carries the pipeline tuning knobs from flags and cnext.toml down
// into the phases.
type Config struct {
	// WarnDepth and MaxDepth bound conditional expression nesting; zero
	// means the parser defaults.
	WarnDepth uint
	MaxDepth  uint
	// MaxDiagnostics caps each file's bag.
	MaxDiagnostics int
	// OutDir receives generated .c files; empty means next to the source.
	OutDir string
}

const defaultMaxDiagnostics = 100

func (c Config) normalized() Config {
	if c.MaxDiagnostics <= 0 {
		c.MaxDiagnostics = defaultMaxDiagnostics
	}
	return c
}

// ApplyManifest overlays manifest settings onto zero-valued fields, so
// explicit flags win over cnext.toml.
func (c Config) ApplyManifest(m *project.Manifest) Config {
	if m == nil {
		return c
	}
	if c.WarnDepth == 0 {
		c.WarnDepth = m.Transpile.WarnDepth
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = m.Transpile.MaxDepth
	}
	if c.OutDir == "" {
		c.OutDir = m.Transpile.OutDir
	}
	return c
}

func (c Config) parserOptions() parser.Options {
	return parser.Options{
		WarnDepth: c.WarnDepth,
		MaxDepth:  c.MaxDepth,
	}
}
