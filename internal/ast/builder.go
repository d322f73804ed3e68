package ast

import (
	"cnext/internal/source"
)

// Hints sizes the builder's arenas up front. Zero values fall back to
// defaults good enough for a typical source file.
type Hints struct {
	Files uint
	Decls uint
	Exprs uint
}

func (h Hints) withDefaults() Hints {
	if h.Files == 0 {
		h.Files = 4
	}
	if h.Decls == 0 {
		h.Decls = 64
	}
	if h.Exprs == 0 {
		h.Exprs = 512
	}
	return h
}

// Builder aggregates the arenas one parse run writes into. A single builder
// may hold many files; IDs are unique across the whole builder.
type Builder struct {
	Files *Files
	Decls *Decls
	Exprs *Exprs

	// StringsInterner resolves the StringIDs stored in nodes.
	StringsInterner *source.Interner
}

func NewBuilder(interner *source.Interner, hints Hints) *Builder {
	hints = hints.withDefaults()
	return &Builder{
		Files:           NewFiles(hints.Files),
		Decls:           NewDecls(hints.Decls),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: interner,
	}
}

// StringOf resolves id against the builder's interner; it returns "" for
// NoStringID.
func (b *Builder) StringOf(id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	return b.StringsInterner.MustLookup(id)
}
