package sema

import (
	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/source"
	"cnext/internal/types"
)

type Options struct {
	Reporter diag.Reporter
}

// Symbol is one resolved file-level declaration.
type Symbol struct {
	Decl  ast.DeclID
	Type  types.TypeID
	Const bool
}

// Checker resolves symbols and assigns a type to every expression of one
// file. Expression types live in a side table keyed by ExprID and are set
// at most once, so repeated resolution is free and idempotent.
type Checker struct {
	builder *ast.Builder
	types   *types.Interner
	opts    Options

	symbols   map[source.StringID]Symbol
	exprTypes map[ast.ExprID]types.TypeID
}

func NewChecker(builder *ast.Builder, interner *types.Interner, opts Options) *Checker {
	return &Checker{
		builder:   builder,
		types:     interner,
		opts:      opts,
		symbols:   make(map[source.StringID]Symbol, 16),
		exprTypes: make(map[ast.ExprID]types.TypeID, 64),
	}
}

// CheckFile runs both passes over one file: declare all symbols, then type
// every initializer.
func (c *Checker) CheckFile(fileID ast.FileID) {
	file := c.builder.Files.Get(fileID)
	if file == nil {
		return
	}
	for _, declID := range file.Decls {
		c.declare(declID)
	}
	for _, declID := range file.Decls {
		c.checkInitializer(declID)
	}
}

// Symbols exposes the resolved symbol table; cgen reads it.
func (c *Checker) Symbols() map[source.StringID]Symbol {
	return c.symbols
}

func (c *Checker) declare(declID ast.DeclID) {
	decl := c.builder.Decls.Get(declID)

	declType := c.types.ByName(c.builder.StringOf(decl.TypeName))
	if declType == types.NoTypeID {
		c.errAt(diag.SemaUnknownType, decl.Span,
			"unknown type \""+c.builder.StringOf(decl.TypeName)+"\"")
		return
	}
	for range decl.Stars {
		declType = c.types.Pointer(declType)
	}

	if _, exists := c.symbols[decl.Name]; exists {
		c.errAt(diag.SemaDuplicateSymbol, decl.NameSpan,
			"duplicate declaration of \""+c.builder.StringOf(decl.Name)+"\"")
		return
	}
	c.symbols[decl.Name] = Symbol{Decl: declID, Type: declType, Const: decl.Const}
}

func (c *Checker) checkInitializer(declID ast.DeclID) {
	decl := c.builder.Decls.Get(declID)
	sym, declared := c.symbols[decl.Name]
	if !declared || sym.Decl != declID || !decl.Value.IsValid() {
		return
	}

	valueType := c.TypeOf(decl.Value)
	if valueType == types.NoTypeID {
		return // already reported while typing the expression
	}
	if c.types.Common(sym.Type, valueType) == types.NoTypeID {
		c.errAt(diag.SemaTypeMismatch, c.builder.Exprs.Get(decl.Value).Span,
			"cannot initialize "+c.types.String(sym.Type)+" with "+c.types.String(valueType))
	}
}

func (c *Checker) errAt(code diag.Code, sp source.Span, msg string) {
	if c.opts.Reporter != nil {
		c.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
