package parser

import (
	"slices"

	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/lexer"
	"cnext/internal/source"
	"cnext/internal/token"
)

const (
	// DefaultWarnDepth is the conditional nesting depth past which the
	// parser emits an advisory warning.
	DefaultWarnDepth = 3
	// DefaultMaxDepth is the hard ceiling on conditional nesting. Crossing
	// it is a syntax error; anything this deep is machine-generated or
	// hostile input.
	DefaultMaxDepth = 256
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter

	// WarnDepth overrides DefaultWarnDepth when non-zero.
	WarnDepth uint
	// MaxDepth overrides DefaultMaxDepth when non-zero.
	MaxDepth uint
}

func (o *Options) normalize() {
	if o.WarnDepth == 0 {
		o.WarnDepth = DefaultWarnDepth
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds per-file parse state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span

	// condDepth tracks how many conditional expressions enclose the
	// current position.
	condDepth uint
}

// ParseFile parses one file into the builder's arenas and returns the new
// FileID. The lexer must be positioned at the start of the file.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	opts.normalize()
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(ast.File{Span: lx.EmptySpan()}),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseDecls()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseDecls is the top-level loop: declarations until EOF.
func (p *Parser) parseDecls() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		declID, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		file := p.arenas.Files.Get(p.file)
		file.Decls = append(file.Decls, declID)
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// resyncTop skips to the next ';' or declaration starter after a top-level
// parse error, eating the semicolon if that is what stopped us. An Ident
// counts as a starter: every declaration begins with a type name.
func (p *Parser) resyncTop() {
	for !p.atAny(token.EOF, token.Semicolon, token.KwConst, token.Ident) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}

// parseIdent expects an identifier and interns its text.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
