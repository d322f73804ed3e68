package parser

import (
	"testing"

	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/lexer"
	"cnext/internal/source"
)

// newTestParser builds a parser over input with a fresh builder and bag,
// leaving the lexer at the first token.
func newTestParser(t *testing.T, input string, opts Options) (*Parser, *ast.Builder, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cnx", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(32)
	reporter := &diag.BagReporter{Bag: bag}
	opts.Reporter = reporter
	opts.normalize()

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(source.NewInterner(), ast.Hints{})
	p := &Parser{
		lx:       lx,
		arenas:   builder,
		file:     builder.Files.New(ast.File{Span: lx.EmptySpan()}),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	return p, builder, bag
}

// parseExprString parses input as a single expression.
func parseExprString(t *testing.T, input string, opts Options) (ast.ExprID, *ast.Builder, *diag.Bag, bool) {
	t.Helper()
	p, builder, bag := newTestParser(t, input, opts)
	id, ok := p.parseExpr()
	return id, builder, bag, ok
}

// identName resolves the name of an ident node, or "" when id is not one.
func identName(builder *ast.Builder, id ast.ExprID) string {
	data, ok := builder.Exprs.Ident(id)
	if !ok {
		return ""
	}
	return builder.StringOf(data.Name)
}
