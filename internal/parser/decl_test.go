package parser

import (
	"testing"

	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/lexer"
	"cnext/internal/source"
)

func parseFileString(t *testing.T, input string, opts Options) (*ast.Builder, ast.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cnx", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(32)
	reporter := &diag.BagReporter{Bag: bag}
	opts.Reporter = reporter

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(source.NewInterner(), ast.Hints{})
	res := ParseFile(fs, lx, builder, opts)
	return builder, res.File, bag
}

func TestParseDecls(t *testing.T) {
	src := `
i32 x <- 1;
const f64 ratio <- 0.5;
u8* buf <- null;
bool flag;
`
	builder, fileID, bag := parseFileString(t, src, Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors, %d diagnostics", bag.Len())
	}
	decls := builder.Files.Get(fileID).Decls
	if len(decls) != 4 {
		t.Fatalf("expected 4 declarations, got %d", len(decls))
	}

	x := builder.Decls.Get(decls[0])
	if builder.StringOf(x.TypeName) != "i32" || builder.StringOf(x.Name) != "x" || x.Const || x.Stars != 0 {
		t.Errorf("decl 0 mismatch: %+v", x)
	}
	if !x.Value.IsValid() {
		t.Error("decl 0 missing initializer")
	}

	ratio := builder.Decls.Get(decls[1])
	if !ratio.Const || builder.StringOf(ratio.Name) != "ratio" {
		t.Errorf("decl 1 mismatch: %+v", ratio)
	}

	buf := builder.Decls.Get(decls[2])
	if buf.Stars != 1 || builder.StringOf(buf.TypeName) != "u8" {
		t.Errorf("decl 2 mismatch: %+v", buf)
	}
	lit, isLit := builder.Exprs.Literal(buf.Value)
	if !isLit || lit.Kind != ast.ExprLitNull {
		t.Error("decl 2 initializer should be the null literal")
	}

	flag := builder.Decls.Get(decls[3])
	if flag.Value.IsValid() {
		t.Error("decl 3 should have no initializer")
	}
}

func TestParseDeclConditionalInitializer(t *testing.T) {
	builder, fileID, bag := parseFileString(t, "i32 y <- x > 0 ? x : 0 - x;", Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors, %d diagnostics", bag.Len())
	}
	decls := builder.Files.Get(fileID).Decls
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	value := builder.Decls.Get(decls[0]).Value
	cond, isCond := builder.Exprs.Conditional(value)
	if !isCond {
		t.Fatal("expected conditional initializer")
	}
	bin, isBinary := builder.Exprs.Binary(cond.Cond)
	if !isBinary || bin.Op != ast.ExprBinaryGreater {
		t.Fatal("expected '>' comparison as condition")
	}
}

func TestParseDeclErrorsAndResync(t *testing.T) {
	// the bad declaration must not take the good one down with it
	src := "i32 <- ;\ni32 ok <- 1;"
	builder, fileID, bag := parseFileString(t, src, Options{})
	if !bag.HasErrors() {
		t.Fatal("expected errors from the malformed declaration")
	}
	decls := builder.Files.Get(fileID).Decls
	if len(decls) != 1 {
		t.Fatalf("expected 1 surviving declaration, got %d", len(decls))
	}
	if builder.StringOf(builder.Decls.Get(decls[0]).Name) != "ok" {
		t.Error("wrong surviving declaration")
	}
}

func TestParseDeclMissingSemicolon(t *testing.T) {
	_, _, bag := parseFileString(t, "i32 x <- 1", Options{})
	if bag.CountCode(diag.SynExpectSemicolon) == 0 {
		t.Error("expected SynExpectSemicolon diagnostic")
	}
}
