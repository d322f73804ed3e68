package parser

import (
	"strings"
	"testing"

	"cnext/internal/ast"
	"cnext/internal/diag"
)

func TestConditionalBasic(t *testing.T) {
	id, builder, bag, ok := parseExprString(t, "a ? b : c", Options{})
	if !ok || bag.HasErrors() {
		t.Fatalf("parse failed, %d diagnostics", bag.Len())
	}
	data, isCond := builder.Exprs.Conditional(id)
	if !isCond {
		t.Fatalf("expected conditional node, got kind %v", builder.Exprs.Get(id).Kind)
	}
	if got := identName(builder, data.Cond); got != "a" {
		t.Errorf("cond = %q, want a", got)
	}
	if got := identName(builder, data.TrueExpr); got != "b" {
		t.Errorf("true branch = %q, want b", got)
	}
	if got := identName(builder, data.FalseExpr); got != "c" {
		t.Errorf("false branch = %q, want c", got)
	}
}

func TestConditionalRightAssociative(t *testing.T) {
	// a ? b : c ? d : e must group as a ? b : (c ? d : e)
	id, builder, bag, ok := parseExprString(t, "a ? b : c ? d : e", Options{})
	if !ok || bag.HasErrors() {
		t.Fatalf("parse failed, %d diagnostics", bag.Len())
	}
	outer, isCond := builder.Exprs.Conditional(id)
	if !isCond {
		t.Fatal("expected conditional at root")
	}
	if got := identName(builder, outer.Cond); got != "a" {
		t.Errorf("outer cond = %q, want a", got)
	}
	if got := identName(builder, outer.TrueExpr); got != "b" {
		t.Errorf("outer true branch = %q, want b", got)
	}
	inner, isCond := builder.Exprs.Conditional(outer.FalseExpr)
	if !isCond {
		t.Fatal("expected nested conditional in false branch")
	}
	if got := identName(builder, inner.Cond); got != "c" {
		t.Errorf("inner cond = %q, want c", got)
	}
	if got := identName(builder, inner.FalseExpr); got != "e" {
		t.Errorf("inner false branch = %q, want e", got)
	}
}

func TestConditionalPassthrough(t *testing.T) {
	// without '?' the expression must come through untouched
	id, builder, bag, ok := parseExprString(t, "a + b", Options{})
	if !ok || bag.HasErrors() {
		t.Fatalf("parse failed, %d diagnostics", bag.Len())
	}
	if _, isCond := builder.Exprs.Conditional(id); isCond {
		t.Fatal("unexpected conditional node")
	}
	bin, isBinary := builder.Exprs.Binary(id)
	if !isBinary || bin.Op != ast.ExprBinaryAdd {
		t.Fatalf("expected binary add at root")
	}
}

func TestConditionalCondPrecedence(t *testing.T) {
	// '||' binds tighter than '?', so the whole disjunction is the condition
	id, builder, bag, ok := parseExprString(t, "a || b ? c : d", Options{})
	if !ok || bag.HasErrors() {
		t.Fatalf("parse failed, %d diagnostics", bag.Len())
	}
	data, isCond := builder.Exprs.Conditional(id)
	if !isCond {
		t.Fatal("expected conditional at root")
	}
	bin, isBinary := builder.Exprs.Binary(data.Cond)
	if !isBinary || bin.Op != ast.ExprBinaryLogicalOr {
		t.Fatal("expected '||' as condition")
	}
}

func TestConditionalAsAssignValue(t *testing.T) {
	// x <- c ? a : b assigns the whole conditional
	id, builder, bag, ok := parseExprString(t, "x <- c ? a : b", Options{})
	if !ok || bag.HasErrors() {
		t.Fatalf("parse failed, %d diagnostics", bag.Len())
	}
	bin, isBinary := builder.Exprs.Binary(id)
	if !isBinary || !bin.Op.IsAssign() {
		t.Fatal("expected assignment at root")
	}
	if _, isCond := builder.Exprs.Conditional(bin.Right); !isCond {
		t.Fatal("expected conditional on the right of '<-'")
	}
}

func TestConditionalMissingColon(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"eof_after_true", "a ? b"},
		{"semicolon_instead", "a ? b ;"},
		{"operator_instead", "a ? b + c )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag, ok := parseExprString(t, tt.input, Options{})
			if ok {
				t.Fatal("expected parse failure")
			}
			if bag.CountCode(diag.SynExpectColon) == 0 {
				t.Errorf("expected SynExpectColon diagnostic, bag has %d items", bag.Len())
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == diag.SynExpectColon && strings.Contains(d.Message, "expected ':' in conditional expression") {
					found = true
				}
			}
			if !found {
				t.Error("missing-colon message not found")
			}
		})
	}
}

// chain builds a right-leaning conditional chain with n '?' operators:
// c0 ? v0 : c1 ? v1 : ... : tail
func chain(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("c ? v : ")
	}
	sb.WriteString("tail")
	return sb.String()
}

func TestConditionalNestingWarning(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		opts      Options
		wantWarns int
	}{
		{"at_threshold", chain(3), Options{}, 0},
		{"past_threshold", chain(4), Options{}, 1},
		{"deep_chain_warns_once", chain(10), Options{}, 1},
		{"raised_threshold", chain(4), Options{WarnDepth: 4}, 0},
		{"lowered_threshold", chain(2), Options{WarnDepth: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bag, ok := parseExprString(t, tt.input, tt.opts)
			if !ok || bag.HasErrors() {
				t.Fatalf("parse failed, %d diagnostics", bag.Len())
			}
			if got := bag.CountCode(diag.SynDeepConditional); got != tt.wantWarns {
				t.Errorf("SynDeepConditional count = %d, want %d", got, tt.wantWarns)
			}
		})
	}
}

func TestConditionalTooDeep(t *testing.T) {
	// lowered ceiling keeps the test input small; the default is 256
	opts := Options{MaxDepth: 8, WarnDepth: 100}

	_, _, bag, ok := parseExprString(t, chain(8), opts)
	if !ok || bag.HasErrors() {
		t.Fatalf("chain at the ceiling should parse, got %d diagnostics", bag.Len())
	}

	_, _, bag, ok = parseExprString(t, chain(9), opts)
	if ok {
		t.Fatal("expected parse failure past the ceiling")
	}
	if bag.CountCode(diag.SynConditionalTooDeep) == 0 {
		t.Error("expected SynConditionalTooDeep diagnostic")
	}
}

func TestAssignInCondition(t *testing.T) {
	// The condition arrives pre-parsed, so drive parseConditionalExpr
	// directly with an assignment node in the condition slot.
	p, builder, bag := newTestParser(t, "? a : b", Options{})

	span := p.lx.EmptySpan()
	x := builder.Exprs.NewIdent(span, builder.StringsInterner.Intern("x"))
	y := builder.Exprs.NewIdent(span, builder.StringsInterner.Intern("y"))
	cond := builder.Exprs.NewBinary(span, ast.ExprBinaryAssign, x, y)

	_, ok := p.parseConditionalExpr(cond)
	if ok {
		t.Fatal("expected rejection of assignment condition")
	}
	if bag.CountCode(diag.SynAssignInCondition) == 0 {
		t.Error("expected SynAssignInCondition diagnostic")
	}
}

func TestParenthesizedAssignInCondition(t *testing.T) {
	// wrapping the assignment in parens is the explicit opt-in
	p, builder, bag := newTestParser(t, "? a : b", Options{})

	span := p.lx.EmptySpan()
	x := builder.Exprs.NewIdent(span, builder.StringsInterner.Intern("x"))
	y := builder.Exprs.NewIdent(span, builder.StringsInterner.Intern("y"))
	assign := builder.Exprs.NewBinary(span, ast.ExprBinaryAssign, x, y)
	cond := builder.Exprs.NewGroup(span, assign)

	id, ok := p.parseConditionalExpr(cond)
	if !ok || bag.HasErrors() {
		t.Fatalf("parenthesized assignment condition should parse, %d diagnostics", bag.Len())
	}
	if _, isCond := builder.Exprs.Conditional(id); !isCond {
		t.Fatal("expected conditional node")
	}
}

func TestConditionalGroupedBranches(t *testing.T) {
	id, builder, bag, ok := parseExprString(t, "(a ? b : c) ? d : e", Options{})
	if !ok || bag.HasErrors() {
		t.Fatalf("parse failed, %d diagnostics", bag.Len())
	}
	data, isCond := builder.Exprs.Conditional(id)
	if !isCond {
		t.Fatal("expected conditional at root")
	}
	inner := builder.Exprs.Unwrap(data.Cond)
	if _, isCond := builder.Exprs.Conditional(inner); !isCond {
		t.Fatal("expected grouped conditional as condition")
	}
}
