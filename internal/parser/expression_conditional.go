package parser

import (
	"fmt"

	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/token"
)

// parseConditionalExpr parses: condition ? true_expr : false_expr
// The condition has already been parsed and passed in as `cond`; the
// current token is '?'.
func (p *Parser) parseConditionalExpr(cond ast.ExprID) (ast.ExprID, bool) {
	condSpan := p.arenas.Exprs.Get(cond).Span

	// A bare assignment in the condition slot is almost always a typo for a
	// comparison. Parenthesized assignments arrive here as groups and pass.
	if bin, isBinary := p.arenas.Exprs.Binary(cond); isBinary && bin.Op.IsAssign() {
		p.errAt(diag.SynAssignInCondition, condSpan,
			"assignment cannot be used as a condition; wrap it in parentheses if intended")
		return ast.NoExprID, false
	}

	qTok := p.advance() // consume '?'

	p.condDepth++
	defer func() { p.condDepth-- }()

	if p.condDepth > p.opts.MaxDepth {
		p.errAt(diag.SynConditionalTooDeep, qTok.Span,
			fmt.Sprintf("conditional expressions nested more than %d levels deep", p.opts.MaxDepth))
		return ast.NoExprID, false
	}
	// fire once, when the chain first crosses the threshold
	if p.condDepth == p.opts.WarnDepth+1 {
		p.warnAt(diag.SynDeepConditional, qTok.Span,
			fmt.Sprintf("conditional chain nested deeper than %d levels; consider restructuring", p.opts.WarnDepth))
	}

	// Between '?' and ':' a full expression is allowed, nested conditionals
	// included.
	trueExpr, ok := p.parseExpr()
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression after '?'")
		return ast.NoExprID, false
	}

	if !p.at(token.Colon) {
		p.err(diag.SynExpectColon, "expected ':' in conditional expression")
		return ast.NoExprID, false
	}
	p.advance() // consume ':'

	// Right-associative: the false branch may itself be a conditional, so
	// a ? b : c ? d : e groups as a ? b : (c ? d : e).
	falseExpr, ok := p.parseBinaryExpr(precConditional)
	if !ok {
		p.err(diag.SynExpectExpression, "expected expression after ':'")
		return ast.NoExprID, false
	}

	span := condSpan.Cover(p.arenas.Exprs.Get(falseExpr).Span)
	return p.arenas.Exprs.NewConditional(span, cond, trueExpr, falseExpr), true
}
