package parser

import (
	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/source"
	"cnext/internal/token"
)

// parseDecl parses one top-level declaration:
//
//	[const] TypeName '*'* name [ '<-' expr ] ';'
func (p *Parser) parseDecl() (ast.DeclID, bool) {
	startSpan := p.lx.Peek().Span

	isConst := false
	if p.at(token.KwConst) {
		p.advance()
		isConst = true
	}

	typeName, _, ok := p.parseTypeName()
	if !ok {
		return ast.NoDeclID, false
	}

	var stars uint8
	for p.at(token.Star) {
		p.advance()
		stars++
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}

	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		value, ok = p.parseExpr()
		if !ok {
			return ast.NoDeclID, false
		}
	}

	endSpan := nameSpan
	if value.IsValid() {
		endSpan = p.arenas.Exprs.Get(value).Span
	}
	if semi, haveSemi := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration"); haveSemi {
		endSpan = semi.Span
	}

	return p.arenas.Decls.New(ast.DeclData{
		Const:    isConst,
		TypeName: typeName,
		Stars:    stars,
		Name:     name,
		NameSpan: nameSpan,
		Value:    value,
		Span:     startSpan.Cover(endSpan),
	}), true
}

func (p *Parser) parseTypeName() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.arenas.StringsInterner.Intern(tok.Text), tok.Span, true
	}
	p.err(diag.SynExpectType, "expected type name, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
