package parser

import (
	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/token"
)

// parseExpr parses a full expression, assignment included.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precAssignment)
}

// parseBinaryExpr is the precedence-climbing loop. minPrec is the lowest
// operator precedence this call may consume; the conditional '?' is checked
// separately because it is ternary, not binary.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		if p.at(token.Question) && minPrec <= precConditional {
			left, ok = p.parseConditionalExpr(left)
			if !ok {
				return ast.NoExprID, false
			}
			continue
		}

		kind := p.lx.Peek().Kind
		prec, rightAssoc := p.getBinaryOperatorPrec(kind)
		if prec < minPrec {
			break
		}
		opTok := p.advance()

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return ast.NoExprID, false
		}

		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, p.tokenKindToBinaryOp(kind), left, right)
	}

	return left, true
}

func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	if op, isUnary := p.getUnaryOperator(p.lx.Peek().Kind); isUnary {
		opTok := p.advance()
		operand, ok := p.parseUnaryExpr()
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return ast.NoExprID, false
		}
		span := opTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}
	return p.parsePostfixExpr()
}

// parsePostfixExpr parses a primary followed by any number of call, index
// and member suffixes.
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			if !p.at(token.RParen) {
				for {
					arg, ok := p.parseExpr()
					if !ok {
						return ast.NoExprID, false
					}
					args = append(args, arg)
					if !p.at(token.Comma) {
						break
					}
					p.advance()
				}
			}
			rTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(rTok.Span)
			expr = p.arenas.Exprs.NewCall(span, expr, args)

		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			rTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index expression")
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(rTok.Span)
			expr = p.arenas.Exprs.NewIndex(span, expr, index)

		case token.Dot:
			p.advance()
			field, fieldSpan, ok := p.parseIdent()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(fieldSpan)
			expr = p.arenas.Exprs.NewMember(span, expr, field)

		default:
			return expr, true
		}
	}
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		name := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, name), true

	case token.IntLit:
		p.advance()
		return p.newLiteral(tok, ast.ExprLitInt), true
	case token.FloatLit:
		p.advance()
		return p.newLiteral(tok, ast.ExprLitFloat), true
	case token.StringLit:
		p.advance()
		return p.newLiteral(tok, ast.ExprLitString), true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.newLiteral(tok, ast.ExprLitBool), true
	case token.NullLit:
		p.advance()
		return p.newLiteral(tok, ast.ExprLitNull), true

	case token.LParen:
		lTok := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		rTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewGroup(lTok.Span.Cover(rTok.Span), inner), true

	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
		return ast.NoExprID, false
	}
}

func (p *Parser) newLiteral(tok token.Token, kind ast.ExprLitKind) ast.ExprID {
	value := p.arenas.StringsInterner.Intern(tok.Text)
	return p.arenas.Exprs.NewLiteral(tok.Span, kind, value)
}
