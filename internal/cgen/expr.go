package cgen

import (
	"strconv"
	"strings"

	"cnext/internal/ast"
	"cnext/internal/sema"
	"cnext/internal/source"
	"cnext/internal/types"
)

// Emitter renders checked C-Next into portable C. It assumes the tree has
// been through sema; malformed nodes render as empty strings rather than
// panicking.
type Emitter struct {
	builder *ast.Builder
	types   *types.Interner
	symbols map[source.StringID]sema.Symbol
}

func New(builder *ast.Builder, interner *types.Interner, symbols map[source.StringID]sema.Symbol) *Emitter {
	return &Emitter{
		builder: builder,
		types:   interner,
		symbols: symbols,
	}
}

// ExprString renders one expression as C.
func (e *Emitter) ExprString(id ast.ExprID) string {
	var sb strings.Builder
	e.writeExpr(&sb, id)
	return sb.String()
}

// writeExpr emits id without enclosing parentheses; parents decide.
func (e *Emitter) writeExpr(sb *strings.Builder, id ast.ExprID) {
	node := e.builder.Exprs.Get(id)
	if node == nil {
		return
	}
	switch node.Kind {
	case ast.ExprIdent:
		data, _ := e.builder.Exprs.Ident(id)
		sb.WriteString(e.builder.StringOf(data.Name))

	case ast.ExprLit:
		data, _ := e.builder.Exprs.Literal(id)
		e.writeLiteral(sb, data)

	case ast.ExprGroup:
		data, _ := e.builder.Exprs.Group(id)
		sb.WriteByte('(')
		e.writeExpr(sb, data.Inner)
		sb.WriteByte(')')

	case ast.ExprUnary:
		data, _ := e.builder.Exprs.Unary(id)
		sb.WriteString(data.Op.String())
		e.writeOperand(sb, data.Operand)

	case ast.ExprBinary:
		data, _ := e.builder.Exprs.Binary(id)
		e.writeOperand(sb, data.Left)
		sb.WriteByte(' ')
		sb.WriteString(data.Op.String())
		sb.WriteByte(' ')
		e.writeOperand(sb, data.Right)

	case ast.ExprCall:
		data, _ := e.builder.Exprs.Call(id)
		e.writeOperand(sb, data.Target)
		sb.WriteByte('(')
		for i, arg := range data.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.writeExpr(sb, arg)
		}
		sb.WriteByte(')')

	case ast.ExprIndex:
		data, _ := e.builder.Exprs.Index(id)
		e.writeOperand(sb, data.Target)
		sb.WriteByte('[')
		e.writeExpr(sb, data.Index)
		sb.WriteByte(']')

	case ast.ExprMember:
		data, _ := e.builder.Exprs.Member(id)
		e.writeOperand(sb, data.Target)
		sb.WriteByte('.')
		sb.WriteString(e.builder.StringOf(data.Field))

	case ast.ExprConditional:
		e.writeConditional(sb, id)
	}
}

// writeConditional lowers a conditional expression onto C's native ternary
// operator, keeping its short-circuit evaluation. Every part is
// parenthesized unconditionally so nested conditionals and low-precedence
// operands can never re-associate on the C side.
func (e *Emitter) writeConditional(sb *strings.Builder, id ast.ExprID) {
	data, _ := e.builder.Exprs.Conditional(id)
	sb.WriteByte('(')
	e.writeExpr(sb, data.Cond)
	sb.WriteString(") ? (")
	e.writeExpr(sb, data.TrueExpr)
	sb.WriteString(") : (")
	e.writeExpr(sb, data.FalseExpr)
	sb.WriteByte(')')
}

// writeOperand wraps binary and conditional children in parentheses. C-Next
// and C disagree on the relative precedence of bitwise and comparison
// operators, so nested operators never rely on the C precedence table.
func (e *Emitter) writeOperand(sb *strings.Builder, id ast.ExprID) {
	node := e.builder.Exprs.Get(id)
	if node != nil && (node.Kind == ast.ExprBinary || node.Kind == ast.ExprConditional) {
		sb.WriteByte('(')
		e.writeExpr(sb, id)
		sb.WriteByte(')')
		return
	}
	e.writeExpr(sb, id)
}

func (e *Emitter) writeLiteral(sb *strings.Builder, data *ast.ExprLiteralData) {
	text := e.builder.StringOf(data.Value)
	switch data.Kind {
	case ast.ExprLitNull:
		sb.WriteString("NULL")
	case ast.ExprLitInt:
		sb.WriteString(rewriteIntLiteral(text))
	default:
		sb.WriteString(text)
	}
}

// rewriteIntLiteral converts binary and octal literals to decimal; C89
// knows neither 0b nor 0o prefixes. Hex and decimal pass through.
func rewriteIntLiteral(text string) string {
	if len(text) < 3 || text[0] != '0' {
		return text
	}
	var base int
	switch text[1] {
	case 'b', 'B':
		base = 2
	case 'o', 'O':
		base = 8
	default:
		return text
	}
	v, err := strconv.ParseUint(text[2:], base, 64)
	if err != nil {
		return text
	}
	return strconv.FormatUint(v, 10)
}
