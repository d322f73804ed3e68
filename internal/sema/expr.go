package sema

import (
	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/source"
	"cnext/internal/types"
)

// TypeOf resolves and memoizes the type of an expression. NoTypeID means
// the expression (or a subexpression) did not type-check; the diagnostic
// was emitted on first resolution and is never repeated.
func (c *Checker) TypeOf(id ast.ExprID) types.TypeID {
	if !id.IsValid() {
		return types.NoTypeID
	}
	if cached, done := c.exprTypes[id]; done {
		return cached
	}
	resolved := c.resolve(id)
	c.exprTypes[id] = resolved
	return resolved
}

func (c *Checker) resolve(id ast.ExprID) types.TypeID {
	node := c.builder.Exprs.Get(id)
	switch node.Kind {
	case ast.ExprIdent:
		data, _ := c.builder.Exprs.Ident(id)
		sym, declared := c.symbols[data.Name]
		if !declared {
			c.errAt(diag.SemaUnresolvedSymbol, node.Span,
				"unresolved symbol \""+c.builder.StringOf(data.Name)+"\"")
			return types.NoTypeID
		}
		return sym.Type

	case ast.ExprLit:
		data, _ := c.builder.Exprs.Literal(id)
		return c.literalType(data.Kind)

	case ast.ExprGroup:
		data, _ := c.builder.Exprs.Group(id)
		return c.TypeOf(data.Inner)

	case ast.ExprUnary:
		return c.resolveUnary(id)

	case ast.ExprBinary:
		return c.resolveBinary(id)

	case ast.ExprConditional:
		return c.resolveConditional(id)

	case ast.ExprIndex:
		data, _ := c.builder.Exprs.Index(id)
		targetType := c.TypeOf(data.Target)
		c.TypeOf(data.Index)
		if t := c.types.Lookup(targetType); t != nil && t.Kind == types.KindPointer {
			return t.Elem
		}
		return types.NoTypeID

	case ast.ExprCall, ast.ExprMember:
		// no function or struct types at file scope yet; operands are
		// still typed so their own errors surface
		c.resolveChildren(id)
		return types.NoTypeID
	}
	return types.NoTypeID
}

func (c *Checker) resolveChildren(id ast.ExprID) {
	if call, isCall := c.builder.Exprs.Call(id); isCall {
		c.TypeOf(call.Target)
		for _, arg := range call.Args {
			c.TypeOf(arg)
		}
	}
	if member, isMember := c.builder.Exprs.Member(id); isMember {
		c.TypeOf(member.Target)
	}
}

// literalType maps literal kinds to their default types: integer literals
// are i32, floats f64.
func (c *Checker) literalType(kind ast.ExprLitKind) types.TypeID {
	switch kind {
	case ast.ExprLitInt:
		return c.types.Builtins.I32
	case ast.ExprLitFloat:
		return c.types.Builtins.F64
	case ast.ExprLitString:
		return c.types.Builtins.String
	case ast.ExprLitBool:
		return c.types.Builtins.Bool
	case ast.ExprLitNull:
		return c.types.Builtins.Null
	}
	return types.NoTypeID
}

func (c *Checker) resolveUnary(id ast.ExprID) types.TypeID {
	data, _ := c.builder.Exprs.Unary(id)
	operand := c.TypeOf(data.Operand)
	if operand == types.NoTypeID {
		return types.NoTypeID
	}
	span := c.builder.Exprs.Get(id).Span
	t := c.types.Lookup(operand)

	switch data.Op {
	case ast.ExprUnaryPlus, ast.ExprUnaryMinus:
		if !t.IsNumeric() {
			c.errAt(diag.SemaInvalidUnaryOperand, span,
				"operator '"+data.Op.String()+"' needs a numeric operand, got "+c.types.String(operand))
			return types.NoTypeID
		}
		return operand

	case ast.ExprUnaryNot:
		if !c.types.BooleanConvertible(operand) {
			c.errAt(diag.SemaInvalidUnaryOperand, span,
				"operator '!' needs a boolean-convertible operand, got "+c.types.String(operand))
			return types.NoTypeID
		}
		return c.types.Builtins.Bool

	case ast.ExprUnaryBitNot:
		if !t.IsInteger() {
			c.errAt(diag.SemaInvalidUnaryOperand, span,
				"operator '~' needs an integer operand, got "+c.types.String(operand))
			return types.NoTypeID
		}
		return operand

	case ast.ExprUnaryDeref:
		if t.Kind != types.KindPointer {
			c.errAt(diag.SemaInvalidUnaryOperand, span,
				"cannot dereference "+c.types.String(operand))
			return types.NoTypeID
		}
		return t.Elem

	case ast.ExprUnaryAddr:
		return c.types.Pointer(operand)
	}
	return types.NoTypeID
}

func (c *Checker) resolveBinary(id ast.ExprID) types.TypeID {
	data, _ := c.builder.Exprs.Binary(id)
	left := c.TypeOf(data.Left)
	right := c.TypeOf(data.Right)
	if left == types.NoTypeID || right == types.NoTypeID {
		return types.NoTypeID
	}
	span := c.builder.Exprs.Get(id).Span

	switch data.Op {
	case ast.ExprBinaryAssign:
		if !c.checkAssignTarget(data.Left) {
			return types.NoTypeID
		}
		if c.types.Common(left, right) == types.NoTypeID {
			c.errAt(diag.SemaTypeMismatch, span,
				"cannot assign "+c.types.String(right)+" to "+c.types.String(left))
			return types.NoTypeID
		}
		return left

	case ast.ExprBinaryLogicalAnd, ast.ExprBinaryLogicalOr:
		if !c.types.BooleanConvertible(left) || !c.types.BooleanConvertible(right) {
			c.errAt(diag.SemaInvalidBinaryOperands, span,
				"operator '"+data.Op.String()+"' needs boolean-convertible operands, got "+
					c.types.String(left)+" and "+c.types.String(right))
			return types.NoTypeID
		}
		return c.types.Builtins.Bool

	case ast.ExprBinaryEq, ast.ExprBinaryNotEq,
		ast.ExprBinaryLess, ast.ExprBinaryLessEq,
		ast.ExprBinaryGreater, ast.ExprBinaryGreaterEq:
		if c.types.Common(left, right) == types.NoTypeID {
			c.errAt(diag.SemaInvalidBinaryOperands, span,
				"cannot compare "+c.types.String(left)+" with "+c.types.String(right))
			return types.NoTypeID
		}
		return c.types.Builtins.Bool

	case ast.ExprBinaryShiftLeft, ast.ExprBinaryShiftRight:
		lt, rt := c.types.Lookup(left), c.types.Lookup(right)
		if !lt.IsInteger() || !rt.IsInteger() {
			c.errAt(diag.SemaInvalidBinaryOperands, span,
				"shift needs integer operands, got "+
					c.types.String(left)+" and "+c.types.String(right))
			return types.NoTypeID
		}
		return left

	case ast.ExprBinaryBitAnd, ast.ExprBinaryBitOr, ast.ExprBinaryBitXor:
		lt, rt := c.types.Lookup(left), c.types.Lookup(right)
		if !lt.IsInteger() || !rt.IsInteger() {
			c.errAt(diag.SemaInvalidBinaryOperands, span,
				"operator '"+data.Op.String()+"' needs integer operands, got "+
					c.types.String(left)+" and "+c.types.String(right))
			return types.NoTypeID
		}
		return c.mustCommon(left, right, span)

	default: // + - * / %
		lt, rt := c.types.Lookup(left), c.types.Lookup(right)
		if !lt.IsNumeric() || !rt.IsNumeric() {
			c.errAt(diag.SemaInvalidBinaryOperands, span,
				"operator '"+data.Op.String()+"' needs numeric operands, got "+
					c.types.String(left)+" and "+c.types.String(right))
			return types.NoTypeID
		}
		return c.mustCommon(left, right, span)
	}
}

// checkAssignTarget enforces that the left side of '<-' is writable: an
// identifier, a dereference, an index or a member access. Grouping parens
// are transparent; const symbols are rejected.
func (c *Checker) checkAssignTarget(id ast.ExprID) bool {
	target := c.builder.Exprs.Unwrap(id)
	node := c.builder.Exprs.Get(target)

	switch node.Kind {
	case ast.ExprIdent:
		data, _ := c.builder.Exprs.Ident(target)
		if sym, declared := c.symbols[data.Name]; declared && sym.Const {
			c.errAt(diag.SemaAssignToConst, node.Span,
				"cannot assign to const \""+c.builder.StringOf(data.Name)+"\"")
			return false
		}
		return true

	case ast.ExprUnary:
		data, _ := c.builder.Exprs.Unary(target)
		if data.Op == ast.ExprUnaryDeref {
			return true
		}

	case ast.ExprIndex, ast.ExprMember:
		return true
	}

	c.errAt(diag.SemaInvalidBinaryOperands, node.Span,
		"left side of '<-' is not assignable")
	return false
}

func (c *Checker) mustCommon(left, right types.TypeID, span source.Span) types.TypeID {
	common := c.types.Common(left, right)
	if common == types.NoTypeID {
		c.errAt(diag.SemaInvalidBinaryOperands, span,
			"no common type for "+c.types.String(left)+" and "+c.types.String(right))
	}
	return common
}
