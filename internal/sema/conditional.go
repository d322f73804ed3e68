package sema

import (
	"cnext/internal/ast"
	"cnext/internal/diag"
	"cnext/internal/types"
)

// resolveConditional types a conditional expression. The condition must be
// boolean convertible; the result type is the common type of the two
// branches per the promotion lattice, with null unifying against a pointer
// branch.
func (c *Checker) resolveConditional(id ast.ExprID) types.TypeID {
	data, _ := c.builder.Exprs.Conditional(id)

	condType := c.TypeOf(data.Cond)
	trueType := c.TypeOf(data.TrueExpr)
	falseType := c.TypeOf(data.FalseExpr)

	if condType != types.NoTypeID && !c.types.BooleanConvertible(condType) {
		c.errAt(diag.SemaInvalidBoolContext, c.builder.Exprs.Get(data.Cond).Span,
			"condition must be boolean convertible, got "+c.types.String(condType))
		return types.NoTypeID
	}

	// a branch that failed to type already produced its diagnostic
	if trueType == types.NoTypeID || falseType == types.NoTypeID {
		return types.NoTypeID
	}

	common := c.types.Common(trueType, falseType)
	if common == types.NoTypeID {
		c.errAt(diag.SemaTypeMismatch, c.builder.Exprs.Get(id).Span,
			"incompatible branch types: "+c.types.String(trueType)+" vs "+c.types.String(falseType))
		return types.NoTypeID
	}
	return common
}
