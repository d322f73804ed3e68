package ast

import (
	"cnext/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprCall represents a function call expression.
	ExprCall
	// ExprIndex represents an index expression.
	ExprIndex
	// ExprMember represents a member access expression.
	ExprMember
	// ExprConditional represents a conditional (ternary) expression.
	ExprConditional
)

// Expr is one expression node. Kind selects the payload arena, Payload the
// row inside it.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind classifies literal expressions.
type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitString
	ExprLitBool
	// ExprLitNull is the null pointer literal; its type unifies with any
	// pointer type.
	ExprLitNull
)

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod

	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor
	ExprBinaryShiftLeft
	ExprBinaryShiftRight

	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq

	// ExprBinaryAssign represents the C-Next assignment operator (<-).
	ExprBinaryAssign
)

// String returns the C spelling of a binary operator. Assignment maps to
// C's '=', everything else is spelled identically in both languages.
func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	case ExprBinaryMod:
		return "%"
	case ExprBinaryBitAnd:
		return "&"
	case ExprBinaryBitOr:
		return "|"
	case ExprBinaryBitXor:
		return "^"
	case ExprBinaryShiftLeft:
		return "<<"
	case ExprBinaryShiftRight:
		return ">>"
	case ExprBinaryLogicalAnd:
		return "&&"
	case ExprBinaryLogicalOr:
		return "||"
	case ExprBinaryEq:
		return "=="
	case ExprBinaryNotEq:
		return "!="
	case ExprBinaryLess:
		return "<"
	case ExprBinaryLessEq:
		return "<="
	case ExprBinaryGreater:
		return ">"
	case ExprBinaryGreaterEq:
		return ">="
	case ExprBinaryAssign:
		return "="
	}
	return "?op?"
}

// IsAssign reports whether the operator is the assignment operator.
func (op ExprBinaryOp) IsAssign() bool { return op == ExprBinaryAssign }

// ExprUnaryOp enumerates prefix unary operator kinds.
type ExprUnaryOp uint8

const (
	ExprUnaryPlus ExprUnaryOp = iota
	ExprUnaryMinus
	ExprUnaryNot
	ExprUnaryBitNot
	ExprUnaryDeref
	ExprUnaryAddr
)

// String returns the C spelling of a unary operator.
func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryPlus:
		return "+"
	case ExprUnaryMinus:
		return "-"
	case ExprUnaryNot:
		return "!"
	case ExprUnaryBitNot:
		return "~"
	case ExprUnaryDeref:
		return "*"
	case ExprUnaryAddr:
		return "&"
	}
	return "?op?"
}

// Payload rows --------------------------------------------------------------

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID // raw source text
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprGroupData struct {
	Inner ExprID
}

type ExprCallData struct {
	Target ExprID
	Args   []ExprID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprMemberData struct {
	Target ExprID
	Field  source.StringID
}

// ExprConditionalData is the payload of a conditional expression.
// FalseExpr may itself be a conditional: chains group to the right, so
// a ? b : c ? d : e parses as a ? b : (c ? d : e).
type ExprConditionalData struct {
	Cond      ExprID
	TrueExpr  ExprID
	FalseExpr ExprID
}
