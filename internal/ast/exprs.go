package ast

import (
	"cnext/internal/source"
)

// Exprs owns every expression node of a build, plus one payload arena per
// expression kind. Constructors allocate the payload first, then the node,
// and return the node's ExprID.
type Exprs struct {
	nodes *Arena[Expr]

	identData       *Arena[ExprIdentData]
	literalData     *Arena[ExprLiteralData]
	unaryData       *Arena[ExprUnaryData]
	binaryData      *Arena[ExprBinaryData]
	groupData       *Arena[ExprGroupData]
	callData        *Arena[ExprCallData]
	indexData       *Arena[ExprIndexData]
	memberData      *Arena[ExprMemberData]
	conditionalData *Arena[ExprConditionalData]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		nodes: NewArena[Expr](capHint),

		identData:       NewArena[ExprIdentData](capHint / 2),
		literalData:     NewArena[ExprLiteralData](capHint / 2),
		unaryData:       NewArena[ExprUnaryData](capHint / 8),
		binaryData:      NewArena[ExprBinaryData](capHint / 4),
		groupData:       NewArena[ExprGroupData](capHint / 8),
		callData:        NewArena[ExprCallData](capHint / 8),
		indexData:       NewArena[ExprIndexData](capHint / 8),
		memberData:      NewArena[ExprMemberData](capHint / 8),
		conditionalData: NewArena[ExprConditionalData](capHint / 8),
	}
}

func (e *Exprs) newNode(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.nodes.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the node for id, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.nodes.Get(uint32(id))
}

func (e *Exprs) Len() uint32 {
	return e.nodes.Len()
}

// Constructors --------------------------------------------------------------

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := PayloadID(e.identData.Allocate(ExprIdentData{Name: name}))
	return e.newNode(ExprIdent, span, payload)
}

func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := PayloadID(e.literalData.Allocate(ExprLiteralData{Kind: kind, Value: value}))
	return e.newNode(ExprLit, span, payload)
}

func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := PayloadID(e.unaryData.Allocate(ExprUnaryData{Op: op, Operand: operand}))
	return e.newNode(ExprUnary, span, payload)
}

func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := PayloadID(e.binaryData.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
	return e.newNode(ExprBinary, span, payload)
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := PayloadID(e.groupData.Allocate(ExprGroupData{Inner: inner}))
	return e.newNode(ExprGroup, span, payload)
}

func (e *Exprs) NewCall(span source.Span, target ExprID, args []ExprID) ExprID {
	payload := PayloadID(e.callData.Allocate(ExprCallData{Target: target, Args: args}))
	return e.newNode(ExprCall, span, payload)
}

func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := PayloadID(e.indexData.Allocate(ExprIndexData{Target: target, Index: index}))
	return e.newNode(ExprIndex, span, payload)
}

func (e *Exprs) NewMember(span source.Span, target ExprID, field source.StringID) ExprID {
	payload := PayloadID(e.memberData.Allocate(ExprMemberData{Target: target, Field: field}))
	return e.newNode(ExprMember, span, payload)
}

func (e *Exprs) NewConditional(span source.Span, cond, trueExpr, falseExpr ExprID) ExprID {
	payload := PayloadID(e.conditionalData.Allocate(ExprConditionalData{
		Cond:      cond,
		TrueExpr:  trueExpr,
		FalseExpr: falseExpr,
	}))
	return e.newNode(ExprConditional, span, payload)
}

// Payload accessors ---------------------------------------------------------
//
// Each returns (data, true) when id is a node of the matching kind, and
// (nil, false) otherwise.

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprIdent {
		return nil, false
	}
	return e.identData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprLit {
		return nil, false
	}
	return e.literalData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprUnary {
		return nil, false
	}
	return e.unaryData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprBinary {
		return nil, false
	}
	return e.binaryData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprGroup {
		return nil, false
	}
	return e.groupData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprCall {
		return nil, false
	}
	return e.callData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprIndex {
		return nil, false
	}
	return e.indexData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprMember {
		return nil, false
	}
	return e.memberData.Get(uint32(node.Payload)), true
}

func (e *Exprs) Conditional(id ExprID) (*ExprConditionalData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprConditional {
		return nil, false
	}
	return e.conditionalData.Get(uint32(node.Payload)), true
}

// Unwrap strips grouping parens and returns the innermost expression.
func (e *Exprs) Unwrap(id ExprID) ExprID {
	for {
		group, ok := e.Group(id)
		if !ok {
			return id
		}
		id = group.Inner
	}
}
