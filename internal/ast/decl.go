package ast

import (
	"cnext/internal/source"
)

// DeclData is a file-level variable declaration:
//
//	[const] TypeName '*'* name [ '<-' expr ] ';'
type DeclData struct {
	Const    bool
	TypeName source.StringID
	// Stars is the pointer depth: i32** has Stars == 2.
	Stars    uint8
	Name     source.StringID
	NameSpan source.Span
	// Value is the initializer, or NoExprID when the declaration has none.
	Value ExprID
	Span  source.Span
}

// Decls owns every declaration node of a build.
type Decls struct {
	nodes *Arena[DeclData]
}

func NewDecls(capHint uint) *Decls {
	return &Decls{nodes: NewArena[DeclData](capHint)}
}

func (d *Decls) New(data DeclData) DeclID {
	return DeclID(d.nodes.Allocate(data))
}

func (d *Decls) Get(id DeclID) *DeclData {
	return d.nodes.Get(uint32(id))
}

func (d *Decls) Len() uint32 {
	return d.nodes.Len()
}
