package cgen

import (
	"strings"

	"cnext/internal/ast"
)

// unitHeader is the preamble of every generated translation unit. stdint
// gives the sized integers, stdbool the bool type, stddef NULL.
const unitHeader = `/* Generated by cnext. DO NOT EDIT. */
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>

`

// EmitUnit renders one checked file as a C translation unit.
func (e *Emitter) EmitUnit(fileID ast.FileID) string {
	var sb strings.Builder
	sb.WriteString(unitHeader)

	file := e.builder.Files.Get(fileID)
	if file == nil {
		return sb.String()
	}
	for _, declID := range file.Decls {
		e.writeDecl(&sb, declID)
	}
	return sb.String()
}

func (e *Emitter) writeDecl(sb *strings.Builder, declID ast.DeclID) {
	decl := e.builder.Decls.Get(declID)
	sym, declared := e.symbols[decl.Name]
	if !declared || sym.Decl != declID {
		// declarations sema rejected are dropped from the output
		return
	}

	if decl.Const {
		sb.WriteString("const ")
	}
	sb.WriteString(e.types.CName(sym.Type))
	sb.WriteByte(' ')
	sb.WriteString(e.builder.StringOf(decl.Name))
	if decl.Value.IsValid() {
		sb.WriteString(" = ")
		e.writeExpr(sb, decl.Value)
	}
	sb.WriteString(";\n")
}
