package ast

import (
	"cnext/internal/source"
)

// File is one parsed source file: its full span and its top-level
// declarations in source order.
type File struct {
	Span  source.Span
	Decls []DeclID
}

// Files owns every parsed file of a build.
type Files struct {
	nodes *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{nodes: NewArena[File](capHint)}
}

func (f *Files) New(file File) FileID {
	return FileID(f.nodes.Allocate(file))
}

func (f *Files) Get(id FileID) *File {
	return f.nodes.Get(uint32(id))
}

func (f *Files) Len() uint32 {
	return f.nodes.Len()
}
