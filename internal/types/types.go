package types

import (
	"fmt"
	"strings"
)

// TypeID indexes the interner's arena. 1-based; 0 is invalid.
type TypeID uint32

const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind classifies C-Next types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	// KindInt covers the signed integer family i8..i64.
	KindInt
	// KindUint covers the unsigned integer family u8..u64.
	KindUint
	// KindFloat covers f32 and f64.
	KindFloat
	KindString
	KindPointer
	// KindNull is the type of the 'null' literal before it unifies with a
	// concrete pointer type.
	KindNull
)

// Type is one interned type. Width is the bit width for the numeric kinds
// (8, 16, 32, 64) and zero otherwise. Elem is set only for pointers.
type Type struct {
	Kind  Kind
	Width uint8
	Elem  TypeID
}

func MakeVoid() Type           { return Type{Kind: KindVoid} }
func MakeBool() Type           { return Type{Kind: KindBool} }
func MakeInt(width uint8) Type { return Type{Kind: KindInt, Width: width} }
func MakeUint(width uint8) Type {
	return Type{Kind: KindUint, Width: width}
}
func MakeFloat(width uint8) Type {
	return Type{Kind: KindFloat, Width: width}
}
func MakeString() Type            { return Type{Kind: KindString} }
func MakePointer(elem TypeID) Type { return Type{Kind: KindPointer, Elem: elem} }
func MakeNull() Type              { return Type{Kind: KindNull} }

// IsNumeric reports whether t is an integer or float type.
func (t Type) IsNumeric() bool {
	return t.Kind == KindInt || t.Kind == KindUint || t.Kind == KindFloat
}

// IsInteger reports whether t is a signed or unsigned integer type.
func (t Type) IsInteger() bool {
	return t.Kind == KindInt || t.Kind == KindUint
}

// String renders the C-Next spelling: i32, u8, f64, bool, string, i32*,
// null, void.
func (i *Interner) String(id TypeID) string {
	t := i.Lookup(id)
	if t == nil {
		return "<invalid>"
	}
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return fmt.Sprintf("i%d", t.Width)
	case KindUint:
		return fmt.Sprintf("u%d", t.Width)
	case KindFloat:
		return fmt.Sprintf("f%d", t.Width)
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindPointer:
		var sb strings.Builder
		elem := id
		depth := 0
		for {
			pt := i.Lookup(elem)
			if pt == nil || pt.Kind != KindPointer {
				break
			}
			depth++
			elem = pt.Elem
		}
		sb.WriteString(i.String(elem))
		sb.WriteString(strings.Repeat("*", depth))
		return sb.String()
	}
	return "<invalid>"
}

// CName renders the portable C spelling: int32_t, uint8_t, double, bool,
// const char*, int32_t*.
func (i *Interner) CName(id TypeID) string {
	t := i.Lookup(id)
	if t == nil {
		return "void"
	}
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return fmt.Sprintf("int%d_t", t.Width)
	case KindUint:
		return fmt.Sprintf("uint%d_t", t.Width)
	case KindFloat:
		if t.Width == 32 {
			return "float"
		}
		return "double"
	case KindString:
		return "const char*"
	case KindNull:
		return "void*"
	case KindPointer:
		return i.CName(t.Elem) + "*"
	}
	return "void"
}
