package types

// BooleanConvertible reports whether a value of type id may be used where a
// truth value is needed: bool, any integer, or any pointer. Floats and
// strings are excluded on purpose; C would accept a float condition, but
// truncation-as-truthiness is a classic bug source.
func (i *Interner) BooleanConvertible(id TypeID) bool {
	t := i.Lookup(id)
	if t == nil {
		return false
	}
	switch t.Kind {
	case KindBool, KindInt, KindUint, KindPointer, KindNull:
		return true
	}
	return false
}

// Common computes the promoted type of two operands, or NoTypeID when no
// common type exists. The lattice:
//
//	T + T            -> T
//	int + int        -> wider width; on equal width signed+unsigned -> unsigned
//	int + float      -> the float
//	f32 + f64        -> f64
//	bool + integer   -> the integer
//	T* + null        -> T*
//	null + null      -> null
//
// Everything else is incompatible.
func (i *Interner) Common(a, b TypeID) TypeID {
	if a == b {
		return a
	}
	ta, tb := i.Lookup(a), i.Lookup(b)
	if ta == nil || tb == nil {
		return NoTypeID
	}

	// null unifies with any pointer
	if ta.Kind == KindNull && tb.Kind == KindPointer {
		return b
	}
	if tb.Kind == KindNull && ta.Kind == KindPointer {
		return a
	}

	// bool promotes to any integer
	if ta.Kind == KindBool && tb.IsInteger() {
		return b
	}
	if tb.Kind == KindBool && ta.IsInteger() {
		return a
	}

	// integer and float promote to the float
	if ta.IsInteger() && tb.Kind == KindFloat {
		return b
	}
	if tb.IsInteger() && ta.Kind == KindFloat {
		return a
	}

	if ta.Kind == KindFloat && tb.Kind == KindFloat {
		if ta.Width >= tb.Width {
			return a
		}
		return b
	}

	if ta.IsInteger() && tb.IsInteger() {
		return i.commonInteger(a, b, ta, tb)
	}

	return NoTypeID
}

func (i *Interner) commonInteger(a, b TypeID, ta, tb *Type) TypeID {
	if ta.Width > tb.Width {
		return a
	}
	if tb.Width > ta.Width {
		return b
	}
	// equal width, mixed signedness: unsigned wins, as in C's usual
	// arithmetic conversions
	if ta.Kind == KindUint {
		return a
	}
	return b
}
