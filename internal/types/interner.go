package types

// Interner deduplicates types: structurally equal types share one TypeID,
// so IDs compare with ==.
type Interner struct {
	arena []Type
	index map[Type]TypeID

	// Builtins are pre-interned so hot paths skip the map.
	Builtins Builtins
}

// Builtins holds the pre-interned primitive type IDs.
type Builtins struct {
	Void   TypeID
	Bool   TypeID
	I8     TypeID
	I16    TypeID
	I32    TypeID
	I64    TypeID
	U8     TypeID
	U16    TypeID
	U32    TypeID
	U64    TypeID
	F32    TypeID
	F64    TypeID
	String TypeID
	Null   TypeID
}

func NewInterner() *Interner {
	i := &Interner{
		arena: make([]Type, 0, 32),
		index: make(map[Type]TypeID, 32),
	}
	i.Builtins = Builtins{
		Void:   i.Intern(MakeVoid()),
		Bool:   i.Intern(MakeBool()),
		I8:     i.Intern(MakeInt(8)),
		I16:    i.Intern(MakeInt(16)),
		I32:    i.Intern(MakeInt(32)),
		I64:    i.Intern(MakeInt(64)),
		U8:     i.Intern(MakeUint(8)),
		U16:    i.Intern(MakeUint(16)),
		U32:    i.Intern(MakeUint(32)),
		U64:    i.Intern(MakeUint(64)),
		F32:    i.Intern(MakeFloat(32)),
		F64:    i.Intern(MakeFloat(64)),
		String: i.Intern(MakeString()),
		Null:   i.Intern(MakeNull()),
	}
	return i
}

// Intern returns the canonical ID for t, allocating on first sight.
func (i *Interner) Intern(t Type) TypeID {
	if id, ok := i.index[t]; ok {
		return id
	}
	i.arena = append(i.arena, t)
	id := TypeID(len(i.arena))
	i.index[t] = id
	return id
}

// Pointer interns a pointer to elem.
func (i *Interner) Pointer(elem TypeID) TypeID {
	return i.Intern(MakePointer(elem))
}

// Lookup returns the type for id, or nil for NoTypeID.
func (i *Interner) Lookup(id TypeID) *Type {
	if id == NoTypeID || int(id) > len(i.arena) {
		return nil
	}
	return &i.arena[id-1]
}

// ByName resolves a C-Next primitive type name, e.g. "i32" or "bool".
// Returns NoTypeID for unknown names.
func (i *Interner) ByName(name string) TypeID {
	switch name {
	case "void":
		return i.Builtins.Void
	case "bool":
		return i.Builtins.Bool
	case "i8":
		return i.Builtins.I8
	case "i16":
		return i.Builtins.I16
	case "i32":
		return i.Builtins.I32
	case "i64":
		return i.Builtins.I64
	case "u8":
		return i.Builtins.U8
	case "u16":
		return i.Builtins.U16
	case "u32":
		return i.Builtins.U32
	case "u64":
		return i.Builtins.U64
	case "f32":
		return i.Builtins.F32
	case "f64":
		return i.Builtins.F64
	case "string":
		return i.Builtins.String
	}
	return NoTypeID
}

func (i *Interner) Len() int { return len(i.arena) }
