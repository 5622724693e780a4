package types

// CompiledType is a resolved type expression. Exactly one shape applies,
// selected by Kind: builtins carry nothing else; KindStruct carries the
// flattened Fields (base fields first); KindVariant carries Members; the
// modifiers KindArray, KindOptional and KindExtension carry Elem.
type CompiledType struct {
	Elem    *CompiledType
	Name    string
	Fields  []Field
	Members []Member
	Kind    Kind
	// Base is the declared base struct name; its fields are already in Fields.
	Base string
}

// Field is one flattened struct member.
type Field struct {
	Type *CompiledType
	Name string
}

// Member is one variant alternative; its position in Members is the wire tag.
type Member struct {
	Type *CompiledType
	Name string
}

// IsBuiltin reports whether the type is a named builtin.
func (ct *CompiledType) IsBuiltin() bool {
	return ct.Kind.IsBuiltin()
}

// IsExtension reports whether a struct field of this type may be omitted at
// the tail of a struct.
func (ct *CompiledType) IsExtension() bool {
	return ct.Kind == KindExtension
}

// MemberIndex returns the position of the variant member with the given
// type name, or -1.
func (ct *CompiledType) MemberIndex(name string) int {
	for i, m := range ct.Members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// MinSize returns the smallest possible wire size of a value of this type.
// Recursive struct references count as zero.
func (ct *CompiledType) MinSize() int {
	return ct.minSize(map[*CompiledType]bool{})
}

func (ct *CompiledType) minSize(seen map[*CompiledType]bool) int {
	switch ct.Kind {
	case KindStruct:
		if seen[ct] {
			return 0
		}
		seen[ct] = true
		total := 0
		for _, f := range ct.Fields {
			total += f.Type.minSize(seen)
		}
		delete(seen, ct)
		return total
	case KindExtension:
		return 0
	}
	return ct.Kind.MinSize()
}
