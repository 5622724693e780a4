package transcoder

import (
	"errors"
	"testing"

	"github.com/wippyai/abieos/abi"
	abierrors "github.com/wippyai/abieos/errors"
)

func defWith(types []abi.TypeDef, structs []abi.StructDef, variants []abi.VariantDef) *abi.Def {
	return &abi.Def{
		Version:  "eosio::abi/1.1",
		Types:    types,
		Structs:  structs,
		Variants: variants,
	}
}

func TestCompilerResolve(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())
	c := tr.Compiler()

	tests := []struct {
		expr string
		kind TypeKind
	}{
		{"uint64", KindUint64},
		{"account_name", KindName},
		{"opt_int", KindOptional},
		{"opt_list", KindArray},
		{"derived", KindStruct},
		{"num_or_str", KindVariant},
		{"node[]", KindArray},
		{"derived?", KindOptional},
		{"string$", KindExtension},
		{"int8?$", KindExtension},
		{"opt_int[]", KindArray},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			ct, err := c.Resolve(tt.expr)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.expr, err)
			}
			if ct.Kind != tt.kind {
				t.Errorf("Resolve(%q).Kind = %v, want %v", tt.expr, ct.Kind, tt.kind)
			}
		})
	}

	derived, _ := c.Resolve("derived")
	if len(derived.Fields) != 2 || derived.Fields[0].Name != "id" || derived.Fields[1].Name != "label" {
		t.Errorf("derived fields = %+v, want id then label", derived.Fields)
	}
	if derived.Base != "base_s" {
		t.Errorf("derived.Base = %q", derived.Base)
	}

	node, _ := c.Resolve("node")
	if node.Fields[1].Type.Elem != node {
		t.Error("node[] element should be the node type itself")
	}

	a, _ := c.Resolve("account_name")
	n, _ := c.Resolve("name")
	if a.Kind != n.Kind {
		t.Error("alias should resolve to its target")
	}

	again, _ := c.Resolve("node[]")
	first, _ := c.Resolve("node[]")
	if again != first {
		t.Error("Resolve should cache compiled types")
	}
}

func TestCompilerResolveErrors(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())
	c := tr.Compiler()

	tests := []struct {
		expr string
		want error
	}{
		{"nope", abierrors.ErrUnknownType},
		{"nope[]", abierrors.ErrUnknownType},
		{"", abierrors.ErrUnknownType},
		{"[]", abierrors.ErrUnknownType},
		{"int8?[]", abierrors.ErrInvalidNesting},
		{"int8[]?", abierrors.ErrInvalidNesting},
		{"int8??", abierrors.ErrInvalidNesting},
		{"int8[][]", abierrors.ErrInvalidNesting},
		{"int8$?", abierrors.ErrInvalidNesting},
		{"int8$$", abierrors.ErrInvalidNesting},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := c.Resolve(tt.expr)
			if !errors.Is(err, tt.want) {
				t.Errorf("Resolve(%q) error = %v, want %v", tt.expr, err, tt.want)
			}
		})
	}

	// a failed resolution leaves nothing half-built behind
	if _, err := c.Resolve("nope"); !errors.Is(err, abierrors.ErrUnknownType) {
		t.Errorf("second Resolve(nope) error = %v", err)
	}
}

func TestNewCompilerErrors(t *testing.T) {
	tests := []struct {
		name string
		def  *abi.Def
		want error
	}{
		{
			name: "alias cycle",
			def: defWith([]abi.TypeDef{
				{NewTypeName: "a", Type: "b"},
				{NewTypeName: "b", Type: "a"},
			}, nil, nil),
			want: abierrors.ErrAliasCycle,
		},
		{
			name: "self alias",
			def:  defWith([]abi.TypeDef{{NewTypeName: "a", Type: "a"}}, nil, nil),
			want: abierrors.ErrAliasCycle,
		},
		{
			name: "alias through array",
			def:  defWith([]abi.TypeDef{{NewTypeName: "a", Type: "a[]"}}, nil, nil),
			want: abierrors.ErrAliasCycle,
		},
		{
			name: "dangling alias",
			def:  defWith([]abi.TypeDef{{NewTypeName: "a", Type: "missing"}}, nil, nil),
			want: abierrors.ErrUnknownType,
		},
		{
			name: "unknown field type",
			def: defWith(nil, []abi.StructDef{
				{Name: "s", Fields: []abi.FieldDef{{Name: "f", Type: "missing"}}},
			}, nil),
			want: abierrors.ErrUnknownType,
		},
		{
			name: "field after extension",
			def: defWith(nil, []abi.StructDef{
				{Name: "s", Fields: []abi.FieldDef{
					{Name: "a", Type: "uint8$"},
					{Name: "b", Type: "uint8"},
				}},
			}, nil),
			want: abierrors.ErrAbiParse,
		},
		{
			name: "extension in base then plain field",
			def: defWith(nil, []abi.StructDef{
				{Name: "b", Fields: []abi.FieldDef{{Name: "x", Type: "uint8$"}}},
				{Name: "d", Base: "b", Fields: []abi.FieldDef{{Name: "y", Type: "uint8"}}},
			}, nil),
			want: abierrors.ErrAbiParse,
		},
		{
			name: "base cycle",
			def: defWith(nil, []abi.StructDef{
				{Name: "x", Base: "y"},
				{Name: "y", Base: "x"},
			}, nil),
			want: abierrors.ErrAbiParse,
		},
		{
			name: "builtin redefined",
			def:  defWith([]abi.TypeDef{{NewTypeName: "asset", Type: "string"}}, nil, nil),
			want: abierrors.ErrAbiParse,
		},
		{
			name: "invalid nesting in struct",
			def: defWith(nil, []abi.StructDef{
				{Name: "s", Fields: []abi.FieldDef{{Name: "f", Type: "int8?[]"}}},
			}, nil),
			want: abierrors.ErrInvalidNesting,
		},
		{
			name: "unknown variant member",
			def:  defWith(nil, nil, []abi.VariantDef{{Name: "v", Types: []string{"int8", "missing"}}}),
			want: abierrors.ErrUnknownType,
		},
		{
			name: "alias chain too long",
			def: func() *abi.Def {
				var typedefs []abi.TypeDef
				for i := 0; i < 40; i++ {
					typedefs = append(typedefs, abi.TypeDef{
						NewTypeName: aliasName(i),
						Type:        aliasName(i + 1),
					})
				}
				typedefs = append(typedefs, abi.TypeDef{NewTypeName: aliasName(40), Type: "uint8"})
				return defWith(typedefs, nil, nil)
			}(),
			want: abierrors.ErrAliasCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler(tt.def, DefaultOptions())
			if !errors.Is(err, tt.want) {
				t.Errorf("NewCompiler error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, abierrors.ErrAbiParse) {
				t.Errorf("registration failures should be abi_parse: %v", err)
			}
		})
	}
}

func aliasName(i int) string {
	return "t" + string(rune('a'+i/26)) + string(rune('a'+i%26))
}

func TestAliasChainWithinLimit(t *testing.T) {
	var typedefs []abi.TypeDef
	for i := 0; i < 10; i++ {
		typedefs = append(typedefs, abi.TypeDef{NewTypeName: aliasName(i), Type: aliasName(i + 1)})
	}
	typedefs = append(typedefs, abi.TypeDef{NewTypeName: aliasName(10), Type: "uint8"})

	c, err := NewCompiler(defWith(typedefs, nil, nil), DefaultOptions())
	if err != nil {
		t.Fatalf("NewCompiler: %v", err)
	}
	ct, err := c.Resolve(aliasName(0))
	if err != nil || ct.Kind != KindUint8 {
		t.Errorf("Resolve(%s) = %v, %v", aliasName(0), ct, err)
	}
}
