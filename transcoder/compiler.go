package transcoder

import (
	"fmt"
	"strings"
	"sync"

	"github.com/wippyai/abieos/abi"
	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

// Compiler resolves type expressions against one ABI document and caches the
// results. A Compiler is safe for concurrent use.
type Compiler struct {
	def      *abi.Def
	aliases  map[string]string
	structs  map[string]*abi.StructDef
	variants map[string]*abi.VariantDef
	cache    sync.Map // type expression -> *CompiledType
	mu       sync.Mutex
	opts     Options
}

// NewCompiler validates def and resolves every type it declares or binds, so
// that dangling references fail here rather than on first use.
func NewCompiler(def *abi.Def, opts Options) (*Compiler, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	c := &Compiler{
		def:      def,
		aliases:  make(map[string]string, len(def.Types)),
		structs:  make(map[string]*abi.StructDef, len(def.Structs)),
		variants: make(map[string]*abi.VariantDef, len(def.Variants)),
		opts:     opts.normalized(),
	}

	for i := range def.Types {
		t := &def.Types[i]
		if err := checkNotBuiltin(indexPath("types", i), t.NewTypeName); err != nil {
			return nil, err
		}
		c.aliases[t.NewTypeName] = t.Type
	}
	for i := range def.Structs {
		s := &def.Structs[i]
		if err := checkNotBuiltin(indexPath("structs", i), s.Name); err != nil {
			return nil, err
		}
		c.structs[s.Name] = s
	}
	for i := range def.Variants {
		v := &def.Variants[i]
		if err := checkNotBuiltin(indexPath("variants", i), v.Name); err != nil {
			return nil, err
		}
		c.variants[v.Name] = v
	}

	check := func(path []string, typeExpr string) error {
		if _, err := c.Resolve(typeExpr); err != nil {
			return errors.New(errors.PhaseParse, errors.KindAbiParse).
				Path(path...).
				AbiType(typeExpr).
				Detail("cannot resolve type").
				Cause(err).
				Build()
		}
		return nil
	}
	for i, t := range def.Types {
		if err := check(indexPath("types", i), t.NewTypeName); err != nil {
			return nil, err
		}
	}
	for i, s := range def.Structs {
		if err := check(indexPath("structs", i), s.Name); err != nil {
			return nil, err
		}
	}
	for i, v := range def.Variants {
		if err := check(indexPath("variants", i), v.Name); err != nil {
			return nil, err
		}
	}
	for i, a := range def.Actions {
		if err := check(indexPath("actions", i), a.Type); err != nil {
			return nil, err
		}
	}
	for i, t := range def.Tables {
		if err := check(indexPath("tables", i), t.Type); err != nil {
			return nil, err
		}
	}
	for i, r := range def.ActionResults {
		if err := check(indexPath("action_results", i), r.ResultType); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func checkNotBuiltin(path []string, typeName string) error {
	if _, ok := types.Builtin(typeName); ok {
		return errors.AbiParse(path, "%q redefines a builtin type", typeName)
	}
	return nil
}

// Def returns the ABI document the compiler resolves against.
func (c *Compiler) Def() *abi.Def {
	return c.def
}

// Options returns the compiler's normalized options.
func (c *Compiler) Options() Options {
	return c.opts
}

// Resolve compiles a type expression. Results are cached per expression.
func (c *Compiler) Resolve(typeExpr string) (*CompiledType, error) {
	if cached, ok := c.cache.Load(typeExpr); ok {
		return cached.(*CompiledType), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.cache.Load(typeExpr); ok {
		return cached.(*CompiledType), nil
	}

	r := &resolver{
		c:       c,
		local:   make(map[string]*CompiledType),
		aliases: make(map[string]bool),
	}
	ct, err := r.resolve(typeExpr, nil)
	if err != nil {
		return nil, err
	}

	// publish only complete resolutions
	for expr, t := range r.local {
		c.cache.Store(expr, t)
	}
	return ct, nil
}

// resolver holds the state of one Resolve call. Structs and variants are
// registered in local before their members are resolved, which lets a type
// refer to itself through an array or optional.
type resolver struct {
	c       *Compiler
	local   map[string]*CompiledType
	aliases map[string]bool // aliases currently being resolved
}

func (r *resolver) lookup(expr string) *CompiledType {
	if ct, ok := r.local[expr]; ok {
		return ct
	}
	if cached, ok := r.c.cache.Load(expr); ok {
		return cached.(*CompiledType)
	}
	return nil
}

func hasModifier(expr string) bool {
	return strings.HasSuffix(expr, "?") || strings.HasSuffix(expr, "[]") || strings.HasSuffix(expr, "$")
}

func (r *resolver) resolve(expr string, path []string) (*CompiledType, error) {
	if ct := r.lookup(expr); ct != nil {
		return ct, nil
	}

	switch {
	case strings.HasSuffix(expr, "$"):
		inner := expr[:len(expr)-1]
		if strings.HasSuffix(inner, "$") {
			return nil, invalidNesting(path, expr)
		}
		return r.modifier(expr, inner, types.KindExtension, path)
	case strings.HasSuffix(expr, "?"):
		inner := expr[:len(expr)-1]
		if hasModifier(inner) {
			return nil, invalidNesting(path, expr)
		}
		return r.modifier(expr, inner, types.KindOptional, path)
	case strings.HasSuffix(expr, "[]"):
		inner := expr[:len(expr)-2]
		if hasModifier(inner) {
			return nil, invalidNesting(path, expr)
		}
		return r.modifier(expr, inner, types.KindArray, path)
	}

	return r.named(expr, path)
}

func invalidNesting(path []string, expr string) error {
	return errors.New(errors.PhaseResolve, errors.KindInvalidNesting).
		Path(path...).
		AbiType(expr).
		Detail("modifier cannot directly wrap another modifier").
		Build()
}

func (r *resolver) modifier(expr, inner string, kind types.Kind, path []string) (*CompiledType, error) {
	if inner == "" {
		return nil, errors.UnknownType(path, expr)
	}
	elem, err := r.resolve(inner, path)
	if err != nil {
		return nil, err
	}
	ct := &CompiledType{Name: expr, Kind: kind, Elem: elem}
	r.local[expr] = ct
	return ct, nil
}

func (r *resolver) named(typeName string, path []string) (*CompiledType, error) {
	if kind, ok := types.Builtin(typeName); ok {
		ct := &CompiledType{Name: typeName, Kind: kind}
		r.local[typeName] = ct
		return ct, nil
	}
	if _, ok := r.c.aliases[typeName]; ok {
		return r.alias(typeName, path)
	}
	if s, ok := r.c.structs[typeName]; ok {
		return r.structType(s, path)
	}
	if v, ok := r.c.variants[typeName]; ok {
		return r.variant(v, path)
	}
	return nil, errors.UnknownType(path, typeName)
}

// alias follows a chain of aliases to its first non-alias target. The alias
// shares the target's compiled type.
func (r *resolver) alias(typeName string, path []string) (*CompiledType, error) {
	if r.aliases[typeName] {
		return nil, errors.AliasCycle(path, typeName, []string{typeName, "...", typeName})
	}

	chain := []string{typeName}
	target := r.c.aliases[typeName]
	for {
		for _, seen := range chain {
			if seen == target {
				return nil, errors.AliasCycle(path, typeName, append(chain, target))
			}
		}
		if len(chain) >= r.c.opts.MaxDepth {
			return nil, errors.New(errors.PhaseResolve, errors.KindAliasCycle).
				Path(path...).
				AbiType(typeName).
				Detail("alias chain exceeds %d links", r.c.opts.MaxDepth).
				Build()
		}
		next, isAlias := r.c.aliases[target]
		if !isAlias {
			break
		}
		chain = append(chain, target)
		target = next
	}

	for _, a := range chain {
		r.aliases[a] = true
	}
	ct, err := r.resolve(target, path)
	for _, a := range chain {
		delete(r.aliases, a)
	}
	if err != nil {
		return nil, err
	}

	for _, a := range chain {
		r.local[a] = ct
	}
	return ct, nil
}

// structType flattens the base chain so base fields come first.
func (r *resolver) structType(s *abi.StructDef, path []string) (*CompiledType, error) {
	ct := &CompiledType{Name: s.Name, Kind: types.KindStruct, Base: s.Base}
	r.local[s.Name] = ct

	var chain []*abi.StructDef
	seen := make(map[string]bool)
	for cur := s; ; {
		if seen[cur.Name] {
			return nil, errors.AbiParse(path, "struct %q has a cyclic base chain", s.Name)
		}
		seen[cur.Name] = true
		chain = append(chain, cur)
		if cur.Base == "" {
			break
		}
		next, ok := r.c.structs[cur.Base]
		if !ok {
			return nil, errors.AbiParse(path, "struct %q has base %q which is not a struct", cur.Name, cur.Base)
		}
		cur = next
	}

	for i := len(chain) - 1; i >= 0; i-- {
		def := chain[i]
		for _, f := range def.Fields {
			ft, err := r.resolve(f.Type, appendPath(path, def.Name, f.Name))
			if err != nil {
				return nil, err
			}
			ct.Fields = append(ct.Fields, CompiledField{Name: f.Name, Type: ft})
		}
	}

	extension := ""
	for _, f := range ct.Fields {
		if f.Type.IsExtension() {
			extension = f.Name
			continue
		}
		if extension != "" {
			return nil, errors.AbiParse(appendPath(path, s.Name, f.Name),
				"field %q follows binary extension field %q", f.Name, extension)
		}
	}

	return ct, nil
}

func (r *resolver) variant(v *abi.VariantDef, path []string) (*CompiledType, error) {
	ct := &CompiledType{Name: v.Name, Kind: types.KindVariant}
	r.local[v.Name] = ct

	for _, member := range v.Types {
		mt, err := r.resolve(member, appendPath(path, v.Name))
		if err != nil {
			return nil, err
		}
		ct.Members = append(ct.Members, CompiledMember{Name: member, Type: mt})
	}
	return ct, nil
}

func appendPath(path []string, elems ...string) []string {
	out := make([]string, 0, len(path)+len(elems))
	out = append(out, path...)
	return append(out, elems...)
}

func indexPath(section string, i int) []string {
	return []string{fmt.Sprintf("%s[%d]", section, i)}
}

// indexElem appends an element index to the last path segment.
func indexElem(path []string, i int) []string {
	out := appendPath(path)
	if len(out) == 0 {
		return []string{fmt.Sprintf("[%d]", i)}
	}
	out[len(out)-1] = fmt.Sprintf("%s[%d]", out[len(out)-1], i)
	return out
}
