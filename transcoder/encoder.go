package transcoder

import (
	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/transcoder/internal/binary"
	"github.com/wippyai/abieos/transcoder/internal/coerce"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

// Encoder writes generic JSON values in ABI binary form.
type Encoder struct {
	opts Options
}

// NewEncoder returns an Encoder using opts.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts.normalized()}
}

// Encode serializes value as ct. Struct fields are looked up by name, so
// input key order does not matter; unknown keys are ignored. An absent
// optional field is written as null.
func (e *Encoder) Encode(ct *CompiledType, value any) ([]byte, error) {
	w := binary.NewWriter()
	if err := e.encode(w, ct, value, nil, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (e *Encoder) encode(w *binary.Writer, ct *CompiledType, value any, path []string, depth int) error {
	if depth > e.opts.MaxDepth {
		return errors.New(errors.PhaseEncode, errors.KindRecursionLimit).
			Path(path...).
			AbiType(ct.Name).
			Detail("nesting exceeds %d levels", e.opts.MaxDepth).
			Build()
	}

	switch ct.Kind {
	case types.KindStruct:
		return e.encodeStruct(w, ct, value, path, depth)
	case types.KindVariant:
		return e.encodeVariant(w, ct, value, path, depth)
	case types.KindArray:
		return e.encodeArray(w, ct, value, path, depth)
	case types.KindOptional:
		if value == nil {
			w.Byte(0)
			return nil
		}
		w.Byte(1)
		return e.encode(w, ct.Elem, value, path, depth+1)
	case types.KindExtension:
		// a present extension value is written as its element type
		return e.encode(w, ct.Elem, value, path, depth)
	}
	return encodeBuiltin(w, ct, value, path)
}

func (e *Encoder) encodeStruct(w *binary.Writer, ct *CompiledType, value any, path []string, depth int) error {
	if !isObject(value) {
		return errors.TypeMismatch(errors.PhaseEncode, path, ct.Name, coerce.TypeName(value))
	}

	omitted := ""
	for _, f := range ct.Fields {
		fieldPath := appendPath(path, f.Name)
		v, present, _ := field(value, f.Name)

		if f.Type.IsExtension() {
			if !present {
				if omitted == "" {
					omitted = f.Name
				}
				continue
			}
			if omitted != "" {
				return errors.New(errors.PhaseEncode, errors.KindMissingField).
					Path(appendPath(path, omitted)...).
					AbiType(ct.Name).
					Detail("extension field %q is absent but later field %q is present", omitted, f.Name).
					Build()
			}
		} else if !present && f.Type.Kind != types.KindOptional {
			return errors.FieldMissing(errors.PhaseEncode, fieldPath, f.Name)
		}

		if err := e.encode(w, f.Type, v, fieldPath, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// encodeVariant accepts ["member_type", value] or a bare value, which is
// matched against the members in declaration order.
func (e *Encoder) encodeVariant(w *binary.Writer, ct *CompiledType, value any, path []string, depth int) error {
	if pair, ok := value.([]any); ok && len(pair) == 2 {
		if tag, ok := pair[0].(string); ok {
			if idx := ct.MemberIndex(tag); idx >= 0 {
				w.WriteVarUint32(uint32(idx))
				return e.encode(w, ct.Members[idx].Type, pair[1], path, depth+1)
			}
		}
	}

	mark := w.Len()
	for i, m := range ct.Members {
		w.WriteVarUint32(uint32(i))
		if err := e.encode(w, m.Type, value, path, depth+1); err == nil {
			return nil
		}
		w.Truncate(mark)
	}
	return errors.NoMatchingVariant(path, ct.Name)
}

func (e *Encoder) encodeArray(w *binary.Writer, ct *CompiledType, value any, path []string, depth int) error {
	items, ok := value.([]any)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, path, ct.Name, coerce.TypeName(value))
	}
	w.WriteVarUint32(uint32(len(items)))
	for i, item := range items {
		if err := e.encode(w, ct.Elem, item, indexElem(path, i), depth+1); err != nil {
			return err
		}
	}
	return nil
}
