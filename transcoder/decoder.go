package transcoder

import (
	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/transcoder/internal/binary"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

// Decoder reads ABI binary data into generic JSON values.
type Decoder struct {
	opts Options
}

// NewDecoder returns a Decoder using opts.
func NewDecoder(opts Options) *Decoder {
	return &Decoder{opts: opts.normalized()}
}

// Decode deserializes data as ct. The whole input must be consumed.
func (d *Decoder) Decode(ct *CompiledType, data []byte) (any, error) {
	r := binary.NewReader(data)
	v, err := d.decode(r, ct, nil, 0)
	if err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			AbiType(ct.Name).
			Detail("%d trailing bytes after position %d", r.Remaining(), r.Position()).
			Build()
	}
	return v, nil
}

func (d *Decoder) decode(r *binary.Reader, ct *CompiledType, path []string, depth int) (any, error) {
	if depth > d.opts.MaxDepth {
		return nil, errors.New(errors.PhaseDecode, errors.KindRecursionLimit).
			Path(path...).
			AbiType(ct.Name).
			Detail("nesting exceeds %d levels", d.opts.MaxDepth).
			Build()
	}

	switch ct.Kind {
	case types.KindStruct:
		return d.decodeStruct(r, ct, path, depth)
	case types.KindVariant:
		return d.decodeVariant(r, ct, path, depth)
	case types.KindArray:
		return d.decodeArray(r, ct, path, depth)
	case types.KindOptional:
		present, err := readBool(r, path, ct.Name, d.opts)
		if err != nil {
			return nil, err
		}
		if !present {
			return nil, nil
		}
		return d.decode(r, ct.Elem, path, depth+1)
	case types.KindExtension:
		if r.Remaining() == 0 {
			return nil, nil
		}
		return d.decode(r, ct.Elem, path, depth)
	}
	return decodeBuiltin(r, ct, path, d.opts)
}

// decodeStruct emits fields in wire order. An extension field is absent when
// the input is exhausted at its position.
func (d *Decoder) decodeStruct(r *binary.Reader, ct *CompiledType, path []string, depth int) (any, error) {
	obj := make(Object, 0, len(ct.Fields))
	for _, f := range ct.Fields {
		if f.Type.IsExtension() && r.Remaining() == 0 {
			continue
		}
		v, err := d.decode(r, f.Type, appendPath(path, f.Name), depth+1)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Entry{Key: f.Name, Value: v})
	}
	return obj, nil
}

func (d *Decoder) decodeVariant(r *binary.Reader, ct *CompiledType, path []string, depth int) (any, error) {
	idx, err := r.ReadVarUint32()
	if err != nil {
		return nil, readErr(err, path, ct.Name)
	}
	if int64(idx) >= int64(len(ct.Members)) {
		e := errors.InvalidDiscriminant(errors.PhaseDecode, path, idx, len(ct.Members))
		e.AbiType = ct.Name
		return nil, e
	}
	m := ct.Members[idx]
	v, err := d.decode(r, m.Type, path, depth+1)
	if err != nil {
		return nil, err
	}
	return []any{m.Name, v}, nil
}

func (d *Decoder) decodeArray(r *binary.Reader, ct *CompiledType, path []string, depth int) (any, error) {
	n, err := r.ReadLength(ct.Elem.MinSize())
	if err != nil {
		return nil, readErr(err, path, ct.Name)
	}
	items := make([]any, 0, min(n, r.Remaining()+1))
	for i := 0; i < n; i++ {
		v, err := d.decode(r, ct.Elem, indexElem(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

