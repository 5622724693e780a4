package transcoder

import (
	"encoding/json"
	"sync"

	"github.com/wippyai/abieos/abi"
	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/transcoder/internal/coerce"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

var (
	metaOnce sync.Once
	meta     *Transcoder
	metaErr  error
)

// Meta returns the transcoder for ABI documents themselves.
func Meta() (*Transcoder, error) {
	metaOnce.Do(func() {
		meta, metaErr = New(abi.Meta(), DefaultOptions())
	})
	return meta, metaErr
}

func abiParseErr(cause error, detail string) error {
	return errors.New(errors.PhaseParse, errors.KindAbiParse).
		Detail("%s", detail).
		Cause(cause).
		Build()
}

// EncodeABIJSON serializes an ABI document from JSON text. Missing or null
// string and array members default to "" and [], and the variants and
// action_results sections are always written.
func EncodeABIJSON(text []byte) ([]byte, error) {
	m, err := Meta()
	if err != nil {
		return nil, err
	}
	root, err := m.Resolve(abi.MetaRoot)
	if err != nil {
		return nil, err
	}

	v, err := ParseJSON(text)
	if err != nil {
		return nil, abiParseErr(err, "parse ABI JSON")
	}
	if !isObject(v) {
		return nil, abiParseErr(errors.TypeMismatch(errors.PhaseEncode, nil, abi.MetaRoot, coerce.TypeName(v)), "ABI JSON must be an object")
	}

	data, err := m.enc.Encode(root, fillDefaults(root, v))
	if err != nil {
		return nil, abiParseErr(err, "encode ABI")
	}
	return data, nil
}

// fillDefaults returns a copy of value with absent string and array fields
// of every struct set to their zero values.
func fillDefaults(ct *CompiledType, value any) any {
	switch ct.Kind {
	case types.KindStruct:
		obj, ok := value.(map[string]any)
		if !ok {
			return value
		}
		out := make(map[string]any, len(obj))
		for k, v := range obj {
			out[k] = v
		}
		for _, f := range ct.Fields {
			ft := f.Type
			if ft.IsExtension() {
				ft = ft.Elem
			}
			v, present := out[f.Name]
			if !present || v == nil {
				switch ft.Kind {
				case types.KindString:
					out[f.Name] = ""
				case types.KindArray:
					out[f.Name] = []any{}
				}
				continue
			}
			out[f.Name] = fillDefaults(ft, v)
		}
		return out
	case types.KindArray:
		items, ok := value.([]any)
		if !ok {
			return value
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = fillDefaults(ct.Elem, item)
		}
		return out
	}
	return value
}

// ParseABIBinary decodes and validates a binary ABI document.
func ParseABIBinary(data []byte) (*abi.Def, error) {
	_, def, err := decodeABI(data)
	return def, err
}

func decodeABI(data []byte) (any, *abi.Def, error) {
	m, err := Meta()
	if err != nil {
		return nil, nil, err
	}
	v, err := m.Decode(abi.MetaRoot, data)
	if err != nil {
		return nil, nil, abiParseErr(err, "decode ABI binary")
	}
	text, err := MarshalJSON(v)
	if err != nil {
		return nil, nil, abiParseErr(err, "render ABI")
	}

	var def abi.Def
	if err := json.Unmarshal(text, &def); err != nil {
		return nil, nil, abiParseErr(err, "load ABI")
	}
	if err := def.Validate(); err != nil {
		return nil, nil, err
	}
	return v, &def, nil
}

// ParseABIJSON loads and validates a JSON ABI document.
func ParseABIJSON(text []byte) (*abi.Def, error) {
	data, err := EncodeABIJSON(text)
	if err != nil {
		return nil, err
	}
	return ParseABIBinary(data)
}

// EncodeABI serializes a document to its binary form.
func EncodeABI(def *abi.Def) ([]byte, error) {
	text, err := json.Marshal(def)
	if err != nil {
		return nil, abiParseErr(err, "marshal ABI")
	}
	return EncodeABIJSON(text)
}

// ABIJSONToBinary converts a JSON ABI document to binary, validating it.
func ABIJSONToBinary(text []byte) ([]byte, error) {
	data, err := EncodeABIJSON(text)
	if err != nil {
		return nil, err
	}
	if _, err := ParseABIBinary(data); err != nil {
		return nil, err
	}
	return data, nil
}

// ABIBinaryToJSON converts a binary ABI document to compact JSON.
func ABIBinaryToJSON(data []byte) ([]byte, error) {
	v, _, err := decodeABI(data)
	if err != nil {
		return nil, err
	}
	return MarshalJSON(v)
}
