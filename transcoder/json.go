package transcoder

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"sort"
	"strconv"

	"github.com/wippyai/abieos/errors"
)

// ParseJSON parses JSON text into generic values with numbers kept as
// json.Number. Anything after the first value is an error.
func ParseJSON(text []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.ParseFailed("JSON", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.PhaseInput, errors.KindInvalidData).
			Detail("parse JSON: unexpected data after top-level value").
			Build()
	}
	return v, nil
}

// MarshalJSON renders a decoded value as compact JSON. Struct fields keep
// their order and HTML characters are not escaped.
func MarshalJSON(v any) ([]byte, error) {
	return AppendJSON(nil, v)
}

// AppendJSON appends the compact JSON form of v to dst.
func AppendJSON(dst []byte, v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return append(dst, "null"...), nil
	case bool:
		return strconv.AppendBool(dst, val), nil
	case string:
		return appendString(dst, val), nil
	case json.Number:
		return append(dst, val...), nil
	case Object:
		dst = append(dst, '{')
		for i, e := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, e.Key)
			dst = append(dst, ':')
			var err error
			if dst, err = AppendJSON(dst, e.Value); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	case []any:
		dst = append(dst, '[')
		for i, item := range val {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = AppendJSON(dst, item); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := make(Object, len(keys))
		for i, k := range keys {
			obj[i] = Entry{Key: k, Value: val[k]}
		}
		return AppendJSON(dst, obj)
	case *big.Int:
		return appendString(dst, val.String()), nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "marshal JSON")
	}
	return append(dst, data...), nil
}

func appendString(dst []byte, s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return append(dst, bytes.TrimRight(buf.Bytes(), "\n")...)
}
