package coerce

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	// ErrShape is returned when a value is not numeric at all.
	ErrShape = errors.New("not a number")
	// ErrRange is returned when a numeric value does not fit the target width.
	ErrRange = errors.New("out of range")
)

// numericText returns the decimal text for JSON numbers, numeric strings and
// Go integer values.
func numericText(value any) (string, bool) {
	switch v := value.(type) {
	case json.Number:
		return string(v), true
	case string:
		s := strings.TrimSpace(v)
		return s, s != ""
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		f := float64(v)
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case *big.Int:
		if v == nil {
			return "", false
		}
		return v.String(), true
	}
	return "", false
}

// Big parses any integral value into a big.Int. Exponent forms such as "1e3"
// are accepted when they denote an integer.
func Big(value any) (*big.Int, error) {
	s, ok := numericText(value)
	if !ok {
		return nil, ErrShape
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return n, nil
	}
	f, ok := new(big.Float).SetString(s)
	if !ok || !f.IsInt() {
		return nil, ErrShape
	}
	n, _ := f.Int(nil)
	return n, nil
}

// Int coerces value to a signed integer of the given bit width.
func Int(value any, bits int) (int64, error) {
	n, err := Big(value)
	if err != nil {
		return 0, err
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	if n.Cmp(limit) >= 0 || n.Cmp(new(big.Int).Neg(limit)) < 0 {
		return 0, ErrRange
	}
	return n.Int64(), nil
}

// Uint coerces value to an unsigned integer of the given bit width.
func Uint(value any, bits int) (uint64, error) {
	n, err := Big(value)
	if err != nil {
		return 0, err
	}
	if n.Sign() < 0 || n.BitLen() > bits {
		return 0, ErrRange
	}
	return n.Uint64(), nil
}

// Float coerces value to a float. The strings "inf", "-inf" and "nan" are
// accepted in any case.
func Float(value any, bits int) (float64, error) {
	var s string
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case json.Number:
		s = string(v)
	case string:
		s = strings.TrimSpace(v)
	default:
		n, err := Big(value)
		if err != nil {
			return 0, err
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f, nil
	}

	switch strings.ToLower(s) {
	case "inf", "+inf", "infinity":
		return math.Inf(1), nil
	case "-inf", "-infinity":
		return math.Inf(-1), nil
	case "nan":
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrRange
		}
		return 0, ErrShape
	}
	return f, nil
}

// TypeName describes the JSON shape of a value for error messages.
func TypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case json.Number, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, *big.Int:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return "object"
}
