package transcoder

import (
	"strconv"
	"strings"

	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/name"
	"github.com/wippyai/abieos/transcoder/internal/binary"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

const (
	maxSymbolCodeLength = 7
	maxPrecision        = 18
)

// symbolCode packs up to seven A-Z characters, first character lowest.
func symbolCode(s string) (uint64, bool) {
	if len(s) == 0 || len(s) > maxSymbolCodeLength {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		v |= uint64(c) << (8 * i)
	}
	return v, true
}

func symbolCodeString(v uint64) string {
	var b strings.Builder
	for v&0xff != 0 {
		b.WriteByte(byte(v))
		v >>= 8
	}
	return b.String()
}

// parseSymbol parses "precision,CODE".
func parseSymbol(s string) (uint64, bool) {
	p, code, ok := strings.Cut(s, ",")
	if !ok {
		return 0, false
	}
	precision, err := strconv.ParseUint(p, 10, 8)
	if err != nil || precision > maxPrecision {
		return 0, false
	}
	c, ok := symbolCode(code)
	if !ok {
		return 0, false
	}
	return precision | c<<8, true
}

func symbolString(v uint64) string {
	return strconv.FormatUint(v&0xff, 10) + "," + symbolCodeString(v>>8)
}

// parseAsset parses "amount CODE" where the number of fraction digits in
// amount is the symbol precision.
func parseAsset(s string) (amount int64, symbol uint64, err error) {
	amt, code, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return 0, 0, errors.New(errors.PhaseEncode, errors.KindInvalidData).Detail("asset %q has no symbol", s).Build()
	}
	code = strings.TrimSpace(code)

	whole, frac, _ := strings.Cut(amt, ".")
	digits := strings.TrimPrefix(whole, "-")
	if digits == "" || strings.HasPrefix(digits, "+") || len(frac) > maxPrecision {
		return 0, 0, errors.New(errors.PhaseEncode, errors.KindInvalidData).Detail("invalid asset amount %q", amt).Build()
	}
	for _, part := range []string{digits, frac} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return 0, 0, errors.New(errors.PhaseEncode, errors.KindInvalidData).Detail("invalid asset amount %q", amt).Build()
			}
		}
	}

	c, ok := symbolCode(code)
	if !ok {
		return 0, 0, errors.New(errors.PhaseEncode, errors.KindInvalidData).Detail("invalid symbol code %q", code).Build()
	}

	text := whole + frac
	amount, perr := strconv.ParseInt(text, 10, 64)
	if perr != nil {
		return 0, 0, errors.New(errors.PhaseEncode, errors.KindOverflow).Value(amt).Detail("asset amount %q overflows int64", amt).Build()
	}
	return amount, uint64(len(frac)) | c<<8, nil
}

func assetString(amount int64, symbol uint64) string {
	precision := int(symbol & 0xff)
	neg := amount < 0
	mag := uint64(amount)
	if neg {
		mag = -mag
	}

	digits := strconv.FormatUint(mag, 10)
	if precision > 0 {
		if len(digits) <= precision {
			digits = strings.Repeat("0", precision-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-precision] + "." + digits[len(digits)-precision:]
	}
	if neg {
		digits = "-" + digits
	}
	return digits + " " + symbolCodeString(symbol>>8)
}

func encodeAssetKind(w *binary.Writer, kind types.Kind, value any, path []string, abiType string) error {
	if kind == types.KindExtendedAsset {
		return encodeExtendedAsset(w, value, path, abiType)
	}

	s, ok := value.(string)
	if !ok {
		return mismatch(path, abiType, value)
	}

	switch kind {
	case types.KindSymbolCode:
		v, ok := symbolCode(s)
		if !ok {
			return invalidValue(path, abiType, "invalid symbol code %q", s)
		}
		w.WriteU64(v)
	case types.KindSymbol:
		v, ok := parseSymbol(s)
		if !ok {
			return invalidValue(path, abiType, "invalid symbol %q", s)
		}
		w.WriteU64(v)
	case types.KindAsset:
		amount, symbol, err := parseAsset(s)
		if err != nil {
			e := err.(*errors.Error)
			e.Path = path
			e.AbiType = abiType
			return e
		}
		w.WriteU64(uint64(amount))
		w.WriteU64(symbol)
	}
	return nil
}

func encodeExtendedAsset(w *binary.Writer, value any, path []string, abiType string) error {
	quantity, present, ok := field(value, "quantity")
	if !ok {
		return mismatch(path, abiType, value)
	}
	if !present {
		return errors.FieldMissing(errors.PhaseEncode, appendPath(path, "quantity"), "quantity")
	}
	contract, present, _ := field(value, "contract")
	if !present {
		return errors.FieldMissing(errors.PhaseEncode, appendPath(path, "contract"), "contract")
	}

	if err := encodeAssetKind(w, types.KindAsset, quantity, appendPath(path, "quantity"), "asset"); err != nil {
		return err
	}
	c, ok := contract.(string)
	if !ok {
		return mismatch(appendPath(path, "contract"), "name", contract)
	}
	n, err := name.FromString(c)
	if err != nil {
		return withPath(err, appendPath(path, "contract"), errors.PhaseEncode)
	}
	w.WriteU64(n.Uint64())
	return nil
}

func decodeAssetKind(r *binary.Reader, kind types.Kind, path []string, abiType string) (any, error) {
	switch kind {
	case types.KindSymbolCode:
		v, err := r.ReadU64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return symbolCodeString(v), nil
	case types.KindSymbol:
		v, err := r.ReadU64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		if v&0xff > maxPrecision {
			return nil, corrupt(path, abiType, "symbol precision %d exceeds %d", v&0xff, maxPrecision)
		}
		return symbolString(v), nil
	case types.KindAsset:
		return decodeAsset(r, path, abiType)
	}

	quantity, err := decodeAsset(r, appendPath(path, "quantity"), "asset")
	if err != nil {
		return nil, err
	}
	contract, err := r.ReadU64()
	if err != nil {
		return nil, readErr(err, appendPath(path, "contract"), "name")
	}
	return Object{
		{Key: "quantity", Value: quantity},
		{Key: "contract", Value: name.Name(contract).String()},
	}, nil
}

func decodeAsset(r *binary.Reader, path []string, abiType string) (any, error) {
	amount, err := r.ReadU64()
	if err != nil {
		return nil, readErr(err, path, abiType)
	}
	symbol, err := r.ReadU64()
	if err != nil {
		return nil, readErr(err, path, abiType)
	}
	if symbol&0xff > maxPrecision {
		return nil, corrupt(path, abiType, "symbol precision %d exceeds %d", symbol&0xff, maxPrecision)
	}
	return assetString(int64(amount), symbol), nil
}
