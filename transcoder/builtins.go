package transcoder

import (
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/name"
	"github.com/wippyai/abieos/transcoder/internal/binary"
	"github.com/wippyai/abieos/transcoder/internal/coerce"
	"github.com/wippyai/abieos/transcoder/internal/types"
)

var (
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	two127 = new(big.Int).Lsh(big.NewInt(1), 127)
)

func mismatch(path []string, abiType string, value any) error {
	return errors.TypeMismatch(errors.PhaseEncode, path, abiType, coerce.TypeName(value))
}

// numberErr maps a coercion failure onto overflow or shape mismatch.
func numberErr(err error, path []string, abiType string, value any) error {
	if stderrors.Is(err, coerce.ErrRange) {
		return errors.Overflow(errors.PhaseEncode, path, value, abiType)
	}
	return mismatch(path, abiType, value)
}

func invalidValue(path []string, abiType, detail string, args ...any) error {
	return errors.New(errors.PhaseEncode, errors.KindInvalidData).
		Path(path...).
		AbiType(abiType).
		Detail(detail, args...).
		Build()
}

func corrupt(path []string, abiType, detail string, args ...any) error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Path(path...).
		AbiType(abiType).
		Detail(detail, args...).
		Build()
}

// readErr converts a wire reader failure into a decode error.
func readErr(err error, path []string, abiType string) error {
	var short *binary.ShortReadError
	if stderrors.As(err, &short) {
		e := errors.Truncated(path, short.Want, short.Remaining)
		e.AbiType = abiType
		return e
	}
	if stderrors.Is(err, binary.ErrOverflow) {
		return errors.Overflow(errors.PhaseDecode, path, "varuint32 encoding", abiType)
	}
	return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "read "+abiType)
}

// withPath attaches a location to an error raised below the transcoder.
func withPath(err error, path []string, phase errors.Phase) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		cp := *e
		cp.Phase = phase
		cp.Path = path
		return &cp
	}
	return err
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func hexValue(path []string, abiType string, value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, mismatch(path, abiType, value)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, invalidValue(path, abiType, "invalid hex: %v", err)
	}
	return b, nil
}

func encodeBuiltin(w *binary.Writer, ct *CompiledType, value any, path []string) error {
	abiType := ct.Name
	switch ct.Kind {
	case types.KindBool:
		b, ok := value.(bool)
		if !ok {
			return mismatch(path, abiType, value)
		}
		if b {
			w.Byte(1)
		} else {
			w.Byte(0)
		}
		return nil

	case types.KindInt8, types.KindInt16, types.KindInt32, types.KindInt64:
		bits := ct.Kind.FixedSize() * 8
		v, err := coerce.Int(value, bits)
		if err != nil {
			return numberErr(err, path, abiType, value)
		}
		writeUint(w, uint64(v), bits)
		return nil

	case types.KindUint8, types.KindUint16, types.KindUint32, types.KindUint64:
		bits := ct.Kind.FixedSize() * 8
		v, err := coerce.Uint(value, bits)
		if err != nil {
			return numberErr(err, path, abiType, value)
		}
		writeUint(w, v, bits)
		return nil

	case types.KindVarUint32:
		v, err := coerce.Uint(value, 32)
		if err != nil {
			return numberErr(err, path, abiType, value)
		}
		w.WriteVarUint32(uint32(v))
		return nil

	case types.KindVarInt32:
		v, err := coerce.Int(value, 32)
		if err != nil {
			return numberErr(err, path, abiType, value)
		}
		w.WriteVarInt32(int32(v))
		return nil

	case types.KindInt128, types.KindUint128:
		return encodeInt128(w, ct.Kind == types.KindInt128, value, path, abiType)

	case types.KindFloat32:
		f, err := coerce.Float(value, 32)
		if err != nil {
			return numberErr(err, path, abiType, value)
		}
		w.WriteF32(float32(f))
		return nil

	case types.KindFloat64:
		f, err := coerce.Float(value, 64)
		if err != nil {
			return numberErr(err, path, abiType, value)
		}
		w.WriteF64(f)
		return nil

	case types.KindFloat128, types.KindChecksum160, types.KindChecksum256, types.KindChecksum512:
		b, err := hexValue(path, abiType, value)
		if err != nil {
			return err
		}
		if want := ct.Kind.FixedSize(); len(b) != want {
			return invalidValue(path, abiType, "expected %d bytes, got %d", want, len(b))
		}
		w.WriteBytes(b)
		return nil

	case types.KindBytes:
		b, err := hexValue(path, abiType, value)
		if err != nil {
			return err
		}
		w.WritePrefixedBytes(b)
		return nil

	case types.KindString:
		s, ok := value.(string)
		if !ok {
			return mismatch(path, abiType, value)
		}
		if !utf8.ValidString(s) {
			return errors.InvalidUTF8(errors.PhaseEncode, path, []byte(s))
		}
		w.WriteString(s)
		return nil

	case types.KindName:
		s, ok := value.(string)
		if !ok {
			return mismatch(path, abiType, value)
		}
		n, err := name.FromString(s)
		if err != nil {
			return withPath(err, path, errors.PhaseEncode)
		}
		w.WriteU64(n.Uint64())
		return nil

	case types.KindTimePoint, types.KindTimePointSec, types.KindBlockTimestamp:
		return encodeTime(w, ct.Kind, value, path, abiType)

	case types.KindSymbolCode, types.KindSymbol, types.KindAsset, types.KindExtendedAsset:
		return encodeAssetKind(w, ct.Kind, value, path, abiType)

	case types.KindPublicKey, types.KindPrivateKey, types.KindSignature:
		return encodeKey(w, ct.Kind, value, path, abiType)
	}

	return errors.New(errors.PhaseEncode, errors.KindUnknownType).
		Path(path...).
		AbiType(abiType).
		Detail("no encoder for kind %s", ct.Kind).
		Build()
}

func writeUint(w *binary.Writer, v uint64, bits int) {
	switch bits {
	case 8:
		w.Byte(byte(v))
	case 16:
		w.WriteU16(uint16(v))
	case 32:
		w.WriteU32(uint32(v))
	default:
		w.WriteU64(v)
	}
}

func encodeInt128(w *binary.Writer, signed bool, value any, path []string, abiType string) error {
	n, err := coerce.Big(value)
	if err != nil {
		return mismatch(path, abiType, value)
	}
	if signed {
		if n.Cmp(two127) >= 0 || n.Cmp(new(big.Int).Neg(two127)) < 0 {
			return errors.Overflow(errors.PhaseEncode, path, value, abiType)
		}
		if n.Sign() < 0 {
			n = new(big.Int).Add(n, two128)
		}
	} else if n.Sign() < 0 || n.BitLen() > 128 {
		return errors.Overflow(errors.PhaseEncode, path, value, abiType)
	}

	var buf [16]byte
	n.FillBytes(buf[:])
	for i, j := 0, 15; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	w.WriteBytes(buf[:])
	return nil
}

func decodeBuiltin(r *binary.Reader, ct *CompiledType, path []string, opts Options) (any, error) {
	abiType := ct.Name
	switch ct.Kind {
	case types.KindBool:
		return readBool(r, path, abiType, opts)

	case types.KindInt8:
		b, err := r.ReadByte()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatInt(int64(int8(b)), 10)), nil
	case types.KindUint8:
		b, err := r.ReadByte()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatUint(uint64(b), 10)), nil
	case types.KindInt16:
		v, err := r.ReadU16()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatInt(int64(int16(v)), 10)), nil
	case types.KindUint16:
		v, err := r.ReadU16()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatUint(uint64(v), 10)), nil
	case types.KindInt32:
		v, err := r.ReadU32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatInt(int64(int32(v)), 10)), nil
	case types.KindUint32:
		v, err := r.ReadU32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatUint(uint64(v), 10)), nil

	// 64-bit and wider integers are quoted so JSON consumers keep precision
	case types.KindInt64:
		v, err := r.ReadU64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case types.KindUint64:
		v, err := r.ReadU64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return strconv.FormatUint(v, 10), nil

	case types.KindVarUint32:
		v, err := r.ReadVarUint32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatUint(uint64(v), 10)), nil
	case types.KindVarInt32:
		v, err := r.ReadVarInt32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return json.Number(strconv.FormatInt(int64(v), 10)), nil

	case types.KindInt128, types.KindUint128:
		b, err := r.ReadBytes(16)
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		for i, j := 0, 15; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		n := new(big.Int).SetBytes(b)
		if ct.Kind == types.KindInt128 && n.Cmp(two127) >= 0 {
			n.Sub(n, two128)
		}
		return n.String(), nil

	case types.KindFloat32:
		f, err := r.ReadF32()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return floatValue(float64(f), 32), nil
	case types.KindFloat64:
		f, err := r.ReadF64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return floatValue(f, 64), nil

	case types.KindFloat128, types.KindChecksum160, types.KindChecksum256, types.KindChecksum512:
		b, err := r.ReadBytes(ct.Kind.FixedSize())
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return upperHex(b), nil

	case types.KindBytes:
		b, err := r.ReadPrefixedBytes()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return upperHex(b), nil

	case types.KindString:
		b, err := r.ReadPrefixedBytes()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		if !utf8.Valid(b) {
			return nil, errors.InvalidUTF8(errors.PhaseDecode, path, b)
		}
		return string(b), nil

	case types.KindName:
		v, err := r.ReadU64()
		if err != nil {
			return nil, readErr(err, path, abiType)
		}
		return name.Name(v).String(), nil

	case types.KindTimePoint, types.KindTimePointSec, types.KindBlockTimestamp:
		return decodeTime(r, ct.Kind, path, abiType)

	case types.KindSymbolCode, types.KindSymbol, types.KindAsset, types.KindExtendedAsset:
		return decodeAssetKind(r, ct.Kind, path, abiType)

	case types.KindPublicKey, types.KindPrivateKey, types.KindSignature:
		return decodeKey(r, ct.Kind, path, abiType)
	}

	return nil, errors.New(errors.PhaseDecode, errors.KindUnknownType).
		Path(path...).
		AbiType(abiType).
		Detail("no decoder for kind %s", ct.Kind).
		Build()
}

func readBool(r *binary.Reader, path []string, abiType string, opts Options) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, readErr(err, path, abiType)
	}
	if b > 1 && opts.StrictBool {
		return false, corrupt(path, abiType, "bool byte 0x%02x is neither 0 nor 1", b)
	}
	return b != 0, nil
}

// floatValue renders finite floats as JSON numbers and the rest as strings.
func floatValue(f float64, bits int) any {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return json.Number(strconv.FormatFloat(f, 'g', -1, bits))
}
