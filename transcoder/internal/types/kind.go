package types

type Kind uint8

const (
	KindBool Kind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindInt128
	KindUint128
	KindVarUint32
	KindVarInt32
	KindFloat32
	KindFloat64
	KindFloat128
	KindTimePoint
	KindTimePointSec
	KindBlockTimestamp
	KindName
	KindBytes
	KindString
	KindChecksum160
	KindChecksum256
	KindChecksum512
	KindPublicKey
	KindPrivateKey
	KindSignature
	KindSymbol
	KindSymbolCode
	KindAsset
	KindExtendedAsset
	KindStruct
	KindVariant
	KindArray
	KindOptional
	KindExtension
)

var kindNames = [...]string{
	KindBool:           "bool",
	KindInt8:           "int8",
	KindUint8:          "uint8",
	KindInt16:          "int16",
	KindUint16:         "uint16",
	KindInt32:          "int32",
	KindUint32:         "uint32",
	KindInt64:          "int64",
	KindUint64:         "uint64",
	KindInt128:         "int128",
	KindUint128:        "uint128",
	KindVarUint32:      "varuint32",
	KindVarInt32:       "varint32",
	KindFloat32:        "float32",
	KindFloat64:        "float64",
	KindFloat128:       "float128",
	KindTimePoint:      "time_point",
	KindTimePointSec:   "time_point_sec",
	KindBlockTimestamp: "block_timestamp_type",
	KindName:           "name",
	KindBytes:          "bytes",
	KindString:         "string",
	KindChecksum160:    "checksum160",
	KindChecksum256:    "checksum256",
	KindChecksum512:    "checksum512",
	KindPublicKey:      "public_key",
	KindPrivateKey:     "private_key",
	KindSignature:      "signature",
	KindSymbol:         "symbol",
	KindSymbolCode:     "symbol_code",
	KindAsset:          "asset",
	KindExtendedAsset:  "extended_asset",
	KindStruct:         "struct",
	KindVariant:        "variant",
	KindArray:          "array",
	KindOptional:       "optional",
	KindExtension:      "extension",
}

var builtins = func() map[string]Kind {
	m := make(map[string]Kind, int(KindExtendedAsset)+1)
	for k := KindBool; k <= KindExtendedAsset; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsBuiltin reports whether k is a named builtin type.
func (k Kind) IsBuiltin() bool {
	return k <= KindExtendedAsset
}

// IsModifier reports whether k wraps an element type.
func (k Kind) IsModifier() bool {
	return k == KindArray || k == KindOptional || k == KindExtension
}

// Builtin looks up a builtin type by its ABI name.
func Builtin(name string) (Kind, bool) {
	k, ok := builtins[name]
	return k, ok
}

// fixedSizes are the wire sizes of constant-width builtins; 0 means variable.
var fixedSizes = [...]int{
	KindBool:           1,
	KindInt8:           1,
	KindUint8:          1,
	KindInt16:          2,
	KindUint16:         2,
	KindInt32:          4,
	KindUint32:         4,
	KindInt64:          8,
	KindUint64:         8,
	KindInt128:         16,
	KindUint128:        16,
	KindFloat32:        4,
	KindFloat64:        8,
	KindFloat128:       16,
	KindTimePoint:      8,
	KindTimePointSec:   4,
	KindBlockTimestamp: 4,
	KindName:           8,
	KindChecksum160:    20,
	KindChecksum256:    32,
	KindChecksum512:    64,
	KindSymbol:         8,
	KindSymbolCode:     8,
	KindAsset:          16,
	KindExtendedAsset:  24,
}

// FixedSize returns the wire size of a constant-width builtin, or 0.
func (k Kind) FixedSize() int {
	if int(k) < len(fixedSizes) {
		return fixedSizes[k]
	}
	return 0
}

// MinSize returns the smallest possible wire size of a value of kind k.
func (k Kind) MinSize() int {
	if n := k.FixedSize(); n > 0 {
		return n
	}
	switch k {
	case KindPublicKey:
		return 34
	case KindPrivateKey:
		return 33
	case KindSignature:
		return 66
	case KindVarUint32, KindVarInt32, KindBytes, KindString, KindArray, KindOptional, KindVariant:
		return 1
	}
	return 0
}
