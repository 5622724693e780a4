package transcoder

import (
	"github.com/wippyai/abieos/transcoder/internal/types"
)

type TypeKind = types.Kind

const (
	KindBool           = types.KindBool
	KindInt8           = types.KindInt8
	KindUint8          = types.KindUint8
	KindInt16          = types.KindInt16
	KindUint16         = types.KindUint16
	KindInt32          = types.KindInt32
	KindUint32         = types.KindUint32
	KindInt64          = types.KindInt64
	KindUint64         = types.KindUint64
	KindInt128         = types.KindInt128
	KindUint128        = types.KindUint128
	KindVarUint32      = types.KindVarUint32
	KindVarInt32       = types.KindVarInt32
	KindFloat32        = types.KindFloat32
	KindFloat64        = types.KindFloat64
	KindFloat128       = types.KindFloat128
	KindTimePoint      = types.KindTimePoint
	KindTimePointSec   = types.KindTimePointSec
	KindBlockTimestamp = types.KindBlockTimestamp
	KindName           = types.KindName
	KindBytes          = types.KindBytes
	KindString         = types.KindString
	KindChecksum160    = types.KindChecksum160
	KindChecksum256    = types.KindChecksum256
	KindChecksum512    = types.KindChecksum512
	KindPublicKey      = types.KindPublicKey
	KindPrivateKey     = types.KindPrivateKey
	KindSignature      = types.KindSignature
	KindSymbol         = types.KindSymbol
	KindSymbolCode     = types.KindSymbolCode
	KindAsset          = types.KindAsset
	KindExtendedAsset  = types.KindExtendedAsset
	KindStruct         = types.KindStruct
	KindVariant        = types.KindVariant
	KindArray          = types.KindArray
	KindOptional       = types.KindOptional
	KindExtension      = types.KindExtension
)

type CompiledType = types.CompiledType
type CompiledField = types.Field
type CompiledMember = types.Member
