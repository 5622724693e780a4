// Package transcoder converts values between JSON and the ABI binary format.
//
// An ABI document declares aliases, structs and variants over a fixed set of
// builtin types. The Compiler resolves type expressions against one document
// into CompiledType trees once, and the Encoder and Decoder walk those trees.
//
//	┌─────────────────────────────────────────────────────────────┐
//	│ JSON text ←→ generic values ←→ [Encoder/Decoder] ←→ binary  │
//	└─────────────────────────────────────────────────────────────┘
//
// # Type Expressions
//
// A type expression is a declared or builtin name with at most one suffix:
//
//	T[]     array: varuint32 count, then the elements
//	T?      optional: one flag byte, then the value if the flag is 1
//	T$      binary extension: may be absent at the tail of a struct
//
// Suffixes do not stack directly ("int8?[]" is rejected) but may be layered
// through an alias.
//
// # Wire Format
//
//	Type                    Binary                      JSON
//	─────────────────────────────────────────────────────────────────────
//	bool                    1 byte                      true/false
//	int8..int32, uint*      little-endian               number
//	int64, uint64, *128     little-endian               "decimal string"
//	varuint32, varint32     LEB128 (varint: zig-zag)    number
//	float32, float64        IEEE 754                    number, "inf", "nan"
//	name                    uint64                      "eosio.token"
//	string                  varuint32 length + UTF-8    "text"
//	bytes, checksum*        length-prefixed / fixed     "HEX"
//	time_point              int64 microseconds          "2018-06-15T19:17:47.000"
//	time_point_sec          uint32 seconds              "2018-06-15T19:17:47.000"
//	block_timestamp_type    uint32 half-second slots    "2018-06-15T19:17:47.500"
//	symbol                  precision byte + code       "4,EOS"
//	asset                   int64 amount + symbol       "1.0000 EOS"
//	public_key, signature   type byte + payload         "PUB_K1_...", "SIG_K1_..."
//	struct                  fields in order, base first {"field": ...}
//	variant                 varuint32 index + value     ["member_type", value]
//
// # Generic Values
//
// Decoding produces Object (ordered struct fields), []any, string, bool,
// json.Number and nil. Encoding accepts the same shapes and map[string]any.
// ParseJSON and MarshalJSON bridge generic values to JSON text.
//
// # ABI Documents
//
// ABI documents are converted with the same engine, using the schema from
// abi.Meta. See ParseABIJSON, ParseABIBinary, ABIJSONToBinary and
// ABIBinaryToJSON.
//
// # Thread Safety
//
// Compiler, Encoder, Decoder and Transcoder are safe for concurrent use.
package transcoder
