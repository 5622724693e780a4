package transcoder

import (
	"encoding/hex"
	"testing"
)

const tokenABIHex = "0e656f73696f3a3a6162692f312e30010c6163636f756e745f6e616d65046e616d6505087472616e7366657200040466726f6d0c6163636f756e745f6e616d6502746f0c6163636f756e745f6e616d65087175616e74697479056173736574046d656d6f06737472696e67066372656174650002066973737565720c6163636f756e745f6e616d650e6d6178696d756d5f737570706c79056173736574056973737565000302746f0c6163636f756e745f6e616d65087175616e74697479056173736574046d656d6f06737472696e67076163636f756e7400010762616c616e63650561737365740e63757272656e63795f7374617473000306737570706c790561737365740a6d61785f737570706c79056173736574066973737565720c6163636f756e745f6e616d6503000000572d3ccdcd087472616e73666572000000000000a531760569737375650000000000a86cd445066372656174650002000000384f4d113203693634010863757272656e6379010675696e743634076163636f756e740000000000904dc603693634010863757272656e6379010675696e7436340e63757272656e63795f7374617473000000"

const transferHex = "0000000000855c340000000000000e3d102700000000000004454f53000000000648656c6c6f21"

const transferJSON = `{"from":"alice","to":"bob","quantity":"1.0000 EOS","memo":"Hello!"}`

// testABI exercises inheritance, extensions, variants, recursion and
// layered modifiers. Sections it omits default to empty.
const testABI = `{
	"version": "eosio::abi/1.1",
	"types": [
		{"new_type_name": "account_name", "type": "name"},
		{"new_type_name": "opt_int", "type": "int8?"},
		{"new_type_name": "opt_list", "type": "opt_int[]"}
	],
	"structs": [
		{"name": "base_s", "fields": [{"name": "id", "type": "uint64"}]},
		{"name": "derived", "base": "base_s", "fields": [{"name": "label", "type": "string"}]},
		{"name": "ext", "fields": [
			{"name": "a", "type": "uint8"},
			{"name": "b", "type": "uint16$"},
			{"name": "c", "type": "string$"}
		]},
		{"name": "node", "fields": [
			{"name": "value", "type": "int32"},
			{"name": "children", "type": "node[]"}
		]},
		{"name": "holder", "fields": [
			{"name": "owner", "type": "account_name"},
			{"name": "choice", "type": "num_or_str"},
			{"name": "maybe", "type": "derived?"}
		]}
	],
	"variants": [
		{"name": "num_or_str", "types": ["uint8", "string"]}
	],
	"actions": [
		{"name": "hold", "type": "holder", "ricardian_contract": ""}
	]
}`

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

func mustTranscoder(t *testing.T, abiJSON string, opts Options) *Transcoder {
	t.Helper()
	def, err := ParseABIJSON([]byte(abiJSON))
	if err != nil {
		t.Fatalf("ParseABIJSON: %v", err)
	}
	tr, err := New(def, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

func tokenTranscoder(t *testing.T) *Transcoder {
	t.Helper()
	def, err := ParseABIBinary(mustHex(t, tokenABIHex))
	if err != nil {
		t.Fatalf("ParseABIBinary: %v", err)
	}
	tr, err := New(def, DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}
