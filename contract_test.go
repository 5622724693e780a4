package abieos

import (
	"encoding/hex"
	"errors"
	"testing"

	abierrors "github.com/wippyai/abieos/errors"
	"github.com/wippyai/abieos/name"
)

func TestDetectABIFormat(t *testing.T) {
	raw, err := hex.DecodeString(tokenABIHex)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
		want ABIFormat
	}{
		{"json", []byte(tokenABIJSON), AbiJSON},
		{"json with leading space", []byte("\n  {}"), AbiJSON},
		{"hex", []byte(tokenABIHex), AbiHex},
		{"hex with newline", []byte(tokenABIHex + "\n"), AbiHex},
		{"binary", raw, AbiBin},
		{"odd length hex digits", []byte("abc"), AbiBin},
		{"empty", nil, AbiBin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectABIFormat(tt.data); got != tt.want {
				t.Errorf("DetectABIFormat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContractHandle(t *testing.T) {
	ctx := NewWithDefaults()
	token, err := ctx.Contract("eosio.token")
	if err != nil {
		t.Fatalf("Contract: %v", err)
	}
	if token.Name() != name.MustFromString("eosio.token") {
		t.Errorf("Name() = %v, want eosio.token", token.Name())
	}
	if token.Loaded() {
		t.Fatal("Loaded() before LoadABI = true, want false")
	}
	if _, err := token.TypeForAction("transfer"); !errors.Is(err, abierrors.ErrContractNotFound) {
		t.Errorf("TypeForAction before load: error = %v, want contract_not_registered", err)
	}

	if err := token.LoadABI(AbiHex, []byte(tokenABIHex)); err != nil {
		t.Fatalf("LoadABI: %v", err)
	}
	if !token.Loaded() {
		t.Fatal("Loaded() after LoadABI = false, want true")
	}

	typ, err := token.TypeForTable("stat")
	if err != nil || typ != "currency_stats" {
		t.Errorf("TypeForTable(stat) = %q, %v", typ, err)
	}
	if _, err := token.TypeForActionResult("transfer"); !errors.Is(err, abierrors.ErrActionResultNotBound) {
		t.Errorf("TypeForActionResult error = %v, want action_result_not_bound", err)
	}

	out, err := token.JSONToHex("transfer", transferJSON)
	if err != nil || out != transferHex {
		t.Errorf("JSONToHex = %s, %v", out, err)
	}
	bin, err := token.JSONToBin("transfer", transferJSON)
	if err != nil {
		t.Fatalf("JSONToBin: %v", err)
	}
	text, err := token.BinToJSON("transfer", bin)
	if err != nil || text != transferJSON {
		t.Errorf("BinToJSON = %s, %v", text, err)
	}
	text, err = token.HexToJSON("transfer", transferHex)
	if err != nil || text != transferJSON {
		t.Errorf("HexToJSON = %s, %v", text, err)
	}

	// the handle shares the context's registry
	same := ctx.ContractByName(name.MustFromString("eosio.token"))
	if !same.Loaded() {
		t.Error("second handle does not see the registered ABI")
	}
}

func TestContractLoadFormats(t *testing.T) {
	raw, err := hex.DecodeString(tokenABIHex)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		data   []byte
		format ABIFormat
	}{
		{"json", []byte(tokenABIJSON), AbiJSON},
		{"hex", []byte(tokenABIHex), AbiHex},
		{"bin", raw, AbiBin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewWithDefaults()
			k := ctx.ContractByName(name.MustFromString("token"))
			if err := k.LoadABI(tt.format, tt.data); err != nil {
				t.Fatalf("LoadABI(%v): %v", tt.format, err)
			}
			got, err := k.JSONToHex("transfer", transferJSON)
			if err != nil || got != transferHex {
				t.Errorf("JSONToHex = %s, %v", got, err)
			}
		})
	}

	ctx := NewWithDefaults()
	if err := ctx.ContractByName(1).LoadABI(ABIFormat(9), nil); err == nil {
		t.Error("LoadABI with unknown format should fail")
	}
	if _, err := ctx.Contract("Not A Name"); !errors.Is(err, abierrors.ErrInvalidNameCharacter) {
		t.Errorf("Contract(invalid) error = %v, want invalid_name_character", err)
	}
}

func TestABIFormatString(t *testing.T) {
	for f, want := range map[ABIFormat]string{AbiJSON: "json", AbiHex: "hex", AbiBin: "bin", 7: "ABIFormat(7)"} {
		if got := f.String(); got != want {
			t.Errorf("ABIFormat(%d).String() = %q, want %q", uint8(f), got, want)
		}
	}
}
