package transcoder

import (
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	abierrors "github.com/wippyai/abieos/errors"
)

func TestTransferVector(t *testing.T) {
	tr := tokenTranscoder(t)

	bin, err := tr.JSONToBinary("transfer", []byte(transferJSON))
	if err != nil {
		t.Fatalf("JSONToBinary: %v", err)
	}
	if got := hex.EncodeToString(bin); got != transferHex {
		t.Fatalf("got %s, want %s", got, transferHex)
	}

	out, err := tr.BinaryToJSON("transfer", bin)
	if err != nil {
		t.Fatalf("BinaryToJSON: %v", err)
	}
	if string(out) != transferJSON {
		t.Errorf("got %s, want %s", out, transferJSON)
	}
}

func TestFieldOrderIndependence(t *testing.T) {
	tr := tokenTranscoder(t)

	inputs := []string{
		`{"memo":"Hello!","quantity":"1.0000 EOS","to":"bob","from":"alice"}`,
		`{"to":"bob","from":"alice","memo":"Hello!","quantity":"1.0000 EOS","extra":[1,2,3]}`,
	}
	for _, in := range inputs {
		bin, err := tr.JSONToBinary("transfer", []byte(in))
		if err != nil {
			t.Fatalf("JSONToBinary(%s): %v", in, err)
		}
		if got := hex.EncodeToString(bin); got != transferHex {
			t.Errorf("JSONToBinary(%s) = %s, want %s", in, got, transferHex)
		}
	}
}

func TestEncodeGenericValues(t *testing.T) {
	tr := tokenTranscoder(t)

	decoded, err := tr.Decode("transfer", mustHex(t, transferHex))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj, ok := decoded.(Object)
	if !ok {
		t.Fatalf("Decode returned %T, want Object", decoded)
	}
	if got := strings.Join(obj.Keys(), ","); got != "from,to,quantity,memo" {
		t.Errorf("keys = %s", got)
	}

	// decoder output feeds straight back into the encoder
	bin, err := tr.Encode("transfer", decoded)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := hex.EncodeToString(bin); got != transferHex {
		t.Errorf("got %s, want %s", got, transferHex)
	}

	bin, err = tr.Encode("transfer", map[string]any{
		"from": "alice", "to": "bob", "quantity": "1.0000 EOS", "memo": "Hello!",
	})
	if err != nil || hex.EncodeToString(bin) != transferHex {
		t.Errorf("Encode(map) = %x, %v", bin, err)
	}
}

func TestStructInheritance(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	bin, err := tr.JSONToBinary("derived", []byte(`{"label":"x","id":"5"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hex.EncodeToString(bin), "0500000000000000"+"0178"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	out, err := tr.BinaryToJSON("derived", bin)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":"5","label":"x"}` {
		t.Errorf("got %s, base fields must come first", out)
	}

	if _, err := tr.JSONToBinary("derived", []byte(`{"label":"x"}`)); !errors.Is(err, abierrors.ErrMissingField) {
		t.Errorf("missing base field error = %v", err)
	}
}

func TestBinaryExtensions(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	tests := []struct {
		in  string
		hex string
	}{
		{`{"a":1}`, "01"},
		{`{"a":1,"b":2}`, "010200"},
		{`{"a":1,"b":2,"c":"x"}`, "0102000178"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bin, err := tr.JSONToBinary("ext", []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := hex.EncodeToString(bin); got != tt.hex {
				t.Fatalf("got %s, want %s", got, tt.hex)
			}
			out, err := tr.BinaryToJSON("ext", bin)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.in {
				t.Errorf("got %s, want %s", out, tt.in)
			}
		})
	}

	_, err := tr.JSONToBinary("ext", []byte(`{"a":1,"c":"x"}`))
	if !errors.Is(err, abierrors.ErrMissingField) {
		t.Errorf("gap before present extension: error = %v, want missing_field", err)
	}
	if _, err := tr.JSONToBinary("ext", []byte(`{"b":2}`)); !errors.Is(err, abierrors.ErrMissingField) {
		t.Errorf("missing required field: error = %v", err)
	}
	if _, err := tr.Decode("ext", mustHex(t, "0102")); !errors.Is(err, abierrors.ErrTruncatedInput) {
		t.Errorf("partial extension: error = %v, want truncated_input", err)
	}
}

func TestVariants(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	tests := []struct {
		in  string
		hex string
		out string
	}{
		{`["string","hi"]`, "01026869", `["string","hi"]`},
		{`["uint8",7]`, "0007", `["uint8",7]`},
		{`7`, "0007", `["uint8",7]`},
		{`"hi"`, "01026869", `["string","hi"]`},
		{`["other","x"]`, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bin, err := tr.JSONToBinary("num_or_str", []byte(tt.in))
			if tt.hex == "" {
				if !errors.Is(err, abierrors.ErrNoMatchingVariant) {
					t.Fatalf("error = %v, want no_matching_variant_type", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := hex.EncodeToString(bin); got != tt.hex {
				t.Fatalf("got %s, want %s", got, tt.hex)
			}
			out, err := tr.BinaryToJSON("num_or_str", bin)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.out {
				t.Errorf("got %s, want %s", out, tt.out)
			}
		})
	}

	if _, err := tr.JSONToBinary("num_or_str", []byte(`true`)); !errors.Is(err, abierrors.ErrNoMatchingVariant) {
		t.Errorf("bool value: error = %v", err)
	}
	if _, err := tr.JSONToBinary("num_or_str", []byte(`["uint8",300]`)); !errors.Is(err, abierrors.ErrOverflow) {
		t.Errorf("tagged value errors are reported: error = %v", err)
	}
}

func TestOptionalsAndArrays(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	tests := []struct {
		typ string
		in  string
		hex string
	}{
		{"int8?", `null`, "00"},
		{"int8?", `5`, "0105"},
		{"int8[]", `[]`, "00"},
		{"int8[]", `[1,-1]`, "0201ff"},
		{"opt_list", `[1,null]`, "02010100"},
		{"name[]", `["alice","bob"]`, "02" + "0000000000855c34" + "0000000000000e3d"},
		{"derived?", `{"id":"1","label":""}`, "01" + "0100000000000000" + "00"},
		{"uint8$", `3`, "03"},
	}
	for _, tt := range tests {
		t.Run(tt.typ+" "+tt.in, func(t *testing.T) {
			bin, err := tr.JSONToBinary(tt.typ, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := hex.EncodeToString(bin); got != tt.hex {
				t.Fatalf("got %s, want %s", got, tt.hex)
			}
			out, err := tr.BinaryToJSON(tt.typ, bin)
			if err != nil {
				t.Fatal(err)
			}
			if string(out) != tt.in {
				t.Errorf("got %s, want %s", out, tt.in)
			}
		})
	}

	if _, err := tr.JSONToBinary("int8[]", []byte(`{"a":1}`)); !errors.Is(err, abierrors.ErrFieldTypeMismatch) {
		t.Errorf("object for array: error = %v", err)
	}
	v, err := tr.Decode("uint8$", nil)
	if err != nil || v != nil {
		t.Errorf("Decode(uint8$, empty) = %v, %v; want absent", v, err)
	}

	bin, err := tr.JSONToBinary("holder", []byte(`{"owner":"alice","choice":1}`))
	if err != nil {
		t.Fatalf("absent optional field: %v", err)
	}
	if got, want := hex.EncodeToString(bin), "0000000000855c34"+"0001"+"00"; got != want {
		t.Errorf("absent optional field: got %s, want %s", got, want)
	}
	out, err := tr.BinaryToJSON("holder", bin)
	if want := `{"owner":"alice","choice":["uint8",1],"maybe":null}`; err != nil || string(out) != want {
		t.Errorf("BinaryToJSON = %s, %v; want %s", out, err, want)
	}
}

func TestRecursiveStruct(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	in := `{"value":1,"children":[{"value":2,"children":[]}]}`
	bin, err := tr.JSONToBinary("node", []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hex.EncodeToString(bin), "01000000"+"01"+"02000000"+"00"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	out, err := tr.BinaryToJSON("node", bin)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestRecursionLimit(t *testing.T) {
	deep := `{"value":1,"children":[{"value":2,"children":[{"value":3,"children":[]}]}]}`

	tr := mustTranscoder(t, testABI, DefaultOptions())
	bin, err := tr.JSONToBinary("node", []byte(deep))
	if err != nil {
		t.Fatalf("default depth: %v", err)
	}

	shallow := mustTranscoder(t, testABI, Options{MaxDepth: 4})
	if _, err := shallow.JSONToBinary("node", []byte(deep)); !errors.Is(err, abierrors.ErrRecursionLimit) {
		t.Errorf("encode error = %v, want recursion_limit", err)
	}
	if _, err := shallow.Decode("node", bin); !errors.Is(err, abierrors.ErrRecursionLimit) {
		t.Errorf("decode error = %v, want recursion_limit", err)
	}
}

func TestErrorPaths(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	_, err := tr.JSONToBinary("holder", []byte(`{"owner":"alice","choice":1,"maybe":{"id":"1","label":5}}`))
	var e *abierrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Kind != abierrors.KindFieldTypeMismatch {
		t.Errorf("Kind = %v", e.Kind)
	}
	if got := strings.Join(e.Path, "."); got != "maybe.label" {
		t.Errorf("Path = %s, want maybe.label", got)
	}

	_, err = tr.JSONToBinary("int8[]", []byte(`[1,2,"x"]`))
	if !errors.As(err, &e) || strings.Join(e.Path, ".") != "[2]" {
		t.Errorf("array element path = %v", err)
	}
}

func TestInputFraming(t *testing.T) {
	tr := mustTranscoder(t, testABI, DefaultOptions())

	for _, in := range []string{``, `{`, `1 2`, `{"a":1} x`} {
		if _, err := tr.JSONToBinary("uint8", []byte(in)); !errors.Is(err, abierrors.ErrInvalidData) {
			t.Errorf("JSONToBinary(%q) error = %v, want invalid_data", in, err)
		}
	}
	if _, err := tr.JSONToBinary("nope", []byte(`1`)); !errors.Is(err, abierrors.ErrUnknownType) {
		t.Errorf("unknown type error = %v", err)
	}

	zero := mustTranscoder(t, `{
		"version": "eosio::abi/1.1",
		"structs": [
			{"name": "empty", "fields": []},
			{"name": "later", "fields": [{"name": "x", "type": "uint8$"}]}
		]
	}`, DefaultOptions())
	for _, typ := range []string{"empty[]", "later[]"} {
		if _, err := zero.Decode(typ, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}); !errors.Is(err, abierrors.ErrTruncatedInput) {
			t.Errorf("Decode(%s) with a huge count = %v, want truncated_input", typ, err)
		}
	}
	v, err := zero.BinaryToJSON("empty[]", []byte{0x00})
	if err != nil || string(v) != `[]` {
		t.Errorf("Decode(empty[], 00) = %s, %v; want []", v, err)
	}
}

func TestConcurrentUse(t *testing.T) {
	tr := tokenTranscoder(t)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				bin, err := tr.JSONToBinary("transfer[]", []byte("["+transferJSON+"]"))
				if err != nil {
					errs <- err
					return
				}
				if _, err := tr.BinaryToJSON("transfer[]", bin); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
