package coerce

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		input   any
		name    string
		bits    int
		want    int64
		wantErr error
	}{
		{json.Number("42"), "json number", 8, 42, nil},
		{json.Number("-128"), "int8 min", 8, -128, nil},
		{json.Number("127"), "int8 max", 8, 127, nil},
		{json.Number("128"), "int8 overflow", 8, 0, ErrRange},
		{json.Number("-129"), "int8 underflow", 8, 0, ErrRange},
		{"-9223372036854775808", "int64 min string", 64, math.MinInt64, nil},
		{"9223372036854775808", "int64 overflow string", 64, 0, ErrRange},
		{json.Number("1e3"), "exponent integral", 32, 1000, nil},
		{json.Number("1.5"), "fractional", 32, 0, ErrShape},
		{float64(7), "float64 integral", 16, 7, nil},
		{float64(7.25), "float64 fractional", 16, 0, ErrShape},
		{int(-5), "go int", 32, -5, nil},
		{uint64(math.MaxUint64), "go uint64 overflow", 64, 0, ErrRange},
		{true, "bool", 32, 0, ErrShape},
		{"abc", "non numeric string", 32, 0, ErrShape},
		{"", "empty string", 32, 0, ErrShape},
		{nil, "null", 32, 0, ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Int(tt.input, tt.bits)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Int(%v, %d) error = %v, want %v", tt.input, tt.bits, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Int(%v, %d) = %d, want %d", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

func TestUint(t *testing.T) {
	tests := []struct {
		input   any
		name    string
		bits    int
		want    uint64
		wantErr error
	}{
		{json.Number("255"), "uint8 max", 8, 255, nil},
		{json.Number("256"), "uint8 overflow", 8, 0, ErrRange},
		{json.Number("-1"), "negative", 32, 0, ErrRange},
		{"18446744073709551615", "uint64 max string", 64, math.MaxUint64, nil},
		{"18446744073709551616", "uint64 overflow", 64, 0, ErrRange},
		{uint32(9), "go uint32", 32, 9, nil},
		{" 12 ", "padded string", 16, 12, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Uint(tt.input, tt.bits)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Uint(%v, %d) error = %v, want %v", tt.input, tt.bits, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Uint(%v, %d) = %d, want %d", tt.input, tt.bits, got, tt.want)
			}
		})
	}
}

func TestBig(t *testing.T) {
	want, _ := new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	got, err := Big("-170141183460469231731687303715884105728")
	if err != nil || got.Cmp(want) != 0 {
		t.Errorf("Big(int128 min) = %v, %v", got, err)
	}
	if _, err := Big([]any{}); !errors.Is(err, ErrShape) {
		t.Errorf("Big(array) error = %v, want ErrShape", err)
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input   any
		name    string
		want    float64
		wantErr error
	}{
		{json.Number("1.5"), "json number", 1.5, nil},
		{"-0.25", "string", -0.25, nil},
		{float64(3), "float64", 3, nil},
		{int(2), "go int", 2, nil},
		{"inf", "inf", math.Inf(1), nil},
		{"-INF", "neg inf", math.Inf(-1), nil},
		{"x", "garbage", 0, ErrShape},
		{false, "bool", 0, ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Float(tt.input, 64)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Float(%v) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Float(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	nan, err := Float("nan", 64)
	if err != nil || !math.IsNaN(nan) {
		t.Errorf("Float(nan) = %v, %v", nan, err)
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{true, "bool"},
		{"s", "string"},
		{json.Number("1"), "number"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.input); got != tt.want {
			t.Errorf("TypeName(%#v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
