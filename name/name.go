package name

import (
	"strconv"

	"github.com/wippyai/abieos/errors"
)

// Name is a 64-bit account, action, or table identifier.
type Name uint64

// MaxLength is the longest name string that can be encoded.
const MaxLength = 13

const charmap = ".12345abcdefghijklmnopqrstuvwxyz"

func charToSymbol(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, true
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, true
	case c == '.':
		return 0, true
	}
	return 0, false
}

// FromString packs s into a Name. The first 12 characters take 5 bits each
// from the high end; a 13th character takes the low 4 bits and must be one of
// ".12345abcdefghij".
func FromString(s string) (Name, error) {
	if len(s) > MaxLength {
		return 0, errors.NameTooLong(s)
	}

	var value uint64
	for i := 0; i < len(s); i++ {
		sym, ok := charToSymbol(s[i])
		if !ok {
			return 0, errors.InvalidNameCharacter(s, i)
		}
		if i < 12 {
			value |= (sym & 0x1f) << (64 - 5*(i+1))
		} else {
			if sym > 0x0f {
				return 0, errors.InvalidNameCharacter(s, i)
			}
			value |= sym
		}
	}
	return Name(value), nil
}

// MustFromString is FromString for compile-time constants; it panics on error.
func MustFromString(s string) Name {
	n, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the canonical form with trailing dots removed.
func (n Name) String() string {
	var buf [MaxLength]byte
	tmp := uint64(n)
	for i := 0; i < MaxLength; i++ {
		if i == 0 {
			buf[12] = charmap[tmp&0x0f]
			tmp >>= 4
		} else {
			buf[12-i] = charmap[tmp&0x1f]
			tmp >>= 5
		}
	}

	end := MaxLength
	for end > 0 && buf[end-1] == '.' {
		end--
	}
	return string(buf[:end])
}

// Uint64 returns the raw integer value.
func (n Name) Uint64() uint64 {
	return uint64(n)
}

// Parse accepts either a name string or its decimal integer form.
func Parse(s string) (Name, error) {
	n, err := FromString(s)
	if err == nil {
		return n, nil
	}
	if v, perr := strconv.ParseUint(s, 10, 64); perr == nil {
		return Name(v), nil
	}
	return 0, err
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
