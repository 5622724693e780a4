package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a LEB128 value exceeds 32 bits.
var ErrOverflow = errors.New("leb128: overflow")

// ShortReadError reports a read past the end of the input.
type ShortReadError struct {
	Want      int
	Remaining int
	Position  int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("at position %d: need %d bytes, %d remaining", e.Position, e.Want, e.Remaining)
}

// Reader reads ABI wire values from a byte slice. Every read is bounds-checked.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) need(n int) error {
	if n < 0 || n > r.Remaining() {
		return &ShortReadError{Want: n, Remaining: r.Remaining(), Position: r.pos}
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes into a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:r.pos+n])
	r.pos += n
	return buf, nil
}

// ReadU16 reads a little-endian uint16.
func (r *Reader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (r *Reader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadU64 reads a little-endian uint64.
func (r *Reader) ReadU64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadF32 reads a little-endian IEEE-754 float32.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF64 reads a little-endian IEEE-754 float64.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	return math.Float64frombits(v), err
}

// ReadVarUint32 reads an unsigned LEB128 encoded uint32.
func (r *Reader) ReadVarUint32() (uint32, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift >= 35 {
			return 0, r.wrapError(ErrOverflow)
		}
	}
	if result > math.MaxUint32 {
		return 0, r.wrapError(ErrOverflow)
	}
	return uint32(result), nil
}

// ReadVarInt32 reads a zig-zag mapped LEB128 int32.
func (r *Reader) ReadVarInt32() (int32, error) {
	v, err := r.ReadVarUint32()
	if err != nil {
		return 0, err
	}
	return int32(v>>1) ^ -int32(v&1), nil
}

// ReadLength reads a varuint32 length prefix and checks that at least
// minSize*length bytes remain. Elements are counted as at least one byte,
// so a zero-size element type cannot claim more entries than bytes left.
func (r *Reader) ReadLength(minSize int) (int, error) {
	n, err := r.ReadVarUint32()
	if err != nil {
		return 0, err
	}
	if minSize < 1 {
		minSize = 1
	}
	if uint64(n)*uint64(minSize) > uint64(r.Remaining()) {
		return 0, &ShortReadError{Want: int(n) * minSize, Remaining: r.Remaining(), Position: r.pos}
	}
	return int(n), nil
}

// ReadPrefixedBytes reads a varuint32 length followed by that many bytes.
func (r *Reader) ReadPrefixedBytes() ([]byte, error) {
	n, err := r.ReadLength(1)
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(n)
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at position %d: %w", r.pos, err)
}
