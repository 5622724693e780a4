package binary

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer accumulates ABI wire values.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns a copy of the written bytes.
func (w *Writer) Bytes() []byte {
	return bytes.Clone(w.buf.Bytes())
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Truncate discards all but the first n bytes.
func (w *Writer) Truncate(n int) {
	w.buf.Truncate(n)
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16 writes a little-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32 writes a little-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU64 writes a little-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteF32 writes a little-endian IEEE-754 float32.
func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

// WriteF64 writes a little-endian IEEE-754 float64.
func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WriteVarUint32 writes an unsigned LEB128 encoded uint32.
func (w *Writer) WriteVarUint32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

// WriteVarInt32 writes a zig-zag mapped LEB128 int32.
func (w *Writer) WriteVarInt32(v int32) {
	w.WriteVarUint32(uint32(v<<1) ^ uint32(v>>31))
}

// WritePrefixedBytes writes a varuint32 length followed by data.
func (w *Writer) WritePrefixedBytes(data []byte) {
	w.WriteVarUint32(uint32(len(data)))
	w.buf.Write(data)
}

// WriteString writes a varuint32 length followed by the string bytes.
func (w *Writer) WriteString(s string) {
	w.WriteVarUint32(uint32(len(s)))
	w.buf.WriteString(s)
}
