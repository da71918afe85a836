package psd

import (
	"bytes"
	"encoding/binary"
)

// byteWriter accumulates the bytes of a PSD file in memory: big-endian
// scalar operations plus raw byte appends, with no seeking since a writer
// only ever appends.
type byteWriter struct {
	buf bytes.Buffer
}

func newByteWriter() *byteWriter {
	return &byteWriter{}
}

// Bytes returns the accumulated data.
func (w *byteWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *byteWriter) Len() int {
	return w.buf.Len()
}

// WriteBytes appends raw bytes verbatim.
func (w *byteWriter) WriteBytes(p []byte) {
	w.buf.Write(p)
}

// WriteString appends a string's raw bytes (ASCII signatures, tags).
func (w *byteWriter) WriteString(s string) {
	w.buf.WriteString(s)
}

// WriteZeros appends n zero bytes.
func (w *byteWriter) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(0)
	}
}

// WriteByte appends a single byte.
func (w *byteWriter) WriteByte(b byte) {
	w.buf.WriteByte(b)
}

// WriteUint16 appends a big-endian uint16.
func (w *byteWriter) WriteUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteInt16 appends a big-endian int16.
func (w *byteWriter) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

// WriteUint32 appends a big-endian uint32.
func (w *byteWriter) WriteUint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteInt32 appends a big-endian int32.
func (w *byteWriter) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// padEven zero-pads the buffer out to an even byte count.
func (w *byteWriter) padEven() {
	if w.buf.Len()%2 != 0 {
		w.buf.WriteByte(0)
	}
}
