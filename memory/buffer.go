package memory

import (
	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
)

// Buffer is a fixed-size byte region owned by Go. It is not safe for
// concurrent use.
type Buffer struct {
	data []byte
}

// New returns a zeroed buffer of size bytes. It panics if size is negative.
func New(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// From returns a buffer holding a copy of b.
func From(b []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), b...)}
}

// Size returns the buffer's length in bytes.
func (b *Buffer) Size() int { return len(b.data) }

// Read returns length bytes at offset. The slice aliases the buffer.
func (b *Buffer) Read(offset, length int) ([]byte, error) {
	if err := bounds(errors.PhaseRead, b, offset, length); err != nil {
		return nil, err
	}
	return b.data[offset : offset+length : offset+length], nil
}

// Write copies data into the buffer at offset.
func (b *Buffer) Write(offset int, data []byte) error {
	if err := bounds(errors.PhaseWrite, b, offset, len(data)); err != nil {
		return err
	}
	copy(b.data[offset:], data)
	return nil
}

// Bytes returns a copy of the buffer's contents.
func (b *Buffer) Bytes() []byte {
	return append([]byte(nil), b.data...)
}

// String returns the raw contents as a string.
func (b *Buffer) String() string {
	return string(b.data)
}

// Clear zeroes the buffer.
func (b *Buffer) Clear() {
	clear(b.data)
}

// ReadValue decodes a value of type t at offset.
func (b *Buffer) ReadValue(t ctype.Type, offset int) (any, error) {
	return Read(b, t, offset)
}

// WriteValue encodes v with type t at offset.
func (b *Buffer) WriteValue(t ctype.Type, offset int, v any) error {
	return Write(b, t, offset, v)
}

// ReadArray decodes n consecutive values of type t at offset.
func (b *Buffer) ReadArray(t ctype.Type, offset, n int) ([]any, error) {
	return ReadArray(b, t, offset, n)
}

// WriteArray encodes values consecutively with type t at offset.
func (b *Buffer) WriteArray(t ctype.Type, offset int, values []any) error {
	return WriteArray(b, t, offset, values)
}
