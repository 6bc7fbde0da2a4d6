package ctype

import (
	"bytes"
	"fmt"

	"github.com/wippyai/ctypes/errors"
)

// String is a character-data encoding.
//
// A String with a positive length is a fixed-size field: values are padded
// with NUL bytes on pack, and trailing NUL padding is removed on unpack.
//
// A String with length 0 is the NUL-terminated pseudo-type. Its encoded
// length depends on the value; Size reports 1, the terminator alone.
type String struct {
	name   string
	length int
}

// CString is the NUL-terminated string type.
var CString = &String{name: "string"}

// NewFixedString returns a fixed-size string field of n bytes.
func NewFixedString(n int) (*String, error) {
	if n <= 0 {
		return nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("fixed string length %d must be positive", n))
	}
	return &String{name: fmt.Sprintf("char[%d]", n), length: n}, nil
}

func (s *String) Name() string { return s.name }
func (s *String) Kind() Kind   { return KindString }

func (s *String) Size() int {
	if s.length == 0 {
		return 1
	}
	return s.length
}

// Len returns the fixed length, or 0 for the NUL-terminated type.
func (s *String) Len() int { return s.length }

// Pack encodes v. For the NUL-terminated type a terminator is appended
// unless v already ends with one.
func (s *String) Pack(v any) ([]byte, error) {
	if s.length > 0 {
		return pack(s, v)
	}
	b, err := s.bytesOf(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, b...)
	if len(b) == 0 || b[len(b)-1] != 0 {
		out = append(out, 0)
	}
	return out, nil
}

// Unpack decodes b. The NUL-terminated type accepts any length and stops at
// the first NUL.
func (s *String) Unpack(b []byte) (any, error) {
	if s.length > 0 {
		return unpack(s, b)
	}
	return s.Decode(b)
}

func (s *String) Encode(dst []byte, v any) error {
	b, err := s.bytesOf(v)
	if err != nil {
		return err
	}
	if s.length == 0 {
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		if len(b)+1 > len(dst) {
			return errors.OutOfBounds(errors.PhasePack, 0, len(b)+1, len(dst))
		}
	} else {
		if err := checkDst(s, dst); err != nil {
			return err
		}
		if len(b) > s.length {
			return errors.Overflow(errors.PhasePack, nil, fmt.Sprintf("%d bytes", len(b)), s.name)
		}
	}
	n := copy(dst, b)
	clear(dst[n:])
	return nil
}

func (s *String) Decode(src []byte) (any, error) {
	if s.length == 0 {
		if i := bytes.IndexByte(src, 0); i >= 0 {
			return string(src[:i]), nil
		}
		return string(src), nil
	}
	if len(src) != s.length {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, s.name, s.length, len(src))
	}
	return string(bytes.TrimRight(src, "\x00")), nil
}

func (s *String) bytesOf(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case nil:
		return nil, nil
	}
	return nil, mismatch(s, v)
}

func (s *String) String() string { return s.name }
