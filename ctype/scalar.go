package ctype

import (
	"fmt"
	"math"
	"strings"

	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

// Scalar is a fixed-size integer or float encoding with a byte order.
// Scalars are immutable.
type Scalar struct {
	name  string
	kind  Kind
	size  int
	order Order
}

// NewInt returns a signed integer scalar of 1, 2, 4 or 8 bytes.
func NewInt(name string, size int, order Order) (*Scalar, error) {
	return newScalar(name, KindInt, size, order)
}

// NewUint returns an unsigned integer scalar of 1, 2, 4 or 8 bytes.
func NewUint(name string, size int, order Order) (*Scalar, error) {
	return newScalar(name, KindUint, size, order)
}

// NewFloat returns an IEEE 754 single (4) or double (8) precision scalar.
func NewFloat(name string, size int, order Order) (*Scalar, error) {
	if size != 4 && size != 8 {
		return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("float size %d", size))
	}
	return newScalar(name, KindFloat, size, order)
}

func newScalar(name string, kind Kind, size int, order Order) (*Scalar, error) {
	switch size {
	case 1, 2, 4, 8:
	default:
		return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("%s size %d", kind, size))
	}
	if name == "" {
		name = scalarName(kind, size, order)
	}
	return &Scalar{name: name, kind: kind, size: size, order: order}, nil
}

func mustScalar(kind Kind, size int, order Order, name string) *Scalar {
	s, err := newScalar(name, kind, size, order)
	if err != nil {
		panic(err)
	}
	return s
}

func scalarName(kind Kind, size int, order Order) string {
	var base string
	switch kind {
	case KindFloat:
		base = fmt.Sprintf("float%d", size*8)
	case KindUint:
		base = fmt.Sprintf("uint%d", size*8)
	default:
		base = fmt.Sprintf("int%d", size*8)
	}
	if size == 1 {
		return base
	}
	return base + order.Suffix()
}

func (s *Scalar) Name() string { return s.name }
func (s *Scalar) Kind() Kind   { return s.kind }
func (s *Scalar) Size() int    { return s.size }

// Order returns the byte order the scalar encodes with.
func (s *Scalar) Order() Order { return s.order }

// Signed reports whether the scalar is a signed integer or a float.
func (s *Scalar) Signed() bool { return s.kind != KindUint }

// WithOrder returns a copy of s with a different byte order. The copy is
// named after s with the order's suffix unless name is given.
func (s *Scalar) WithOrder(order Order, name string) *Scalar {
	if name == "" {
		name = trimOrderSuffix(s.name) + order.Suffix()
	}
	return &Scalar{name: name, kind: s.kind, size: s.size, order: order}
}

// Renamed returns a copy of s with a different name.
func (s *Scalar) Renamed(name string) *Scalar {
	return &Scalar{name: name, kind: s.kind, size: s.size, order: s.order}
}

func trimOrderSuffix(name string) string {
	for _, suf := range []string{"_le", "_be", "_ne", "_net"} {
		if strings.HasSuffix(name, suf) {
			return strings.TrimSuffix(name, suf)
		}
	}
	return name
}

func (s *Scalar) Pack(v any) ([]byte, error) { return pack(s, v) }

func (s *Scalar) Unpack(b []byte) (any, error) { return unpack(s, b) }

// Encode writes v into dst. Integers wrap to the scalar's width; floats are
// converted to the scalar's precision.
func (s *Scalar) Encode(dst []byte, v any) error {
	if err := checkDst(s, dst); err != nil {
		return err
	}
	bits, err := s.toBits(v)
	if err != nil {
		return err
	}
	s.putBits(dst, bits)
	return nil
}

// Decode reads a value from src, returning int8..int64, uint8..uint64,
// float32 or float64 according to the scalar's kind and size.
func (s *Scalar) Decode(src []byte) (any, error) {
	if len(src) != s.size {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, s.name, s.size, len(src))
	}
	return s.fromBits(s.getBits(src)), nil
}

// Bits decodes src into the raw bit pattern, zero-extended to 64 bits.
func (s *Scalar) Bits(src []byte) uint64 {
	return s.getBits(src)
}

func (s *Scalar) toBits(v any) (uint64, error) {
	if s.kind == KindFloat {
		// Same-width floats pass through untouched so NaN payloads survive.
		switch f := v.(type) {
		case float32:
			if s.size == 4 {
				return uint64(math.Float32bits(f)), nil
			}
		case float64:
			if s.size == 8 {
				return math.Float64bits(f), nil
			}
		}
		f, ok := coerce.ToFloat64(v)
		if !ok {
			return 0, mismatch(s, v)
		}
		if s.size == 4 {
			return uint64(math.Float32bits(float32(f))), nil
		}
		return math.Float64bits(f), nil
	}
	bits, ok := coerce.ToBits(v)
	if !ok {
		return 0, mismatch(s, v)
	}
	return bits, nil
}

func (s *Scalar) putBits(dst []byte, bits uint64) {
	bo := s.order.ByteOrder()
	switch s.size {
	case 1:
		dst[0] = byte(bits)
	case 2:
		bo.PutUint16(dst, uint16(bits))
	case 4:
		bo.PutUint32(dst, uint32(bits))
	case 8:
		bo.PutUint64(dst, bits)
	}
}

func (s *Scalar) getBits(src []byte) uint64 {
	bo := s.order.ByteOrder()
	switch s.size {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(bo.Uint16(src))
	case 4:
		return uint64(bo.Uint32(src))
	default:
		return bo.Uint64(src)
	}
}

func (s *Scalar) fromBits(bits uint64) any {
	switch s.kind {
	case KindFloat:
		if s.size == 4 {
			return math.Float32frombits(uint32(bits))
		}
		return math.Float64frombits(bits)
	case KindUint:
		switch s.size {
		case 1:
			return uint8(bits)
		case 2:
			return uint16(bits)
		case 4:
			return uint32(bits)
		default:
			return bits
		}
	default:
		switch s.size {
		case 1:
			return int8(bits)
		case 2:
			return int16(bits)
		case 4:
			return int32(bits)
		default:
			return int64(bits)
		}
	}
}

func (s *Scalar) String() string { return s.name }
