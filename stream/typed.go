package stream

import (
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

// Scalar is the set of Go types scalar reads decode into.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Read reads one value of the named type and asserts it to T. It returns
// nil at end of input.
func Read[T any](s *Stream, name string) (*T, error) {
	v, err := s.ReadValue(name)
	if v == nil || err != nil {
		return nil, err
	}
	x, ok := v.(T)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseRead, nil, coerce.TypeName(v), name)
	}
	return &x, nil
}

// ReadArray reads n values of the named type. Entries the input did not
// fully cover are nil.
func ReadArray[T any](s *Stream, name string, n int) ([]*T, error) {
	vals, err := s.ReadArrayOf(name, n)
	if err != nil {
		return nil, err
	}
	out := make([]*T, len(vals))
	for i, v := range vals {
		if v == nil {
			continue
		}
		x, ok := v.(T)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseRead, nil, coerce.TypeName(v), name)
		}
		out[i] = &x
	}
	return out, nil
}

// Write packs v with the named type.
func Write[T Scalar](s *Stream, name string, v T) (*Stream, error) {
	return s.WriteValue(name, v)
}

// WriteArray packs values with the named element type in one request.
func WriteArray[T Scalar](s *Stream, name string, values []T) (*Stream, error) {
	return s.WriteArrayOf(name, values)
}
