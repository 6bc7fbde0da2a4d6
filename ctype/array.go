package ctype

import (
	"fmt"
	"strconv"

	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

// Array is a homogeneous fixed-length sequence of elements.
type Array struct {
	elem Type
	name string
	n    int
	size int
}

// NewArray returns an array of n elements of elem.
func NewArray(elem Type, n int) (*Array, error) {
	if elem == nil {
		return nil, errors.InvalidInput(errors.PhaseCompile, "array element type is nil")
	}
	if Variable(elem) {
		return nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("array of variable-size %s", elem.Name()))
	}
	if n <= 0 {
		return nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("array length %d must be positive", n))
	}
	size, ok := coerce.SafeMul(elem.Size(), n)
	if !ok {
		return nil, errors.Overflow(errors.PhaseCompile, nil, n, elem.Name()+"[]")
	}
	return &Array{
		elem: elem,
		name: elem.Name() + "[" + strconv.Itoa(n) + "]",
		n:    n,
		size: size,
	}, nil
}

func (a *Array) Name() string { return a.name }
func (a *Array) Kind() Kind   { return KindArray }
func (a *Array) Size() int    { return a.size }

// Elem returns the element type.
func (a *Array) Elem() Type { return a.elem }

// Len returns the number of elements.
func (a *Array) Len() int { return a.n }

// Pack encodes a slice or array of exactly Len() values.
func (a *Array) Pack(v any) ([]byte, error) { return pack(a, v) }

// Unpack requires exactly Size() bytes and returns a []any.
func (a *Array) Unpack(b []byte) (any, error) { return unpack(a, b) }

func (a *Array) Encode(dst []byte, v any) error {
	if err := checkDst(a, dst); err != nil {
		return err
	}
	values, ok := coerce.ToSlice(v)
	if !ok {
		return mismatch(a, v)
	}
	if len(values) != a.n {
		return errors.LengthMismatch(errors.PhasePack, nil, a.name, a.n, len(values))
	}
	es := a.elem.Size()
	for i, ev := range values {
		if err := a.elem.Encode(dst[i*es:(i+1)*es], ev); err != nil {
			return errors.WithPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return nil
}

func (a *Array) Decode(src []byte) (any, error) {
	if len(src) != a.size {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, a.name, a.size, len(src))
	}
	es := a.elem.Size()
	out := make([]any, a.n)
	for i := range out {
		v, err := a.elem.Decode(src[i*es : (i+1)*es])
		if err != nil {
			return nil, errors.WithPath(err, "["+strconv.Itoa(i)+"]")
		}
		out[i] = v
	}
	return out, nil
}

// DecodePartial decodes as many whole elements as src holds. Positions
// without enough bytes are nil; the result always has Len() entries.
func (a *Array) DecodePartial(src []byte) ([]any, error) {
	es := a.elem.Size()
	out := make([]any, a.n)
	for i := range out {
		end := (i + 1) * es
		if end > len(src) {
			break
		}
		v, err := a.elem.Decode(src[i*es : end])
		if err != nil {
			return nil, errors.WithPath(err, "["+strconv.Itoa(i)+"]")
		}
		out[i] = v
	}
	return out, nil
}

func (a *Array) String() string { return a.name }
