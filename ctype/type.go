package ctype

import (
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

// Type describes a binary encoding with a fixed byte size.
//
// Pack and Unpack allocate; Encode and Decode work on caller-provided slices
// of exactly Size() bytes and are what composite types and memory regions use.
// The NUL-terminated string type is the one variable-size exception, see String.
type Type interface {
	Name() string
	Kind() Kind
	Size() int
	Pack(v any) ([]byte, error)
	Unpack(b []byte) (any, error)
	Encode(dst []byte, v any) error
	Decode(src []byte) (any, error)
}

// Variable reports whether t has a variable encoded length.
func Variable(t Type) bool {
	s, ok := t.(*String)
	return ok && s.length == 0
}

// Zero returns the value Unpack would produce for all-zero bytes.
func Zero(t Type) any {
	switch tt := t.(type) {
	case *Scalar:
		return tt.fromBits(0)
	case *String:
		return ""
	case *Array:
		out := make([]any, tt.n)
		for i := range out {
			out[i] = Zero(tt.elem)
		}
		return out
	case *Struct:
		f := NewFields()
		for _, sf := range tt.fields {
			f.Set(sf.Name, Zero(sf.Type))
		}
		return f
	case *Union:
		f := NewFields()
		for _, uf := range tt.fields {
			f.Set(uf.Name, Zero(uf.Type))
		}
		return f
	}
	return nil
}

// Equal reports whether two types have the same encoding, ignoring names.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() || a.Size() != b.Size() {
		return false
	}
	switch at := a.(type) {
	case *Scalar:
		bt, ok := b.(*Scalar)
		return ok && at.order == bt.order
	case *String:
		bt, ok := b.(*String)
		return ok && at.length == bt.length
	case *Array:
		bt, ok := b.(*Array)
		return ok && at.n == bt.n && Equal(at.elem, bt.elem)
	case *Struct:
		bt, ok := b.(*Struct)
		return ok && fieldsEqual(at.fields, bt.fields)
	case *Union:
		bt, ok := b.(*Union)
		return ok && fieldsEqual(at.fields, bt.fields)
	}
	return a == b
}

func fieldsEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Offset != b[i].Offset || !Equal(a[i].Type, b[i].Type) {
			return false
		}
	}
	return true
}

func pack(t Type, v any) ([]byte, error) {
	buf := make([]byte, t.Size())
	if err := t.Encode(buf, v); err != nil {
		return nil, err
	}
	return buf, nil
}

func unpack(t Type, b []byte) (any, error) {
	if len(b) != t.Size() {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, t.Name(), t.Size(), len(b))
	}
	return t.Decode(b)
}

func checkDst(t Type, dst []byte) error {
	if len(dst) != t.Size() {
		return errors.LengthMismatch(errors.PhasePack, nil, t.Name(), t.Size(), len(dst))
	}
	return nil
}

func mismatch(t Type, v any) error {
	return errors.TypeMismatch(errors.PhasePack, nil, coerce.TypeName(v), t.Name())
}
