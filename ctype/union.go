package ctype

import (
	"github.com/wippyai/ctypes/errors"
)

// Union overlays its fields at offset 0. Its size is that of the largest field.
type Union struct {
	index  map[string]int
	name   string
	fields []Field
	size   int
}

// NewUnion builds a union from fields. An empty name yields a generated one.
func NewUnion(name string, fields ...Field) (*Union, error) {
	laid, index, err := compileFields(fields)
	if err != nil {
		return nil, err
	}
	size := 0
	for _, f := range laid {
		if f.Type.Size() > size {
			size = f.Type.Size()
		}
	}
	if name == "" {
		name = describe("union", laid)
	}
	return &Union{name: name, fields: laid, index: index, size: size}, nil
}

func (u *Union) Name() string { return u.name }
func (u *Union) Kind() Kind   { return KindUnion }
func (u *Union) Size() int    { return u.size }

// Fields returns the fields in declaration order; every Offset is 0.
func (u *Union) Fields() []Field {
	return append([]Field(nil), u.fields...)
}

// Field returns the named field.
func (u *Union) Field(name string) (Field, bool) {
	i, ok := u.index[name]
	if !ok {
		return Field{}, false
	}
	return u.fields[i], true
}

// PackField encodes v with the named field's type at offset 0 and returns
// Size() bytes, zero-extended past the field.
func (u *Union) PackField(name string, v any) ([]byte, error) {
	buf := make([]byte, u.size)
	if err := u.EncodeField(buf, name, v); err != nil {
		return nil, err
	}
	return buf, nil
}

// EncodeField writes v with the named field's type into the first bytes of
// dst. Bytes past the field are left untouched, so stale data from a wider
// field survives, matching overlapping storage.
func (u *Union) EncodeField(dst []byte, name string, v any) error {
	f, ok := u.Field(name)
	if !ok {
		return errors.FieldUnknown(errors.PhasePack, []string{u.name}, name)
	}
	if len(dst) < f.Type.Size() {
		return errors.OutOfBounds(errors.PhasePack, 0, f.Type.Size(), len(dst))
	}
	if err := f.Type.Encode(dst[:f.Type.Size()], v); err != nil {
		return errors.WithPath(err, name)
	}
	return nil
}

// UnpackField decodes the first bytes of b with the named field's type.
func (u *Union) UnpackField(name string, b []byte) (any, error) {
	f, ok := u.Field(name)
	if !ok {
		return nil, errors.FieldUnknown(errors.PhaseUnpack, []string{u.name}, name)
	}
	if len(b) < f.Type.Size() {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, []string{name}, f.Type.Name(), f.Type.Size(), len(b))
	}
	v, err := f.Type.Decode(b[:f.Type.Size()])
	if err != nil {
		return nil, errors.WithPath(err, name)
	}
	return v, nil
}

// Pack encodes a *Fields or map[string]any naming the fields to write. A map
// may name at most one field; *Fields entries are written in order, so the
// last one wins where they overlap.
func (u *Union) Pack(v any) ([]byte, error) { return pack(u, v) }

// Unpack requires exactly Size() bytes and decodes every field from offset 0.
func (u *Union) Unpack(b []byte) (any, error) { return unpack(u, b) }

func (u *Union) Encode(dst []byte, v any) error {
	if err := checkDst(u, dst); err != nil {
		return err
	}
	clear(dst)
	switch x := v.(type) {
	case nil:
		return nil
	case *Fields:
		for _, n := range x.Names() {
			fv, _ := x.Get(n)
			if err := u.EncodeField(dst, n, fv); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		if len(x) > 1 {
			return errors.LengthMismatch(errors.PhasePack, nil, u.name, 1, len(x))
		}
		for n, fv := range x {
			if err := u.EncodeField(dst, n, fv); err != nil {
				return err
			}
		}
		return nil
	}
	return mismatch(u, v)
}

func (u *Union) Decode(src []byte) (any, error) {
	if len(src) != u.size {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, u.name, u.size, len(src))
	}
	out := NewFields()
	for _, f := range u.fields {
		v, err := f.Type.Decode(src[:f.Type.Size()])
		if err != nil {
			return nil, errors.WithPath(err, f.Name)
		}
		out.Set(f.Name, v)
	}
	return out, nil
}

func (u *Union) String() string { return u.name }
