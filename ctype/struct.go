package ctype

import (
	"fmt"
	"strings"

	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

// Field is a named member of a struct or union. Offset is computed by the
// constructor and ignored on input.
type Field struct {
	Type   Type
	Name   string
	Offset int
}

// Struct is an ordered sequence of fields packed contiguously: each field's
// offset is the sum of the sizes of the fields before it.
type Struct struct {
	index  map[string]int
	name   string
	fields []Field
	size   int
}

// NewStruct builds a struct from fields in declaration order. An empty name
// yields a generated one.
func NewStruct(name string, fields ...Field) (*Struct, error) {
	laid, index, err := compileFields(fields)
	if err != nil {
		return nil, err
	}
	offset := 0
	for i := range laid {
		laid[i].Offset = offset
		next, ok := coerce.SafeAdd(offset, laid[i].Type.Size())
		if !ok {
			return nil, errors.Overflow(errors.PhaseCompile, []string{laid[i].Name}, offset, "struct size")
		}
		offset = next
	}
	if name == "" {
		name = describe("struct", laid)
	}
	return &Struct{name: name, fields: laid, index: index, size: offset}, nil
}

func compileFields(fields []Field) ([]Field, map[string]int, error) {
	if len(fields) == 0 {
		return nil, nil, errors.InvalidInput(errors.PhaseCompile, "no fields")
	}
	laid := make([]Field, len(fields))
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return nil, nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("field %d has no name", i))
		}
		if _, dup := index[f.Name]; dup {
			return nil, nil, errors.DuplicateField(f.Name)
		}
		if f.Type == nil {
			return nil, nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("field %q has no type", f.Name))
		}
		if Variable(f.Type) {
			return nil, nil, errors.Unsupported(errors.PhaseCompile, fmt.Sprintf("field %q has variable-size type %s", f.Name, f.Type.Name()))
		}
		index[f.Name] = i
		laid[i] = Field{Name: f.Name, Type: f.Type}
	}
	return laid, index, nil
}

func describe(kw string, fields []Field) string {
	var b strings.Builder
	b.WriteString(kw)
	b.WriteString(" { ")
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Type.Name())
		b.WriteByte(' ')
		b.WriteString(f.Name)
	}
	b.WriteString(" }")
	return b.String()
}

func (s *Struct) Name() string { return s.name }
func (s *Struct) Kind() Kind   { return KindStruct }
func (s *Struct) Size() int    { return s.size }

// Fields returns the laid-out fields in declaration order.
func (s *Struct) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Field returns the named field.
func (s *Struct) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Offset returns the byte offset of the named field.
func (s *Struct) Offset(name string) (int, bool) {
	f, ok := s.Field(name)
	return f.Offset, ok
}

// Pack encodes a map[string]any, *Fields or positional []any. Missing fields
// are zero; names the struct does not declare are an error.
func (s *Struct) Pack(v any) ([]byte, error) { return pack(s, v) }

// Unpack requires exactly Size() bytes and returns *Fields in declaration order.
func (s *Struct) Unpack(b []byte) (any, error) { return unpack(s, b) }

func (s *Struct) Encode(dst []byte, v any) error {
	if err := checkDst(s, dst); err != nil {
		return err
	}
	lookup, err := fieldLookup(s, s.index, len(s.fields), v)
	if err != nil {
		return err
	}
	for i, f := range s.fields {
		part := dst[f.Offset : f.Offset+f.Type.Size()]
		fv, ok := lookup(i, f.Name)
		if !ok {
			clear(part)
			continue
		}
		if err := f.Type.Encode(part, fv); err != nil {
			return errors.WithPath(err, f.Name)
		}
	}
	return nil
}

func (s *Struct) Decode(src []byte) (any, error) {
	if len(src) != s.size {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, s.name, s.size, len(src))
	}
	out := NewFields()
	for _, f := range s.fields {
		v, err := f.Type.Decode(src[f.Offset : f.Offset+f.Type.Size()])
		if err != nil {
			return nil, errors.WithPath(err, f.Name)
		}
		out.Set(f.Name, v)
	}
	return out, nil
}

func (s *Struct) String() string { return s.name }

// fieldLookup normalizes the accepted value shapes into a per-field getter.
func fieldLookup(t Type, index map[string]int, count int, v any) (func(i int, name string) (any, bool), error) {
	switch x := v.(type) {
	case *Fields:
		for _, n := range x.Names() {
			if _, ok := index[n]; !ok {
				return nil, unknownField(t, n)
			}
		}
		return func(_ int, name string) (any, bool) { return x.Get(name) }, nil
	case map[string]any:
		for n := range x {
			if _, ok := index[n]; !ok {
				return nil, unknownField(t, n)
			}
		}
		return func(_ int, name string) (any, bool) {
			fv, ok := x[name]
			return fv, ok
		}, nil
	case []any:
		if len(x) != count {
			return nil, errors.LengthMismatch(errors.PhasePack, nil, t.Name(), count, len(x))
		}
		return func(i int, _ string) (any, bool) { return x[i], true }, nil
	case nil:
		return func(int, string) (any, bool) { return nil, false }, nil
	}
	return nil, mismatch(t, v)
}

// unknownField reports a field set inconsistent with the declared shape.
func unknownField(t Type, name string) error {
	return errors.New(errors.PhasePack, errors.KindLengthMismatch).
		TypeName(t.Name()).
		Path(name).
		Detail("field %q is not declared", name).
		Build()
}
