package ctype

import (
	"bytes"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/wippyai/ctypes/errors"
)

func scalar(t *testing.T, name string) Type {
	t.Helper()
	typ, ok := ScalarTable(Little)[name]
	if !ok {
		t.Fatalf("no scalar %q", name)
	}
	return typ
}

func TestStruct_Layout(t *testing.T) {
	s, err := NewStruct("", Field{Name: "a", Type: scalar(t, "int8")}, Field{Name: "b", Type: scalar(t, "int32")})
	if err != nil {
		t.Fatalf("NewStruct failed: %v", err)
	}
	if s.Size() != 5 {
		t.Errorf("Size = %d, want 5", s.Size())
	}
	if off, _ := s.Offset("b"); off != 1 {
		t.Errorf("Offset(b) = %d, want 1", off)
	}
	if s.Name() != "struct { int8 a; int32 b }" {
		t.Errorf("Name = %q", s.Name())
	}

	b, err := s.Pack(map[string]any{"a": 5, "b": -1})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	want := []byte{5, 0xff, 0xff, 0xff, 0xff}
	if !bytes.Equal(b, want) {
		t.Errorf("Pack = % x, want % x", b, want)
	}

	v, err := s.Unpack(b)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	f := v.(*Fields)
	if !reflect.DeepEqual(f.Names(), []string{"a", "b"}) {
		t.Errorf("Names = %v", f.Names())
	}
	if a, _ := f.Get("a"); a != int8(5) {
		t.Errorf("a = %#v, want int8(5)", a)
	}
	if bv, _ := f.Get("b"); bv != int32(-1) {
		t.Errorf("b = %#v, want int32(-1)", bv)
	}

	again, err := s.Pack(v)
	if err != nil {
		t.Fatalf("Pack(unpacked) failed: %v", err)
	}
	if !bytes.Equal(again, b) {
		t.Errorf("round trip = % x, want % x", again, b)
	}
}

func TestStruct_Values(t *testing.T) {
	s, err := NewStruct("pair", Field{Name: "x", Type: scalar(t, "uint16_be")}, Field{Name: "y", Type: scalar(t, "uint16_be")})
	if err != nil {
		t.Fatalf("NewStruct failed: %v", err)
	}

	tests := []struct {
		name    string
		value   any
		want    []byte
		errKind errors.Kind
	}{
		{name: "map", value: map[string]any{"x": 1, "y": 2}, want: []byte{0, 1, 0, 2}},
		{name: "fields", value: FieldsOf("y", 2, "x", 1), want: []byte{0, 1, 0, 2}},
		{name: "positional", value: []any{3, 4}, want: []byte{0, 3, 0, 4}},
		{name: "missing field zeroed", value: map[string]any{"y": 9}, want: []byte{0, 0, 0, 9}},
		{name: "nil", value: nil, want: []byte{0, 0, 0, 0}},
		{name: "unknown field", value: map[string]any{"z": 1}, errKind: errors.KindLengthMismatch},
		{name: "positional count", value: []any{1}, errKind: errors.KindLengthMismatch},
		{name: "wrong shape", value: 42, errKind: errors.KindTypeMismatch},
		{name: "bad field value", value: map[string]any{"x": "a"}, errKind: errors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Pack(tt.value)
			if tt.errKind != "" {
				if !errors.IsKind(err, tt.errKind) {
					t.Fatalf("Pack error = %v, want kind %s", err, tt.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Pack = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestStruct_ErrorPath(t *testing.T) {
	inner, _ := NewStruct("inner", Field{Name: "v", Type: scalar(t, "uint8")})
	outer, _ := NewStruct("outer", Field{Name: "in", Type: inner})

	_, err := outer.Pack(map[string]any{"in": map[string]any{"v": "x"}})
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %v is not *errors.Error", err)
	}
	if !reflect.DeepEqual(e.Path, []string{"in", "v"}) {
		t.Errorf("Path = %v, want [in v]", e.Path)
	}
}

func TestStruct_Invalid(t *testing.T) {
	u8 := scalar(t, "uint8")
	tests := []struct {
		name    string
		fields  []Field
		errKind errors.Kind
	}{
		{"no fields", nil, errors.KindInvalidInput},
		{"duplicate", []Field{{Name: "a", Type: u8}, {Name: "a", Type: u8}}, errors.KindDuplicateField},
		{"empty name", []Field{{Type: u8}}, errors.KindInvalidInput},
		{"nil type", []Field{{Name: "a"}}, errors.KindInvalidInput},
		{"variable string", []Field{{Name: "s", Type: CString}}, errors.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewStruct("", tt.fields...); !errors.IsKind(err, tt.errKind) {
				t.Errorf("NewStruct error = %v, want %s", err, tt.errKind)
			}
			if _, err := NewUnion("", tt.fields...); !errors.IsKind(err, tt.errKind) {
				t.Errorf("NewUnion error = %v, want %s", err, tt.errKind)
			}
		})
	}
}

func TestUnion_Aliasing(t *testing.T) {
	u, err := NewUnion("", Field{Name: "i", Type: scalar(t, "int32_le")}, Field{Name: "b", Type: scalar(t, "uint8")})
	if err != nil {
		t.Fatalf("NewUnion failed: %v", err)
	}
	if u.Size() != 4 {
		t.Errorf("Size = %d, want 4", u.Size())
	}

	raw, err := u.PackField("i", 0x01020304)
	if err != nil {
		t.Fatalf("PackField failed: %v", err)
	}
	if !bytes.Equal(raw, []byte{4, 3, 2, 1}) {
		t.Errorf("PackField = % x", raw)
	}
	b, err := u.UnpackField("b", raw)
	if err != nil {
		t.Fatalf("UnpackField failed: %v", err)
	}
	if b != uint8(4) {
		t.Errorf("b = %#v, want uint8(4)", b)
	}

	small, err := u.PackField("b", 0xaa)
	if err != nil {
		t.Fatalf("PackField failed: %v", err)
	}
	if !bytes.Equal(small, []byte{0xaa, 0, 0, 0}) {
		t.Errorf("PackField(b) = % x, want zero-extended", small)
	}

	v, err := u.Unpack(raw)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	f := v.(*Fields)
	if i, _ := f.Get("i"); i != int32(0x01020304) {
		t.Errorf("i = %#v", i)
	}
	if bb, _ := f.Get("b"); bb != uint8(4) {
		t.Errorf("b = %#v", bb)
	}
}

func TestUnion_Pack(t *testing.T) {
	u, _ := NewUnion("u", Field{Name: "w", Type: scalar(t, "uint16_be")}, Field{Name: "c", Type: scalar(t, "uint8")})

	got, err := u.Pack(FieldsOf("w", 0x0102, "c", 0xff))
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xff, 0x02}) {
		t.Errorf("overlapping writes = % x, want ff 02", got)
	}

	if _, err := u.Pack(map[string]any{"w": 1, "c": 2}); !errors.IsKind(err, errors.KindLengthMismatch) {
		t.Errorf("two-entry map error = %v, want length mismatch", err)
	}
	if _, err := u.PackField("nope", 1); !errors.IsKind(err, errors.KindFieldUnknown) {
		t.Errorf("PackField(unknown) error = %v", err)
	}
	if _, err := u.UnpackField("w", []byte{1}); !errors.IsKind(err, errors.KindLengthMismatch) {
		t.Errorf("UnpackField(short) error = %v", err)
	}
}

func TestArray(t *testing.T) {
	a, err := NewArray(scalar(t, "uint16_le"), 3)
	if err != nil {
		t.Fatalf("NewArray failed: %v", err)
	}
	if a.Size() != 6 || a.Name() != "uint16_le[3]" {
		t.Errorf("Size/Name = %d/%q", a.Size(), a.Name())
	}

	b, err := a.Pack([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if !bytes.Equal(b, []byte{1, 0, 2, 0, 3, 0}) {
		t.Errorf("Pack = % x", b)
	}
	v, err := a.Unpack(b)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if !reflect.DeepEqual(v, []any{uint16(1), uint16(2), uint16(3)}) {
		t.Errorf("Unpack = %#v", v)
	}

	if _, err := a.Pack([]any{1, 2}); !errors.IsKind(err, errors.KindLengthMismatch) {
		t.Errorf("short slice error = %v, want length mismatch", err)
	}
	if _, err := a.Unpack(b[:4]); !errors.IsKind(err, errors.KindLengthMismatch) {
		t.Errorf("short bytes error = %v, want length mismatch", err)
	}

	partial, err := a.DecodePartial([]byte{1, 0, 2, 0, 3})
	if err != nil {
		t.Fatalf("DecodePartial failed: %v", err)
	}
	if !reflect.DeepEqual(partial, []any{uint16(1), uint16(2), nil}) {
		t.Errorf("DecodePartial = %#v", partial)
	}
}

func TestArray_Invalid(t *testing.T) {
	if _, err := NewArray(scalar(t, "uint8"), 0); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("zero length error = %v", err)
	}
	if _, err := NewArray(CString, 2); !errors.IsKind(err, errors.KindUnsupported) {
		t.Errorf("string element error = %v", err)
	}
	if _, err := NewArray(nil, 2); !errors.IsKind(err, errors.KindInvalidInput) {
		t.Errorf("nil element error = %v", err)
	}
}

func TestArray_Nested(t *testing.T) {
	pt, _ := NewStruct("pt", Field{Name: "x", Type: scalar(t, "int8")}, Field{Name: "y", Type: scalar(t, "int8")})
	a, _ := NewArray(pt, 2)
	b, err := a.Pack([]any{map[string]any{"x": 1, "y": 2}, []any{3, 4}})
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Errorf("Pack = % x", b)
	}
	zero := Zero(a).([]any)
	if x, _ := zero[1].(*Fields).Get("x"); x != int8(0) {
		t.Errorf("Zero element x = %#v, want int8(0)", x)
	}
}

func TestEqual(t *testing.T) {
	a, _ := NewStruct("a", Field{Name: "x", Type: scalar(t, "uint32_le")})
	b, _ := NewStruct("b", Field{Name: "x", Type: scalar(t, "uint32_le")})
	c, _ := NewStruct("c", Field{Name: "x", Type: scalar(t, "uint32_be")})
	if !Equal(a, b) {
		t.Error("structs differing only by name should be equal")
	}
	if Equal(a, c) {
		t.Error("structs with different byte order should differ")
	}
}

func TestFields_ZeroValue(t *testing.T) {
	var f Fields
	f.Set("a", 1).Set("b", 2).Set("a", 3)

	if got := f.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
	if v, ok := f.Get("a"); !ok || v != 3 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d", f.Len())
	}
}
