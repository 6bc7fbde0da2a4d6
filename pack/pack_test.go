package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/template"
)

var (
	le64 = platform.Profile{Endian: platform.EndianLittle, Arch: platform.ArchX86_64, OS: platform.OSLinux}
	be32 = platform.Profile{Arch: platform.ArchPPC, OS: platform.OSLinux}
)

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		v        int64
		typeName string
		p        platform.Profile
		want     []byte
	}{
		{"int16 le", -2, "int16", le64, []byte{0xfe, 0xff}},
		{"int16 be", -2, "int16", be32, []byte{0xff, 0xfe}},
		{"long lp64", 1, "long", le64, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"long ilp32", 1, "long", be32, []byte{0, 0, 0, 1}},
		{"wraps", 0x1ff, "uint8", le64, []byte{0xff}},
		{"network port", 80, "in_port_t", le64, []byte{0, 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Int(tt.v, tt.typeName, tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestUnpackInt(t *testing.T) {
	v, err := UnpackInt([]byte{0xfe, 0xff}, "int16", le64)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), v)

	v, err = UnpackInt([]byte{0xfe, 0xff}, "uint16", le64)
	require.NoError(t, err)
	assert.Equal(t, int64(0xfffe), v)

	_, err = UnpackInt([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "uint64", le64)
	assert.True(t, errors.IsKind(err, errors.KindOverflow))

	_, err = UnpackInt([]byte{1}, "int16", le64)
	assert.True(t, errors.IsKind(err, errors.KindLengthMismatch))
}

func TestUint(t *testing.T) {
	b, err := Uint(0x01020304, "uint32_be", le64)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)

	v, err := UnpackUint(b, "uint32_be", le64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x01020304), v)

	v, err = UnpackUint([]byte{0x7f}, "char", le64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7f), v)

	_, err = UnpackUint([]byte{0xff}, "char", le64)
	assert.True(t, errors.IsKind(err, errors.KindOverflow))
}

func TestFloat(t *testing.T) {
	b, err := Float(1.5, "double", be32)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x3f, 0xf8, 0, 0, 0, 0, 0, 0}, b)

	v, err := UnpackFloat(b, "double", be32)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	b, err = Float(0.25, "float32_le", le64)
	require.NoError(t, err)
	v, err = UnpackFloat(b, "float32_le", le64)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
}

func TestString(t *testing.T) {
	b, err := String("hi", "char[4]", le64)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi\x00\x00"), b)

	s, err := UnpackString(b, "char[4]", le64)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	b, err = String("hi", "string", le64)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi\x00"), b)

	s, err = UnpackString(b, "string", le64)
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	_, err = String("hello", "char[4]", le64)
	assert.True(t, errors.IsKind(err, errors.KindOverflow))
}

func TestKindChecks(t *testing.T) {
	_, err := Int(1, "double", le64)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
	_, err = Float(1, "int", le64)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
	_, err = String("x", "uint8", le64)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
	_, err = UnpackUint([]byte{0}, "bogus_t", le64)
	assert.True(t, errors.IsKind(err, errors.KindUnknownType))
	_, err = Int(1, "int", platform.Profile{Arch: "vax"})
	assert.True(t, errors.IsKind(err, errors.KindInvalidPlatform))
}

func TestValues(t *testing.T) {
	b, err := Values("C n a3", 1, 0x0203, "ab")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 'a', 'b', 0}, b)

	vals, err := UnpackValues("C n a3", b)
	require.NoError(t, err)
	assert.Equal(t, []any{uint8(1), uint16(0x0203), "ab\x00"}, vals)

	b, err = ValuesFor(be32, []string{"long", "uint16"}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1, 0, 2}, b)

	vals, err = UnpackValuesFor(le64, []any{"size_t", []any{"uint8", 2}}, []byte{1, 0, 0, 0, 0, 0, 0, 0, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, []any{uint64(1), []any{uint8(7), uint8(8)}}, vals)

	tmpl, err := template.ParseFormat("v")
	require.NoError(t, err)
	b, err = Values(tmpl, 0x0102)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 1}, b)

	_, err = Values(42)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
	_, err = Values((*template.Template)(nil))
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
	_, err = Values("?")
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}
