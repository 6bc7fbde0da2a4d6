package stream

import (
	"bytes"
	stderrors "errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/ctypes"
	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/memory"
	"github.com/wippyai/ctypes/platform"
)

func newStream(t *testing.T, data []byte) (*Stream, *bytes.Buffer) {
	t.Helper()
	reg, err := platform.For("little", "x86_64", "linux")
	require.NoError(t, err)
	buf := bytes.NewBuffer(data)
	return New(ctypes.IO(buf), reg), buf
}

func TestReadValue_EOF(t *testing.T) {
	s, _ := newStream(t, nil)

	v, err := s.ReadValue("int32")
	require.NoError(t, err)
	assert.Nil(t, v)

	n, err := s.ReadInt32()
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestReadValue_ShortRead(t *testing.T) {
	s, _ := newStream(t, []byte{1, 2})

	v, err := s.ReadValue("int32")
	require.NoError(t, err)
	assert.Nil(t, v, "a partial value must not be decoded")

	v, err = s.ReadValue("int8")
	require.NoError(t, err)
	assert.Nil(t, v, "the partial bytes are consumed")
}

func TestReadValue(t *testing.T) {
	s, _ := newStream(t, []byte{0x34, 0x12, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 0, 0, 0xf0, 0x3f})

	v, err := s.ReadValue("uint16")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)

	v, err = s.ReadValue("int")
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)

	v, err = s.ReadValue("double")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = s.ReadValue("not_a_real_type")
	assert.True(t, errors.IsKind(err, errors.KindUnknownType))
}

func TestWriteValue_Chaining(t *testing.T) {
	s, buf := newStream(t, nil)

	out, err := s.WriteValue("uint16_le", 0x1234)
	require.NoError(t, err)
	_, err = out.WriteValue("uint16_be", 0x1234)
	require.NoError(t, err)
	_, err = s.WriteValue("size_t", 1)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x34, 0x12, 0x12, 0x34, 1, 0, 0, 0, 0, 0, 0, 0}, buf.Bytes())

	_, err = s.WriteValue("uint8", "x")
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
	assert.Equal(t, 12, buf.Len(), "failed pack writes nothing")
}

func TestReadArrayOf_Partial(t *testing.T) {
	s, _ := newStream(t, []byte{1, 0, 0, 0, 2, 0, 0, 0})

	vals, err := s.ReadArrayOf("int32", 4)
	require.NoError(t, err)
	assert.Equal(t, []any{int32(1), int32(2), nil, nil}, vals)
}

func TestReadArrayOf_Mid(t *testing.T) {
	s, _ := newStream(t, []byte{1, 0, 2, 0, 3})

	vals, err := s.ReadArrayOfUint16LE(3)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, uint16(1), *vals[0])
	assert.Equal(t, uint16(2), *vals[1])
	assert.Nil(t, vals[2])
}

func TestReadArrayOf_EOF(t *testing.T) {
	s, _ := newStream(t, nil)

	vals, err := s.ReadArrayOf("uint8", 3)
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, nil}, vals)

	vals, err = s.ReadArrayOf("uint8", 0)
	require.NoError(t, err)
	assert.Empty(t, vals)

	_, err = s.ReadArrayOf("uint8", -1)
	assert.True(t, errors.IsKind(err, errors.KindInvalidInput))
}

func TestWriteArrayOf(t *testing.T) {
	s, buf := newStream(t, nil)

	_, err := s.WriteArrayOf("uint16_be", []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 0, 2, 0, 3}, buf.Bytes())

	buf.Reset()
	_, err = s.WriteArrayOfFloat32LE([]float32{1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, buf.Bytes())

	buf.Reset()
	_, err = s.WriteArrayOf("uint8", []any{1, "x"})
	require.Error(t, err)
	assert.Zero(t, buf.Len(), "array writes are all or nothing")

	_, err = s.WriteArrayOf("string", []string{"a"})
	assert.True(t, errors.IsKind(err, errors.KindUnsupported))

	_, err = s.WriteArrayOf("uint8", 5)
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
}

func TestStrings(t *testing.T) {
	s, buf := newStream(t, nil)

	_, err := s.WriteString("abc")
	require.NoError(t, err)
	_, err = s.WriteString("de\x00")
	require.NoError(t, err)
	_, err = s.WriteString("")
	require.NoError(t, err)
	buf.WriteString("tail")
	assert.Equal(t, "abc\x00de\x00\x00tail", buf.String())

	want := []string{"abc", "de", "", "tail"}
	for _, w := range want {
		got, err := s.ReadString()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, w, *got)
	}

	got, err := s.ReadString()
	require.NoError(t, err)
	assert.Nil(t, got)
}

// chunkEndpoint serves reads from a slice and counts ReadN calls. It does
// not implement io.ByteReader.
type chunkEndpoint struct {
	data  []byte
	calls int
}

func (c *chunkEndpoint) ReadN(n int) ([]byte, error) {
	c.calls++
	if len(c.data) == 0 {
		return nil, io.EOF
	}
	if n > len(c.data) {
		n = len(c.data)
	}
	out := c.data[:n]
	c.data = c.data[n:]
	return out, nil
}

func (c *chunkEndpoint) WriteBytes([]byte) error { return nil }

func TestReadString_Endpoints(t *testing.T) {
	plain := &chunkEndpoint{data: []byte("ab\x00cd")}
	s := New(plain, nil)
	for _, w := range []string{"ab", "cd"} {
		got, err := s.ReadString()
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, w, *got)
	}
	got, err := s.ReadString()
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 7, plain.calls)

	ep := ctypes.IO(bytes.NewBufferString("xyz\x00"))
	_, ok := ep.(io.ByteReader)
	require.True(t, ok, "IO adapter should read strings bytewise without ReadN")
	got, err = New(ep, nil).ReadString()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "xyz", *got)
}

func TestReadValue_String(t *testing.T) {
	s, _ := newStream(t, []byte("hi\x00"))

	v, err := s.ReadValue("string")
	require.NoError(t, err)
	assert.Equal(t, "hi", v)

	v, err = s.ReadValue("string")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestReadStruct(t *testing.T) {
	s, buf := newStream(t, nil)
	reg := s.Registry()

	hdr, err := ctype.NewStruct("hdr",
		ctype.Field{Name: "magic", Type: reg.MustLookup("uint16_be")},
		ctype.Field{Name: "len", Type: reg.MustLookup("uint32")},
		ctype.Field{Name: "tag", Type: reg.MustLookup("char[4]")},
	)
	require.NoError(t, err)

	_, err = s.WriteType(hdr, map[string]any{"magic": 0xcafe, "len": 10, "tag": "ab"})
	require.NoError(t, err)
	assert.Equal(t, 10, buf.Len())

	f, err := s.ReadStruct(hdr)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, []string{"magic", "len", "tag"}, f.Names())
	magic, _ := f.Get("magic")
	assert.Equal(t, uint16(0xcafe), magic)
	tag, _ := f.Get("tag")
	assert.Equal(t, "ab", tag)

	buf.Write([]byte{1, 2, 3})
	f, err = s.ReadStruct(hdr)
	require.NoError(t, err)
	assert.Nil(t, f, "a truncated struct is not decoded")

	f, err = s.ReadStruct(hdr)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestReadUnion(t *testing.T) {
	s, _ := newStream(t, []byte{0x78, 0x56, 0x34, 0x12})
	reg := s.Registry()

	u, err := ctype.NewUnion("word",
		ctype.Field{Name: "u32", Type: reg.MustLookup("uint32")},
		ctype.Field{Name: "lo", Type: reg.MustLookup("uint8")},
	)
	require.NoError(t, err)

	f, err := s.ReadUnion(u)
	require.NoError(t, err)
	u32, _ := f.Get("u32")
	lo, _ := f.Get("lo")
	assert.Equal(t, uint32(0x12345678), u32)
	assert.Equal(t, uint8(0x78), lo)
}

func TestReadInto(t *testing.T) {
	s, _ := newStream(t, []byte{1, 2, 3, 4, 5, 6})

	mem := memory.New(4)
	n, err := s.ReadInto(mem)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, mem.Bytes())

	n, err = s.ReadInto(mem)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{5, 6, 3, 4}, mem.Bytes())

	n, err = s.ReadInto(mem)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReadBuffer(t *testing.T) {
	s, buf := newStream(t, []byte{9, 8, 7})

	b, err := s.ReadBuffer(2)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, []byte{9, 8}, b.Bytes())

	b, err = s.ReadBuffer(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{7}, b.Bytes())

	b, err = s.ReadBuffer(2)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = s.WriteMemory(memory.From([]byte("xyz")))
	require.NoError(t, err)
	assert.Equal(t, "xyz", buf.String())
}

type failingEndpoint struct{ err error }

func (f failingEndpoint) ReadN(int) ([]byte, error) { return nil, f.err }
func (f failingEndpoint) WriteBytes([]byte) error   { return f.err }

func TestEndpointErrors(t *testing.T) {
	boom := stderrors.New("boom")
	s := New(failingEndpoint{boom}, nil)

	_, err := s.ReadValue("uint32")
	assert.ErrorIs(t, err, boom)
	_, err = s.WriteValue("uint32", 1)
	assert.ErrorIs(t, err, boom)
	_, err = s.ReadString()
	assert.ErrorIs(t, err, boom)
	_, err = s.ReadArrayOf("uint8", 2)
	assert.ErrorIs(t, err, boom)

	ro := New(ctypes.Reader(bytes.NewReader(nil)), nil)
	_, err = ro.WriteUint8(1)
	assert.ErrorIs(t, err, ctypes.ErrNotWritable)
}

func TestTypedMethods(t *testing.T) {
	s, buf := newStream(t, nil)

	_, err := s.WriteUint16BE(0x1234)
	require.NoError(t, err)
	_, err = s.WriteInt64Net(-1)
	require.NoError(t, err)
	_, err = s.WriteFloat64(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2+8+8, buf.Len())

	u, err := s.ReadUint16LE()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3412), *u)

	i, err := s.ReadInt64BE()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), *i)

	f, err := s.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, 0.5, *f)

	_, err = Read[int32](s, "uint32")
	require.NoError(t, err, "EOF wins over type checks")

	s2, _ := newStream(t, []byte{1, 0, 0, 0})
	_, err = Read[int32](s2, "uint32")
	assert.True(t, errors.IsKind(err, errors.KindTypeMismatch))
}

func TestNew_HostRegistry(t *testing.T) {
	s := New(ctypes.IO(new(bytes.Buffer)), nil)
	require.NotNil(t, s.Registry())
	assert.True(t, s.Registry().Has("size_t"))
}
