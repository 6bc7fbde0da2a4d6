package stream

import (
	stderrors "errors"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/ctypes"
	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
	"github.com/wippyai/ctypes/memory"
	"github.com/wippyai/ctypes/platform"
)

// Stream performs typed I/O over an endpoint.
type Stream struct {
	ep  ctypes.Endpoint
	reg *platform.Registry
}

// New returns a stream over ep resolving names through reg. A nil reg
// resolves the host profile.
func New(ep ctypes.Endpoint, reg *platform.Registry) *Stream {
	if reg == nil {
		var err error
		if reg, err = platform.Resolve(platform.Host()); err != nil {
			panic(err)
		}
	}
	return &Stream{ep: ep, reg: reg}
}

// Endpoint returns the decorated endpoint.
func (s *Stream) Endpoint() ctypes.Endpoint { return s.ep }

// Registry returns the registry type names resolve through.
func (s *Stream) Registry() *platform.Registry { return s.reg }

// read returns exactly n bytes, or nil when input ended before n bytes.
func (s *Stream) read(n int, what string) ([]byte, error) {
	raw, err := s.ep.ReadN(n)
	if stderrors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRead, errors.KindInvalidData, err, "reading "+what)
	}
	if len(raw) < n {
		Logger().Debug("short read discarded",
			zap.String("type", what),
			zap.Int("want", n),
			zap.Int("got", len(raw)))
		return nil, nil
	}
	return raw, nil
}

func (s *Stream) write(p []byte, what string) (*Stream, error) {
	if err := s.ep.WriteBytes(p); err != nil {
		return s, errors.Wrap(errors.PhaseWrite, errors.KindInvalidData, err, "writing "+what)
	}
	return s, nil
}

// ReadValue reads one value of the named type. It returns nil at end of input.
func (s *Stream) ReadValue(name string) (any, error) {
	t, err := s.reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.ReadType(t)
}

// ReadType reads one value of type t. It returns nil at end of input.
func (s *Stream) ReadType(t ctype.Type) (any, error) {
	if ctype.Variable(t) {
		str, err := s.ReadString()
		if str == nil || err != nil {
			return nil, err
		}
		return *str, nil
	}
	raw, err := s.read(t.Size(), t.Name())
	if raw == nil || err != nil {
		return nil, err
	}
	return t.Decode(raw)
}

// WriteValue packs v with the named type and writes it.
func (s *Stream) WriteValue(name string, v any) (*Stream, error) {
	t, err := s.reg.Lookup(name)
	if err != nil {
		return s, err
	}
	return s.WriteType(t, v)
}

// WriteType packs v with type t and writes it.
func (s *Stream) WriteType(t ctype.Type, v any) (*Stream, error) {
	raw, err := t.Pack(v)
	if err != nil {
		return s, err
	}
	return s.write(raw, t.Name())
}

// WriteBytes writes p as is.
func (s *Stream) WriteBytes(p []byte) (*Stream, error) {
	return s.write(p, "bytes")
}

// ReadString reads bytes up to and including a NUL and returns the bytes
// before it. Without a terminator it returns everything up to end of input.
// It returns nil when no bytes were left.
//
// The string is read one byte at a time. Endpoints that implement
// io.ByteReader, including the ctypes adapters, are read without a
// per-byte allocation; other endpoints pay one ReadN(1) call per byte.
func (s *Stream) ReadString() (*string, error) {
	buf := getBuf()
	defer putBuf(buf)
	next := s.byteReader()
	for {
		b, err := next()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.PhaseRead, errors.KindInvalidData, err, "reading string")
		}
		if b == 0 {
			str := string(*buf)
			return &str, nil
		}
		*buf = append(*buf, b)
	}
	if len(*buf) == 0 {
		return nil, nil
	}
	str := string(*buf)
	return &str, nil
}

// byteReader returns a single-byte reader over the endpoint. An empty ReadN
// result is reported as io.EOF.
func (s *Stream) byteReader() func() (byte, error) {
	if br, ok := s.ep.(io.ByteReader); ok {
		return br.ReadByte
	}
	return func() (byte, error) {
		b, err := s.ep.ReadN(1)
		if err != nil {
			return 0, err
		}
		if len(b) == 0 {
			return 0, io.EOF
		}
		return b[0], nil
	}
}

// WriteString writes str followed by a NUL unless str already ends with one.
func (s *Stream) WriteString(str string) (*Stream, error) {
	raw, err := ctype.CString.Pack(str)
	if err != nil {
		return s, err
	}
	return s.write(raw, "string")
}

// ReadArrayOf reads count values of the named type in one request. The
// result always has count entries; entries the input did not fully cover
// are nil.
func (s *Stream) ReadArrayOf(name string, count int) ([]any, error) {
	t, err := s.reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.ReadArrayOfType(t, count)
}

// ReadArrayOfType is ReadArrayOf for a resolved element type.
func (s *Stream) ReadArrayOfType(t ctype.Type, count int) ([]any, error) {
	if count < 0 {
		return nil, errors.InvalidInput(errors.PhaseRead, "negative array count")
	}
	if count == 0 {
		return []any{}, nil
	}
	arr, err := ctype.NewArray(t, count)
	if err != nil {
		return nil, err
	}
	raw, err := s.ep.ReadN(arr.Size())
	if stderrors.Is(err, io.EOF) {
		return make([]any, count), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRead, errors.KindInvalidData, err, "reading "+arr.Name())
	}
	if len(raw) < arr.Size() {
		Logger().Debug("partial array read",
			zap.String("type", arr.Name()),
			zap.Int("want", arr.Size()),
			zap.Int("got", len(raw)))
	}
	return arr.DecodePartial(raw)
}

// WriteArrayOf packs every element of values, a slice or array, with the
// named type and writes them in one request.
func (s *Stream) WriteArrayOf(name string, values any) (*Stream, error) {
	t, err := s.reg.Lookup(name)
	if err != nil {
		return s, err
	}
	return s.WriteArrayOfType(t, values)
}

// WriteArrayOfType is WriteArrayOf for a resolved element type.
func (s *Stream) WriteArrayOfType(t ctype.Type, values any) (*Stream, error) {
	if ctype.Variable(t) {
		return s, errors.Unsupported(errors.PhaseWrite, "array of variable-size "+t.Name())
	}
	elems, ok := coerce.ToSlice(values)
	if !ok {
		return s, errors.TypeMismatch(errors.PhaseWrite, nil, coerce.TypeName(values), t.Name()+"[]")
	}
	buf := getBuf()
	defer putBuf(buf)
	es := t.Size()
	*buf = append(*buf, make([]byte, es*len(elems))...)
	for i, v := range elems {
		if err := t.Encode((*buf)[i*es:(i+1)*es], v); err != nil {
			return s, errors.WithPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return s.write(*buf, t.Name()+"[]")
}

// ReadStruct reads a whole struct in one request. It returns nil at end of
// input or when fewer than Size bytes remained.
func (s *Stream) ReadStruct(t *ctype.Struct) (*ctype.Fields, error) {
	return s.readRecord(t)
}

// ReadUnion reads a whole union in one request, decoding every field.
func (s *Stream) ReadUnion(t *ctype.Union) (*ctype.Fields, error) {
	return s.readRecord(t)
}

func (s *Stream) readRecord(t ctype.Type) (*ctype.Fields, error) {
	raw, err := s.read(t.Size(), t.Name())
	if raw == nil || err != nil {
		return nil, err
	}
	v, err := t.Decode(raw)
	if err != nil {
		return nil, err
	}
	return v.(*ctype.Fields), nil
}

// ReadInto fills m from the start with up to m.Size() bytes and returns how
// many bytes were read.
func (s *Stream) ReadInto(m ctypes.Memory) (int, error) {
	if m.Size() == 0 {
		return 0, nil
	}
	raw, err := s.ep.ReadN(m.Size())
	if stderrors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.PhaseRead, errors.KindInvalidData, err, "reading into memory")
	}
	if err := m.Write(0, raw); err != nil {
		return 0, err
	}
	return len(raw), nil
}

// ReadBuffer reads n bytes into a new buffer. At end of input it returns
// nil; after a short read the buffer holds only the bytes that arrived.
func (s *Stream) ReadBuffer(n int) (*memory.Buffer, error) {
	if n < 0 {
		return nil, errors.InvalidInput(errors.PhaseRead, "negative buffer size")
	}
	if n == 0 {
		return memory.New(0), nil
	}
	raw, err := s.ep.ReadN(n)
	if stderrors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRead, errors.KindInvalidData, err, "reading buffer")
	}
	return memory.From(raw), nil
}

// WriteMemory writes the whole contents of m.
func (s *Stream) WriteMemory(m ctypes.Memory) (*Stream, error) {
	raw, err := m.Read(0, m.Size())
	if err != nil {
		return s, err
	}
	return s.write(raw, "memory")
}
