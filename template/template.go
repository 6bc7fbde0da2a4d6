package template

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/stream"
)

// Spec is an explicit template entry. Len > 0 makes it an array of Len
// elements; a char array becomes a fixed string.
type Spec struct {
	Type string
	Len  int
}

type entry struct {
	name string
	t    ctype.Type
	str  byte // a, A or Z for a star string
	skip int  // padding bytes
	rest bool // t repeats until values or input run out
}

func (e entry) takesValue() bool { return e.t != nil || e.str != 0 }

// greedy entries consume the remaining input on unpack.
func (e entry) greedy() bool { return e.rest || e.str == 'a' || e.str == 'A' }

// Template is a compiled sequence of types packed back to back.
// A Template is immutable and safe for concurrent use.
type Template struct {
	entries  []entry
	size     int
	values   int
	variable bool
}

// New compiles specs against reg. Each spec is a type name, a directive
// string, a Spec, a two-element []any{"name", n}, or a ctype.Type.
// A nil reg resolves the host profile.
func New(specs []any, reg *platform.Registry) (*Template, error) {
	if reg == nil {
		var err error
		if reg, err = platform.Resolve(platform.Host()); err != nil {
			return nil, err
		}
	}
	var entries []entry
	for i, spec := range specs {
		es, err := compile(spec, reg)
		if err != nil {
			return nil, errors.WithPath(err, index(i))
		}
		entries = append(entries, es...)
	}
	return build(entries)
}

// Compile is New against the registry for profile p.
func Compile(specs []any, p platform.Profile) (*Template, error) {
	reg, err := platform.Resolve(p)
	if err != nil {
		return nil, err
	}
	return New(specs, reg)
}

// ParseFormat compiles a pack directive string such as "C n a4 x2 V*".
//
//	c C        int8, uint8
//	s S l L q Q  16/32/64-bit ints, native order; < little, > big
//	n N        uint16, uint32 big endian
//	v V        uint16, uint32 little endian
//	f d        float32, float64 native order
//	e E        float32, float64 little endian
//	g G        float32, float64 big endian
//	a A Z      strings padded with NUL, space, NUL
//	x          NUL padding byte
//
// A count repeats a numeric directive or sets a string width; * repeats a
// numeric directive until the values or input run out, or makes a string
// take its natural length.
func ParseFormat(format string) (*Template, error) {
	entries, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return build(entries)
}

func build(entries []entry) (*Template, error) {
	t := &Template{entries: entries}
	for i, e := range entries {
		if e.greedy() && i != len(entries)-1 {
			return nil, errors.InvalidInput(errors.PhaseCompile, e.name+" must be the last entry")
		}
		switch {
		case e.skip > 0:
			t.size += e.skip
		case e.rest:
			t.variable = true
		case e.str != 0:
			t.variable = true
			if e.str == 'Z' {
				t.size++
			}
		default:
			t.size += e.t.Size()
			if ctype.Variable(e.t) {
				t.variable = true
			}
		}
		if e.takesValue() && !e.rest {
			t.values++
		}
	}
	return t, nil
}

func compile(spec any, reg *platform.Registry) ([]entry, error) {
	switch s := spec.(type) {
	case string:
		return compileName(s, reg)
	case Spec:
		return compileSpec(s, reg)
	case *Spec:
		if s == nil {
			return nil, errors.InvalidInput(errors.PhaseCompile, "nil template entry")
		}
		return compileSpec(*s, reg)
	case []any:
		if len(s) != 2 {
			return nil, errors.InvalidInput(errors.PhaseCompile,
				fmt.Sprintf("array entry needs a name and a length, got %d items", len(s)))
		}
		name, ok := s[0].(string)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseCompile, nil, coerce.TypeName(s[0]), "type name")
		}
		n, ok := coerce.ToBits(s[1])
		if !ok || int64(n) <= 0 || n > maxCount {
			return nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("invalid array length %v", s[1]))
		}
		return compileSpec(Spec{Type: name, Len: int(n)}, reg)
	case ctype.Type:
		return []entry{{name: s.Name(), t: s}}, nil
	}
	return nil, errors.TypeMismatch(errors.PhaseCompile, nil, coerce.TypeName(spec), "template entry")
}

func compileSpec(s Spec, reg *platform.Registry) ([]entry, error) {
	switch {
	case s.Len < 0:
		return nil, errors.InvalidInput(errors.PhaseCompile, fmt.Sprintf("negative array length for %s", s.Type))
	case s.Len == 0:
		return compileName(s.Type, reg)
	}
	name := s.Type + "[" + strconv.Itoa(s.Len) + "]"
	t, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []entry{{name: name, t: t}}, nil
}

// compileName resolves name through reg, falling back to a directive string.
func compileName(name string, reg *platform.Registry) ([]entry, error) {
	t, err := reg.Lookup(name)
	if err == nil {
		return []entry{{name: name, t: t}}, nil
	}
	if !errors.IsKind(err, errors.KindUnknownType) {
		return nil, err
	}
	entries, perr := parseFormat(name)
	if perr != nil || len(entries) == 0 {
		return nil, errors.UnknownType(errors.PhaseCompile, name)
	}
	return entries, nil
}

// Size returns the packed size. For variable templates it is the minimum.
func (t *Template) Size() int { return t.size }

// Variable reports whether the packed size depends on the values.
func (t *Template) Variable() bool { return t.variable }

// Len returns how many values Pack expects, not counting a trailing
// repeated entry.
func (t *Template) Len() int { return t.values }

// Names returns the entry names in order.
func (t *Template) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.name
	}
	return names
}

func (t *Template) String() string { return strings.Join(t.Names(), " ") }

// Pack encodes one value per entry. Array entries take a slice, string
// entries a string, a trailing repeated entry every remaining value.
func (t *Template) Pack(values ...any) ([]byte, error) {
	out := make([]byte, 0, t.size)
	vi := 0
	for _, e := range t.entries {
		var err error
		switch {
		case e.skip > 0:
			out = append(out, make([]byte, e.skip)...)
		case e.rest:
			for ; vi < len(values); vi++ {
				if out, err = e.append(out, values[vi]); err != nil {
					return nil, errors.WithPath(err, index(vi))
				}
			}
		default:
			if vi >= len(values) {
				return nil, errors.LengthMismatch(errors.PhasePack, nil, t.String(), t.values, len(values))
			}
			if out, err = e.append(out, values[vi]); err != nil {
				return nil, errors.WithPath(err, index(vi))
			}
			vi++
		}
	}
	if vi < len(values) {
		return nil, errors.LengthMismatch(errors.PhasePack, nil, t.String(), t.values, len(values))
	}
	return out, nil
}

func (e entry) append(out []byte, v any) ([]byte, error) {
	if e.str != 0 {
		b, err := stringBytes(e.name, v)
		if err != nil {
			return out, err
		}
		out = append(out, b...)
		if e.str == 'Z' {
			out = append(out, 0)
		}
		return out, nil
	}
	if ctype.Variable(e.t) {
		b, err := e.t.Pack(v)
		return append(out, b...), err
	}
	n := len(out)
	out = append(out, make([]byte, e.t.Size())...)
	return out, e.t.Encode(out[n:], v)
}

// Unpack decodes b, which must be exactly as long as the encoding.
func (t *Template) Unpack(b []byte) ([]any, error) {
	vals, n, err := t.UnpackPrefix(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, t.String(), n, len(b))
	}
	return vals, nil
}

// UnpackPrefix decodes from the start of b and returns the values and the
// number of bytes consumed.
func (t *Template) UnpackPrefix(b []byte) ([]any, int, error) {
	vals := make([]any, 0, t.values)
	off := 0
	for _, e := range t.entries {
		rem := b[off:]
		switch {
		case e.skip > 0:
			if len(rem) < e.skip {
				return nil, 0, errors.LengthMismatch(errors.PhaseUnpack, []string{index(len(vals))}, e.name, e.skip, len(rem))
			}
			off += e.skip
		case e.rest:
			sz := e.t.Size()
			for ; len(b)-off >= sz; off += sz {
				v, err := e.t.Decode(b[off : off+sz])
				if err != nil {
					return nil, 0, errors.WithPath(err, index(len(vals)))
				}
				vals = append(vals, v)
			}
		case e.str != 0:
			n := len(rem)
			if e.str == 'Z' {
				if i := bytes.IndexByte(rem, 0); i >= 0 {
					rem, n = rem[:i], i+1
				}
			}
			vals = append(vals, decodeString(e.str, rem))
			off += n
		case ctype.Variable(e.t):
			n := len(rem)
			if i := bytes.IndexByte(rem, 0); i >= 0 {
				rem, n = rem[:i], i+1
			}
			vals = append(vals, string(rem))
			off += n
		default:
			sz := e.t.Size()
			if len(rem) < sz {
				return nil, 0, errors.LengthMismatch(errors.PhaseUnpack, []string{index(len(vals))}, e.name, sz, len(rem))
			}
			v, err := e.t.Decode(rem[:sz])
			if err != nil {
				return nil, 0, errors.WithPath(err, index(len(vals)))
			}
			vals = append(vals, v)
			off += sz
		}
	}
	return vals, off, nil
}

// ReadFrom reads one record from s. It returns nil at end of input or when
// fewer than Size bytes remained.
func (t *Template) ReadFrom(s *stream.Stream) ([]any, error) {
	if t.variable {
		return nil, errors.Unsupported(errors.PhaseRead, "stream read of variable-size template "+t.String())
	}
	buf, err := s.ReadBuffer(t.size)
	if buf == nil || err != nil {
		return nil, err
	}
	if buf.Size() < t.size {
		return nil, nil
	}
	return t.Unpack(buf.Bytes())
}

// WriteTo packs values and writes them to s in one request.
func (t *Template) WriteTo(s *stream.Stream, values ...any) (*stream.Stream, error) {
	raw, err := t.Pack(values...)
	if err != nil {
		return s, err
	}
	return s.WriteBytes(raw)
}

func index(i int) string { return "[" + strconv.Itoa(i) + "]" }
