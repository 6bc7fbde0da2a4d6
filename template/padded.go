package template

import (
	"bytes"
	"strconv"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

// padded is a fixed-width string directive. "a" pads with NULs and unpacks
// the raw bytes, "A" pads with spaces and unpacks without trailing spaces
// and NULs, "Z" pads with NULs and unpacks up to the first NUL.
type padded struct {
	name string
	mode byte
	n    int
}

func newPadded(mode byte, n int) *padded {
	return &padded{name: string(mode) + strconv.Itoa(n), mode: mode, n: n}
}

func (p *padded) Name() string     { return p.name }
func (p *padded) Kind() ctype.Kind { return ctype.KindString }
func (p *padded) Size() int        { return p.n }

func (p *padded) Pack(v any) ([]byte, error) {
	out := make([]byte, p.n)
	if err := p.Encode(out, v); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *padded) Unpack(b []byte) (any, error) { return p.Decode(b) }

func (p *padded) Encode(dst []byte, v any) error {
	if len(dst) != p.n {
		return errors.LengthMismatch(errors.PhasePack, nil, p.name, p.n, len(dst))
	}
	b, err := stringBytes(p.name, v)
	if err != nil {
		return err
	}
	if len(b) > p.n {
		return errors.Overflow(errors.PhasePack, nil, string(b), p.name)
	}
	n := copy(dst, b)
	pad := byte(0)
	if p.mode == 'A' {
		pad = ' '
	}
	for i := n; i < len(dst); i++ {
		dst[i] = pad
	}
	return nil
}

func (p *padded) Decode(src []byte) (any, error) {
	if len(src) != p.n {
		return nil, errors.LengthMismatch(errors.PhaseUnpack, nil, p.name, p.n, len(src))
	}
	return decodeString(p.mode, src), nil
}

func decodeString(mode byte, src []byte) string {
	switch mode {
	case 'A':
		return string(bytes.TrimRight(src, " \x00"))
	case 'Z':
		if i := bytes.IndexByte(src, 0); i >= 0 {
			return string(src[:i])
		}
	}
	return string(src)
}

func stringBytes(typeName string, v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case nil:
		return nil, nil
	}
	return nil, errors.TypeMismatch(errors.PhasePack, nil, coerce.TypeName(v), typeName)
}
