package memory

import (
	"bytes"
	"strconv"

	"github.com/wippyai/ctypes"
	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
)

func bounds(phase errors.Phase, m ctypes.Memory, offset, size int) error {
	end, ok := coerce.SafeAdd(offset, size)
	if offset < 0 || size < 0 || !ok || end > m.Size() {
		return errors.OutOfBounds(phase, offset, size, m.Size())
	}
	return nil
}

// Read decodes a value of type t at offset. The NUL-terminated string type
// reads up to the first NUL or the end of the region.
func Read(m ctypes.Memory, t ctype.Type, offset int) (any, error) {
	if ctype.Variable(t) {
		return readCString(m, offset)
	}
	if err := bounds(errors.PhaseRead, m, offset, t.Size()); err != nil {
		return nil, errors.WithPath(err, t.Name())
	}
	raw, err := m.Read(offset, t.Size())
	if err != nil {
		return nil, err
	}
	return t.Decode(raw)
}

func readCString(m ctypes.Memory, offset int) (any, error) {
	if err := bounds(errors.PhaseRead, m, offset, 1); err != nil {
		return nil, err
	}
	raw, err := m.Read(offset, m.Size()-offset)
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw), nil
}

// Write encodes v with type t at offset. Nothing is written if encoding fails.
func Write(m ctypes.Memory, t ctype.Type, offset int, v any) error {
	var (
		raw []byte
		err error
	)
	if ctype.Variable(t) {
		raw, err = t.Pack(v)
		if err != nil {
			return err
		}
	} else {
		if err := bounds(errors.PhaseWrite, m, offset, t.Size()); err != nil {
			return errors.WithPath(err, t.Name())
		}
		raw = make([]byte, t.Size())
		if err := t.Encode(raw, v); err != nil {
			return err
		}
	}
	if err := bounds(errors.PhaseWrite, m, offset, len(raw)); err != nil {
		return errors.WithPath(err, t.Name())
	}
	return m.Write(offset, raw)
}

// ReadArray decodes n consecutive values of type t starting at offset.
func ReadArray(m ctypes.Memory, t ctype.Type, offset, n int) ([]any, error) {
	if ctype.Variable(t) {
		return nil, errors.Unsupported(errors.PhaseRead, "array of variable-size "+t.Name())
	}
	total, ok := coerce.SafeMul(t.Size(), n)
	if n < 0 || !ok {
		return nil, errors.OutOfBounds(errors.PhaseRead, offset, total, m.Size())
	}
	if err := bounds(errors.PhaseRead, m, offset, total); err != nil {
		return nil, err
	}
	raw, err := m.Read(offset, total)
	if err != nil {
		return nil, err
	}
	out := make([]any, n)
	es := t.Size()
	for i := range out {
		v, err := t.Decode(raw[i*es : (i+1)*es])
		if err != nil {
			return nil, errors.WithPath(err, "["+strconv.Itoa(i)+"]")
		}
		out[i] = v
	}
	return out, nil
}

// WriteArray encodes values consecutively with type t starting at offset.
func WriteArray(m ctypes.Memory, t ctype.Type, offset int, values []any) error {
	if ctype.Variable(t) {
		return errors.Unsupported(errors.PhaseWrite, "array of variable-size "+t.Name())
	}
	es := t.Size()
	total, ok := coerce.SafeMul(es, len(values))
	if !ok {
		return errors.OutOfBounds(errors.PhaseWrite, offset, total, m.Size())
	}
	if err := bounds(errors.PhaseWrite, m, offset, total); err != nil {
		return err
	}
	raw := make([]byte, total)
	for i, v := range values {
		if err := t.Encode(raw[i*es:(i+1)*es], v); err != nil {
			return errors.WithPath(err, "["+strconv.Itoa(i)+"]")
		}
	}
	return m.Write(offset, raw)
}
