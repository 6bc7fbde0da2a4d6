package pack

import (
	"math"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/template"
)

var integers = []ctype.Kind{ctype.KindInt, ctype.KindUint}

// single compiles a one-entry template for typeName, which must be of one
// of kinds.
func single(typeName string, p platform.Profile, phase errors.Phase, kinds ...ctype.Kind) (*template.Template, ctype.Type, error) {
	reg, err := platform.Resolve(p)
	if err != nil {
		return nil, nil, err
	}
	t, err := reg.Lookup(typeName)
	if err != nil {
		return nil, nil, err
	}
	for _, k := range kinds {
		if t.Kind() == k {
			tmpl, err := template.New([]any{t}, reg)
			return tmpl, t, err
		}
	}
	return nil, nil, errors.New(phase, errors.KindTypeMismatch).
		TypeName(typeName).
		Detail("%s is a %s type", typeName, t.Kind()).
		Build()
}

func unpackOne(tmpl *template.Template, b []byte) (any, error) {
	vals, err := tmpl.Unpack(b)
	if err != nil {
		return nil, err
	}
	return vals[0], nil
}

// Int packs v as the named integer type, wrapping to its width.
func Int(v int64, typeName string, p platform.Profile) ([]byte, error) {
	tmpl, _, err := single(typeName, p, errors.PhasePack, integers...)
	if err != nil {
		return nil, err
	}
	return tmpl.Pack(v)
}

// UnpackInt decodes b as the named integer type.
func UnpackInt(b []byte, typeName string, p platform.Profile) (int64, error) {
	tmpl, _, err := single(typeName, p, errors.PhaseUnpack, integers...)
	if err != nil {
		return 0, err
	}
	v, err := unpackOne(tmpl, b)
	if err != nil {
		return 0, err
	}
	if u, ok := v.(uint64); ok && u > math.MaxInt64 {
		return 0, errors.Overflow(errors.PhaseUnpack, nil, u, "int64")
	}
	bits, _ := coerce.ToBits(v)
	return int64(bits), nil
}

// Uint packs v as the named integer type, wrapping to its width.
func Uint(v uint64, typeName string, p platform.Profile) ([]byte, error) {
	tmpl, _, err := single(typeName, p, errors.PhasePack, integers...)
	if err != nil {
		return nil, err
	}
	return tmpl.Pack(v)
}

// UnpackUint decodes b as the named integer type. A negative value of a
// signed type is an overflow.
func UnpackUint(b []byte, typeName string, p platform.Profile) (uint64, error) {
	tmpl, t, err := single(typeName, p, errors.PhaseUnpack, integers...)
	if err != nil {
		return 0, err
	}
	v, err := unpackOne(tmpl, b)
	if err != nil {
		return 0, err
	}
	bits, _ := coerce.ToBits(v)
	if t.Kind() == ctype.KindInt && int64(bits) < 0 {
		return 0, errors.Overflow(errors.PhaseUnpack, nil, v, "uint64")
	}
	return bits, nil
}

// Float packs v as the named float type.
func Float(v float64, typeName string, p platform.Profile) ([]byte, error) {
	tmpl, _, err := single(typeName, p, errors.PhasePack, ctype.KindFloat)
	if err != nil {
		return nil, err
	}
	return tmpl.Pack(v)
}

// UnpackFloat decodes b as the named float type.
func UnpackFloat(b []byte, typeName string, p platform.Profile) (float64, error) {
	tmpl, _, err := single(typeName, p, errors.PhaseUnpack, ctype.KindFloat)
	if err != nil {
		return 0, err
	}
	v, err := unpackOne(tmpl, b)
	if err != nil {
		return 0, err
	}
	f, _ := coerce.ToFloat64(v)
	return f, nil
}

// String packs s as the named string type: "string" for a NUL-terminated
// string or a char array such as "char[16]" for a fixed one.
func String(s string, typeName string, p platform.Profile) ([]byte, error) {
	tmpl, _, err := single(typeName, p, errors.PhasePack, ctype.KindString)
	if err != nil {
		return nil, err
	}
	return tmpl.Pack(s)
}

// UnpackString decodes b as the named string type.
func UnpackString(b []byte, typeName string, p platform.Profile) (string, error) {
	tmpl, _, err := single(typeName, p, errors.PhaseUnpack, ctype.KindString)
	if err != nil {
		return "", err
	}
	v, err := unpackOne(tmpl, b)
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
