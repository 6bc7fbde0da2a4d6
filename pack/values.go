package pack

import (
	"github.com/wippyai/ctypes/errors"
	"github.com/wippyai/ctypes/internal/coerce"
	"github.com/wippyai/ctypes/platform"
	"github.com/wippyai/ctypes/template"
)

// Layout compiles a layout for p. A string is a pack directive string; a
// []string or []any lists template entries; a *template.Template is used
// as is.
func Layout(layout any, p platform.Profile) (*template.Template, error) {
	switch l := layout.(type) {
	case string:
		return template.ParseFormat(l)
	case []string:
		specs := make([]any, len(l))
		for i, s := range l {
			specs[i] = s
		}
		return template.Compile(specs, p)
	case []any:
		return template.Compile(l, p)
	case *template.Template:
		if l != nil {
			return l, nil
		}
	}
	return nil, errors.TypeMismatch(errors.PhaseCompile, nil, coerce.TypeName(layout), "layout")
}

// Values packs values with layout for the host profile.
func Values(layout any, values ...any) ([]byte, error) {
	return ValuesFor(platform.Host(), layout, values...)
}

// ValuesFor packs values with layout for profile p.
func ValuesFor(p platform.Profile, layout any, values ...any) ([]byte, error) {
	tmpl, err := Layout(layout, p)
	if err != nil {
		return nil, err
	}
	return tmpl.Pack(values...)
}

// UnpackValues decodes b with layout for the host profile.
func UnpackValues(layout any, b []byte) ([]any, error) {
	return UnpackValuesFor(platform.Host(), layout, b)
}

// UnpackValuesFor decodes b with layout for profile p.
func UnpackValuesFor(p platform.Profile, layout any, b []byte) ([]any, error) {
	tmpl, err := Layout(layout, p)
	if err != nil {
		return nil, err
	}
	return tmpl.Unpack(b)
}
