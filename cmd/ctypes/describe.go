package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/wippyai/ctypes/ctype"
)

type fieldInfo struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

type typeInfo struct {
	Name     string      `json:"name"`
	Encoding string      `json:"encoding"`
	Kind     string      `json:"kind"`
	Size     int         `json:"size"`
	Variable bool        `json:"variable,omitempty"`
	Order    string      `json:"order,omitempty"`
	Elem     string      `json:"elem,omitempty"`
	Len      int         `json:"len,omitempty"`
	Fields   []fieldInfo `json:"fields,omitempty"`
}

func describe(name string, t ctype.Type) typeInfo {
	info := typeInfo{
		Name:     name,
		Encoding: t.Name(),
		Kind:     t.Kind().String(),
		Size:     t.Size(),
		Variable: ctype.Variable(t),
	}
	switch tt := t.(type) {
	case *ctype.Scalar:
		if tt.Size() > 1 {
			info.Order = tt.Order().String()
		}
	case *ctype.String:
		info.Len = tt.Len()
	case *ctype.Array:
		info.Elem = tt.Elem().Name()
		info.Len = tt.Len()
	case *ctype.Struct:
		info.Fields = fieldInfos(tt.Fields())
	case *ctype.Union:
		info.Fields = fieldInfos(tt.Fields())
	}
	return info
}

func fieldInfos(fields []ctype.Field) []fieldInfo {
	out := make([]fieldInfo, len(fields))
	for i, f := range fields {
		out[i] = fieldInfo{Name: f.Name, Type: f.Type.Name(), Offset: f.Offset, Size: f.Type.Size()}
	}
	return out
}

func (info typeInfo) text(opts options) string {
	var b strings.Builder
	b.WriteString(opts.name(info.Name))
	if info.Encoding != info.Name {
		b.WriteString(" = ")
		b.WriteString(opts.typ(info.Encoding))
	}
	fmt.Fprintf(&b, "  kind=%s size=%d", info.Kind, info.Size)
	if info.Variable {
		b.WriteString(" variable")
	}
	if info.Order != "" {
		fmt.Fprintf(&b, " order=%s", info.Order)
	}
	if info.Elem != "" {
		fmt.Fprintf(&b, " elem=%s", info.Elem)
	}
	if info.Len > 0 {
		fmt.Fprintf(&b, " len=%d", info.Len)
	}
	for _, f := range info.Fields {
		fmt.Fprintf(&b, "\n  +%-4d %-16s %s", f.Offset, f.Name, opts.typ(f.Type))
	}
	return b.String()
}

// parseValue reads a command-line value: an integer, a float, a JSON
// array or object, or else a plain string.
func parseValue(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u, nil
	}
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		dec := json.NewDecoder(bytes.NewReader([]byte(s)))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return fromJSON(v), nil
	}
	return s, nil
}

func fromJSON(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := parseValue(x.String()); err == nil {
			return n
		}
		return x.String()
	case []any:
		for i := range x {
			x[i] = fromJSON(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = fromJSON(x[k])
		}
		return x
	}
	return v
}

// jsonValue converts unpacked values into plain JSON-friendly values.
func jsonValue(v any) any {
	switch x := v.(type) {
	case *ctype.Fields:
		out := make(map[string]any, x.Len())
		x.Range(func(name string, fv any) bool {
			out[name] = jsonValue(fv)
			return true
		})
		return out
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = jsonValue(x[i])
		}
		return out
	}
	return v
}
