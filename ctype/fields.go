package ctype

import (
	"fmt"
	"strings"
)

// Fields is an ordered collection of named values, produced by unpacking
// structs and unions and accepted when packing them.
type Fields struct {
	values map[string]any
	names  []string
}

// NewFields returns an empty collection.
func NewFields() *Fields {
	return &Fields{values: make(map[string]any)}
}

// FieldsOf builds a collection from alternating name/value pairs.
func FieldsOf(pairs ...any) *Fields {
	f := NewFields()
	for i := 0; i+1 < len(pairs); i += 2 {
		f.Set(fmt.Sprint(pairs[i]), pairs[i+1])
	}
	return f
}

// Set assigns a value, appending the name if it is new.
func (f *Fields) Set(name string, v any) *Fields {
	if f.values == nil {
		f.values = make(map[string]any)
	}
	if _, ok := f.values[name]; !ok {
		f.names = append(f.names, name)
	}
	f.values[name] = v
	return f
}

// Get returns the value for name.
func (f *Fields) Get(name string) (any, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[name]
	return v, ok
}

// Names returns the field names in insertion order.
func (f *Fields) Names() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.names...)
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.names)
}

// Map returns the values as an unordered map.
func (f *Fields) Map() map[string]any {
	out := make(map[string]any, f.Len())
	if f == nil {
		return out
	}
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Range calls fn for each field in order until fn returns false.
func (f *Fields) Range(fn func(name string, v any) bool) {
	if f == nil {
		return
	}
	for _, n := range f.names {
		if !fn(n, f.values[n]) {
			return
		}
	}
}

func (f *Fields) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range f.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", n, f.values[n])
	}
	b.WriteByte('}')
	return b.String()
}
