package ctype

import "fmt"

// Canonical scalar type names, without byte-order suffixes.
var (
	IntegerNames = []string{
		"int8", "uint8",
		"int16", "uint16",
		"int32", "uint32",
		"int64", "uint64",
	}
	FloatNames = []string{"float32", "float64"}
)

// OrderSuffixes are the name suffixes that pin a multi-byte scalar's byte
// order regardless of the platform. "_net" is network order (big endian).
var OrderSuffixes = map[string]Order{
	"_le":  Little,
	"_be":  Big,
	"_ne":  Native,
	"_net": Big,
}

var suffixOrder = []string{"_le", "_be", "_ne", "_net"}

// ScalarTable returns every canonical scalar type. Bare multi-byte names
// (uint16, float64, ...) encode in order; suffixed names in their own order.
// The table also holds the NUL-terminated "string" type.
func ScalarTable(order Order) map[string]Type {
	table := make(map[string]Type, 64)
	add := func(kind Kind, size int, base string) {
		table[base] = mustScalar(kind, size, order, base)
		if size == 1 {
			return
		}
		for _, suf := range suffixOrder {
			table[base+suf] = mustScalar(kind, size, OrderSuffixes[suf], base+suf)
		}
	}
	for _, size := range []int{1, 2, 4, 8} {
		add(KindInt, size, fmt.Sprintf("int%d", size*8))
		add(KindUint, size, fmt.Sprintf("uint%d", size*8))
	}
	add(KindFloat, 4, "float32")
	add(KindFloat, 8, "float64")
	table["string"] = CString
	return table
}

// ScalarNames lists every name ScalarTable defines, in a stable order.
func ScalarNames() []string {
	var names []string
	for _, base := range append(append([]string(nil), IntegerNames...), FloatNames...) {
		names = append(names, base)
		if base == "int8" || base == "uint8" {
			continue
		}
		for _, suf := range suffixOrder {
			names = append(names, base+suf)
		}
	}
	return append(names, "string")
}

// WithSuffix derives the order-pinned variant of t for a suffix from
// OrderSuffixes. It returns nil when t is not a multi-byte scalar.
func WithSuffix(t Type, name, suffix string) Type {
	s, ok := t.(*Scalar)
	if !ok || s.size == 1 {
		return nil
	}
	order, ok := OrderSuffixes[suffix]
	if !ok {
		return nil
	}
	return s.WithOrder(order, name+suffix)
}
