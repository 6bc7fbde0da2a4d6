// Package ctype defines the binary type descriptors: fixed-size scalars,
// fixed and NUL-terminated strings, arrays, structs and unions.
//
// Every descriptor implements Type. Sizes are known at construction and never
// change; all descriptors are immutable and safe to share between goroutines.
//
// Value mapping:
//
//	int8..int64     <-> int8..int64 (any Go integer, bool or integral float on pack)
//	uint8..uint64   <-> uint8..uint64
//	float32/float64 <-> float32/float64
//	char[N], string <-> string ([]byte accepted on pack)
//	T[N]            <-> []any (any slice or array of N elements on pack)
//	struct, union   <-> *Fields (map[string]any also accepted on pack)
//
// Integers wrap to the target width on pack, like a C cast.
package ctype
