// Package memory provides typed offset access to fixed-size byte regions.
//
// Buffer owns a Go byte slice. Any other ctypes.Memory, such as a WebAssembly
// linear memory wrapped with WrapWasm, gets the same access through the
// package-level Read, Write and ReadArray functions.
//
// Every access requires offset+size <= Size(); anything else is an
// errors.KindOutOfBounds error and leaves the region untouched.
package memory
