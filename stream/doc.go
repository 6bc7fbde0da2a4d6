// Package stream decorates a byte-oriented endpoint with typed reads and
// writes resolved through a platform registry.
//
//	s := stream.New(ctypes.IO(conn), reg)
//	if _, err := s.WriteUint32BE(7); err != nil { ... }
//	n, err := s.ReadUint16LE() // *uint16, nil at end of input
//
// End of input is not an error. A read that finds no bytes left returns a
// nil value and a nil error, and so does a single-value read that gets only
// part of the bytes it needs; the partial bytes are consumed and discarded.
// Array reads decode every complete element and leave nil at the positions
// the input did not cover.
//
// Struct and union reads fetch the whole type in one request, so a short
// read never shifts field boundaries.
//
// A Stream keeps no cursor of its own but its operations are sequential; it
// must not be used from multiple goroutines at once.
package stream

//go:generate go run ./internal/gen -o methods_gen.go
