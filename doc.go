// Package ctypes is a platform-aware binary type and layout engine.
//
// It provides a registry of scalar and composite C-like type descriptors that
// resolve against a target platform profile (byte order, CPU architecture,
// operating system) and pack Go values into bytes or unpack bytes into values,
// including incremental decoding from byte-oriented streams.
//
// # Architecture Overview
//
//	ctypes/              Root package with Memory and Endpoint capability interfaces
//	├── ctype/           Type descriptors: scalars, strings, arrays, structs, unions
//	├── typedef/         Layered typedef tables (c → unix → bsd → netbsd, ...)
//	├── platform/        Profile tokens, resolved registries, registry cache
//	├── memory/          Fixed-size buffers and typed offset access
//	├── stream/          Typed reads and writes over an Endpoint
//	├── template/        Compiled type lists and raw pack directives
//	├── pack/            Free-function helpers for primitive values
//	├── errors/          Structured error types
//	└── cmd/ctypes/      Registry inspection CLI
//
// # Quick Start
//
//	reg, err := platform.Resolve(platform.Profile{Arch: platform.ArchX86_64, OS: platform.OSLinux})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sizeT := reg.MustLookup("size_t")      // uint64 little-endian
//	b, _ := sizeT.Pack(4096)               // 00 10 00 00 00 00 00 00
//
//	hdr, _ := ctype.NewStruct("hdr",
//	    ctype.Field{Name: "magic", Type: reg.MustLookup("uint32_be")},
//	    ctype.Field{Name: "len", Type: reg.MustLookup("uint16")},
//	)
//	s := stream.New(ctypes.Reader(conn), reg)
//	fields, err := s.ReadStruct(hdr)       // nil at end of input
//
// # Layout
//
// Composite types are packed contiguously. Struct field offsets are prefix sums
// of the preceding field sizes, with no alignment padding. Unions place every
// field at offset 0 and are as large as their largest field.
//
// # Thread Safety
//
// Registries and Type values are immutable and safe for concurrent use. The
// registry cache is safe under concurrent first access. Buffers and Streams are
// NOT thread-safe; use one per goroutine or synchronize externally.
//
// # End of Input
//
// Stream reads report end of input as a nil value with a nil error, so callers
// can distinguish "no more data" from malformed input, which is always an error.
package ctypes
