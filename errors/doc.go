// Package errors provides structured error types for the ctypes library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending type name, the Go type of the
// value involved, a field path and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhasePack, errors.KindTypeMismatch).
//		Path("header", "magic").
//		GoType("string").
//		TypeName("uint32_le").
//		Detail("cannot pack string as integer").
//		Build()
//
// Or use convenience constructors for the common taxonomy:
//
//	err := errors.UnknownType(errors.PhaseResolve, "not_a_real_type")
//	err := errors.OutOfBounds(errors.PhaseRead, 12, 4, 14)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind; IsKind matches Kind alone.
//
// End of input on a stream is not an error in this library; stream reads
// report it as a nil value.
package errors
