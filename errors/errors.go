package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // registry and typedef resolution
	PhaseCompile Phase = "compile" // composite/template construction
	PhasePack    Phase = "pack"    // Go value to bytes
	PhaseUnpack  Phase = "unpack"  // bytes to Go value
	PhaseRead    Phase = "read"    // stream and memory reads
	PhaseWrite   Phase = "write"   // stream and memory writes
	PhaseConfig  Phase = "config"  // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownType     Kind = "unknown_type"
	KindInvalidPlatform Kind = "invalid_platform"
	KindLengthMismatch  Kind = "length_mismatch"
	KindOutOfBounds     Kind = "out_of_bounds"
	KindTypeMismatch    Kind = "type_mismatch"
	KindOverflow        Kind = "overflow"
	KindCycle           Kind = "cycle"
	KindDuplicateField  Kind = "duplicate_field"
	KindFieldUnknown    Kind = "field_unknown"
	KindUnsupported     Kind = "unsupported"
	KindInvalidInput    Kind = "invalid_input"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	TypeName string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.TypeName != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.TypeName != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", type ")
			b.WriteString(e.TypeName)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("type ")
			b.WriteString(e.TypeName)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether any *Error in err's chain has the given kind,
// regardless of phase.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// TypeName sets the binary type name
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the error taxonomy

// UnknownType creates an error for a type name no layer defines
func UnknownType(phase Phase, name string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownType,
		TypeName: name,
		Detail:   fmt.Sprintf("unknown type %q", name),
		Value:    name,
	}
}

// InvalidPlatform creates an error for an unsupported endian/arch/os token
func InvalidPlatform(what, token string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidPlatform,
		Detail: fmt.Sprintf("unsupported %s %q", what, token),
		Value:  token,
	}
}

// LengthMismatch creates an error for a value whose shape disagrees with the type
func LengthMismatch(phase Phase, path []string, typeName string, want, got int) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindLengthMismatch,
		Path:     path,
		TypeName: typeName,
		Detail:   fmt.Sprintf("expected %d, got %d", want, got),
		Value:    got,
	}
}

// OutOfBounds creates an error for an access that would exceed a region
func OutOfBounds(phase Phase, offset, size, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("offset %d + size %d exceeds size %d", offset, size, limit),
		Value:  offset,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, typeName string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		TypeName: typeName,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, typeName string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOverflow,
		Path:     path,
		TypeName: typeName,
		Detail:   fmt.Sprintf("value %v overflows %s", value, typeName),
		Value:    value,
	}
}

// Cycle creates an error for typedefs that alias each other in a loop
func Cycle(names []string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindCycle,
		Detail: fmt.Sprintf("typedef cycle: %s", strings.Join(names, " -> ")),
		Value:  names,
	}
}

// DuplicateField creates an error for a repeated struct/union field name
func DuplicateField(name string) *Error {
	return &Error{
		Phase:  PhaseCompile,
		Kind:   KindDuplicateField,
		Path:   []string{name},
		Detail: fmt.Sprintf("duplicate field %q", name),
	}
}

// FieldUnknown creates an unknown field error
func FieldUnknown(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// WithPath returns a copy of err with prefix prepended to its path. Errors that
// are not *Error are returned unchanged.
func WithPath(err error, prefix ...string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	cp := *e
	cp.Path = append(append([]string(nil), prefix...), e.Path...)
	return &cp
}
