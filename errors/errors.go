package errors

import (
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlign Phase = "align" // aligning a byte buffer
	PhaseRead  Phase = "read"  // reading atoms from a buffer
	PhaseWrite Phase = "write" // writing atoms into a buffer
)

// Kind categorizes the error
type Kind string

const (
	KindUnalignedBuffer       Kind = "unaligned_buffer"
	KindCannotRealign         Kind = "cannot_realign"
	KindOutOfSpace            Kind = "out_of_space"
	KindRewindBeyondAllocated Kind = "rewind_beyond_allocated"
	KindWritingOutOfBounds    Kind = "writing_out_of_bounds"
	KindIllegalState          Kind = "illegal_state"
	KindAtomAlreadyWritten    Kind = "atom_already_written"
	KindReadingOutOfBounds    Kind = "reading_out_of_bounds"
	KindURIDMismatch          Kind = "urid_mismatch"
	KindInvalidValue          Kind = "invalid_value"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Detail    string
	Used      int // bytes already allocated when a write failed
	Capacity  int // total capacity of the buffer
	Requested int // bytes requested by the failing operation
	Available int // bytes that were actually available
	Align     int // required alignment, for alignment errors
	Expected  uint32
	Found     uint32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	switch e.Kind {
	case KindOutOfSpace:
		b.WriteString(": requested ")
		b.WriteString(strconv.Itoa(e.Requested))
		b.WriteString(" bytes with ")
		b.WriteString(strconv.Itoa(e.Used))
		b.WriteString(" of ")
		b.WriteString(strconv.Itoa(e.Capacity))
		b.WriteString(" used")
	case KindRewindBeyondAllocated, KindReadingOutOfBounds, KindWritingOutOfBounds, KindCannotRealign:
		b.WriteString(": requested ")
		b.WriteString(strconv.Itoa(e.Requested))
		b.WriteString(" bytes, ")
		b.WriteString(strconv.Itoa(e.Available))
		b.WriteString(" available")
	case KindURIDMismatch:
		b.WriteString(": expected URID ")
		b.WriteString(strconv.FormatUint(uint64(e.Expected), 10))
		b.WriteString(", found ")
		b.WriteString(strconv.FormatUint(uint64(e.Found), 10))
	case KindUnalignedBuffer:
		b.WriteString(": buffer not aligned to ")
		b.WriteString(strconv.Itoa(e.Align))
		b.WriteString(" bytes")
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// IsKind reports whether err is an *Error of the given kind, in any phase.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
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

// Used sets the number of bytes already allocated
func (b *Builder) Used(n int) *Builder {
	b.err.Used = n
	return b
}

// Capacity sets the total buffer capacity
func (b *Builder) Capacity(n int) *Builder {
	b.err.Capacity = n
	return b
}

// Requested sets the number of bytes the failing operation asked for
func (b *Builder) Requested(n int) *Builder {
	b.err.Requested = n
	return b
}

// Available sets the number of bytes that were actually available
func (b *Builder) Available(n int) *Builder {
	b.err.Available = n
	return b
}

// Align sets the required alignment
func (b *Builder) Align(n int) *Builder {
	b.err.Align = n
	return b
}

// URIDs sets the expected and found URIDs
func (b *Builder) URIDs(expected, found uint32) *Builder {
	b.err.Expected = expected
	b.err.Found = found
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string) *Builder {
	b.err.Detail = msg
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Unaligned creates an error for a buffer whose start address violates an
// alignment requirement.
func Unaligned(phase Phase, align int) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindUnalignedBuffer,
		Align: align,
	}
}

// CannotRealign creates an error for a buffer too small to contain any
// aligned byte.
func CannotRealign(phase Phase, align, padding, available int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindCannotRealign,
		Align:     align,
		Requested: padding,
		Available: available,
	}
}

// OutOfSpace creates an error for a write that exhausted a fixed-capacity
// buffer.
func OutOfSpace(used, capacity, requested int) *Error {
	return &Error{
		Phase:     PhaseWrite,
		Kind:      KindOutOfSpace,
		Used:      used,
		Capacity:  capacity,
		Requested: requested,
	}
}

// RewindBeyondAllocated creates an error for a rewind past the start of the
// allocated region.
func RewindBeyondAllocated(allocated, requested int) *Error {
	return &Error{
		Phase:     PhaseWrite,
		Kind:      KindRewindBeyondAllocated,
		Available: allocated,
		Requested: requested,
	}
}

// OutOfBounds creates an error for a read or write past the end of a buffer
func OutOfBounds(phase Phase, requested, available int) *Error {
	kind := KindReadingOutOfBounds
	if phase == PhaseWrite {
		kind = KindWritingOutOfBounds
	}
	return &Error{
		Phase:     phase,
		Kind:      kind,
		Requested: requested,
		Available: available,
	}
}

// URIDMismatch creates an error for an atom whose type tag does not match
// the caller's expectation.
func URIDMismatch(expected, found uint32) *Error {
	return &Error{
		Phase:    PhaseRead,
		Kind:     KindURIDMismatch,
		Expected: expected,
		Found:    found,
	}
}

// InvalidValue creates an error for an atom that is structurally present but
// semantically invalid.
func InvalidValue(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidValue,
		Detail: detail,
	}
}

// IllegalState creates an error for an operation that violates a writer's
// protocol, such as a non-monotonic sequence timestamp.
func IllegalState(detail string) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindIllegalState,
		Detail: detail,
	}
}

// AlreadyWritten creates an error for a second top-level write to an output
// port within one cycle.
func AlreadyWritten() *Error {
	return &Error{
		Phase: PhaseWrite,
		Kind:  KindAtomAlreadyWritten,
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
