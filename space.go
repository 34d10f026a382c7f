package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
)

// Space is a byte range whose start is guaranteed to be aligned for T.
// It is a non-owning view; copying a Space copies the view, not the bytes.
//
// The guarantee only covers the start of the range. The range may end in
// the middle of a value, and ValueCount reports how many whole values fit.
type Space[T any] struct {
	data []byte
}

// AtomSpace is a space aligned for atom headers.
type AtomSpace = Space[Header]

// SpaceOf wraps b as a Space[T] without adjusting it. It fails if b does
// not already start at an address aligned for T.
func SpaceOf[T any](b []byte) (Space[T], error) {
	if paddingFor(b, alignOf[T]()) != 0 {
		return Space[T]{}, atomerrors.Unaligned(atomerrors.PhaseAlign, alignOf[T]())
	}
	return Space[T]{data: b}, nil
}

// AlignSpace skips the minimal number of leading bytes of b so that the
// remainder starts aligned for T. It fails only when b is too short to
// reach the next aligned address; an exactly exhausted buffer yields an
// empty, valid space.
func AlignSpace[T any](b []byte) (Space[T], error) {
	pad := paddingFor(b, alignOf[T]())
	if pad > len(b) {
		return Space[T]{}, atomerrors.CannotRealign(atomerrors.PhaseAlign, alignOf[T](), pad, len(b))
	}
	return Space[T]{data: b[pad:]}, nil
}

// Bytes returns the underlying byte range.
func (s Space[T]) Bytes() []byte {
	return s.data
}

// Len returns the length of the space in bytes.
func (s Space[T]) Len() int {
	return len(s.data)
}

// ValueCount returns how many whole values of T fit in the space.
func (s Space[T]) ValueCount() int {
	return len(s.data) / sizeOf[T]()
}

// Values reinterprets the space as a slice of T, covering every whole
// value that fits. The caller asserts the bytes actually hold values of T.
func (s Space[T]) Values() []T {
	return viewSlice[T](s.data, s.ValueCount())
}

// Value reinterprets the start of the space as a single *T.
func (s Space[T]) Value() (*T, error) {
	if s.ValueCount() == 0 {
		return nil, atomerrors.OutOfBounds(atomerrors.PhaseRead, sizeOf[T](), len(s.data))
	}
	return viewAs[T](s.data), nil
}

// SplitAt splits the space after n bytes. The first part keeps the
// alignment guarantee; the second part is raw bytes with no guarantee.
func (s Space[T]) SplitAt(n int) (Space[T], []byte, error) {
	if n > len(s.data) {
		return Space[T]{}, nil, atomerrors.OutOfBounds(atomerrors.PhaseRead, n, len(s.data))
	}
	return Space[T]{data: s.data[:n]}, s.data[n:], nil
}

// Read returns a cursor reader over the space.
func (s Space[T]) Read() *Reader {
	return NewReader(s.data)
}
