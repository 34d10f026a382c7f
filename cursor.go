package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
)

// Cursor is the fixed-capacity SpaceWriter. It allocates from a caller
// supplied buffer front to back and never grows. This is the writer to
// use on buffers a host owns, such as plugin port memory.
type Cursor struct {
	data      []byte
	allocated int
}

// NewCursor returns a cursor that allocates out of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b}
}

func (c *Cursor) AllocateAndSplit(size int) (Allocation, error) {
	if size < 0 {
		return Allocation{}, atomerrors.InvalidValue(atomerrors.PhaseWrite, "negative allocation size")
	}
	if c.allocated+size > len(c.data) {
		return Allocation{}, atomerrors.OutOfSpace(c.allocated, len(c.data), size)
	}
	alloc := Allocation{
		Previous:  c.data[:c.allocated],
		Allocated: c.data[c.allocated : c.allocated+size],
	}
	c.allocated += size
	return alloc, nil
}

func (c *Cursor) Rewind(n int) error {
	if n > c.allocated {
		return atomerrors.RewindBeyondAllocated(c.allocated, n)
	}
	c.allocated -= n
	return nil
}

func (c *Cursor) AllocatedBytes() []byte {
	return c.data[:c.allocated]
}

func (c *Cursor) RemainingBytes() []byte {
	return c.data[c.allocated:]
}
