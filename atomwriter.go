package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// AtomWriter frames one atom inside a parent writer. It writes the header
// up front with a zero body size and then grows that size with every byte
// allocated through it, so nesting atom writers keeps every enclosing
// header correct without a finalization step.
type AtomWriter struct {
	parent SpaceWriter

	// headerOffset locates this atom's header within the parent's
	// allocated bytes. The parent may reallocate its backing store, so
	// the header is re-derived from Previous on every allocation rather
	// than held as a pointer.
	headerOffset int
}

// NewAtomWriter allocates an atom header with the given type tag in the
// parent and returns a writer for the atom's body.
func NewAtomWriter(parent SpaceWriter, typ urid.URID) (AtomWriter, error) {
	if !typ.IsValid() {
		return AtomWriter{}, atomerrors.InvalidValue(atomerrors.PhaseWrite, "atom type URID is zero")
	}
	if _, err := WriteValue(parent, Header{SizeOfBody: 0, Type: uint32(typ)}); err != nil {
		return AtomWriter{}, err
	}
	return AtomWriter{
		parent:       parent,
		headerOffset: len(parent.AllocatedBytes()) - HeaderSize,
	}, nil
}

func (aw *AtomWriter) header(previous []byte) *Header {
	return viewAs[Header](previous[aw.headerOffset : aw.headerOffset+HeaderSize])
}

func (aw *AtomWriter) AllocateAndSplit(size int) (Allocation, error) {
	alloc, err := aw.parent.AllocateAndSplit(size)
	if err != nil {
		return Allocation{}, err
	}
	aw.header(alloc.Previous).SizeOfBody += uint32(size)
	return alloc, nil
}

func (aw *AtomWriter) Rewind(n int) error {
	hdr := aw.header(aw.parent.AllocatedBytes())
	if n > int(hdr.SizeOfBody) {
		return atomerrors.RewindBeyondAllocated(int(hdr.SizeOfBody), n)
	}
	if err := aw.parent.Rewind(n); err != nil {
		return err
	}
	// The parent may have shrunk past our view; re-derive the header.
	aw.header(aw.parent.AllocatedBytes()).SizeOfBody -= uint32(n)
	return nil
}

func (aw *AtomWriter) AllocatedBytes() []byte {
	return aw.parent.AllocatedBytes()
}

func (aw *AtomWriter) RemainingBytes() []byte {
	return aw.parent.RemainingBytes()
}

// Atom returns the atom written so far, header and current body.
func (aw *AtomWriter) Atom() Unidentified {
	allocated := aw.parent.AllocatedBytes()
	hdr := aw.header(allocated)
	start := aw.headerOffset
	return Unidentified{data: allocated[start : start+hdr.SizeOfAtom()]}
}
