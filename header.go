package atombuf

import (
	"github.com/resonatelabs/atombuf/urid"
)

// HeaderSize is the wire size of an atom header in bytes.
const HeaderSize = 8

// Header is the framing record that precedes every atom body on the wire.
// Both fields use the machine's native byte order; buffers are never meant
// to cross machine boundaries without re-encoding.
type Header struct {
	// SizeOfBody is the length of the body in bytes, excluding the header
	// itself and excluding any alignment padding that follows the atom.
	SizeOfBody uint32

	// Type identifies the body's encoding. It is only meaningful together
	// with the urid.Map that produced it.
	Type uint32
}

// SizeOfAtom returns the combined length of header and body in bytes,
// without trailing alignment padding.
func (h Header) SizeOfAtom() int {
	return HeaderSize + int(h.SizeOfBody)
}

// TypeURID returns the body type as a URID.
func (h Header) TypeURID() urid.URID {
	return urid.URID(h.Type)
}

// PaddedSize rounds n up to the next multiple of AtomAlign.
func PaddedSize(n int) int {
	return (n + AtomAlign - 1) &^ (AtomAlign - 1)
}
