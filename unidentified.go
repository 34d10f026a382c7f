package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// Unidentified is an atom whose header has been framed but whose body has
// not been interpreted yet. It is a cheap non-owning view; pass it by
// value like a slice.
type Unidentified struct {
	data []byte
}

// Header returns a copy of the atom's header.
func (a Unidentified) Header() Header {
	return *viewAs[Header](a.data)
}

// Type returns the atom's type tag.
func (a Unidentified) Type() urid.URID {
	return a.Header().TypeURID()
}

// Body returns the body bytes, excluding the header and trailing padding.
func (a Unidentified) Body() []byte {
	return a.data[HeaderSize:]
}

// Bytes returns header and body together.
func (a Unidentified) Bytes() []byte {
	return a.data
}

// TotalSize returns the atom's full footprint in a space, header and body
// plus trailing alignment padding.
func (a Unidentified) TotalSize() int {
	return PaddedSize(len(a.data))
}

// body checks the atom's type tag and returns the body on a match.
func (a Unidentified) body(want urid.URID) ([]byte, error) {
	if got := a.Type(); got != want {
		return nil, atomerrors.URIDMismatch(uint32(want), uint32(got))
	}
	return a.Body(), nil
}
