package port

import (
	"github.com/resonatelabs/atombuf"
	atomerrors "github.com/resonatelabs/atombuf/errors"
)

// Reader exposes the single top-level atom of an input port buffer.
type Reader struct {
	atom atombuf.Unidentified
}

// NewReader frames the atom at the start of buf. The buffer must begin
// with a complete atom; hosts guarantee this for connected ports.
func NewReader(buf []byte) (Reader, error) {
	atom, err := atombuf.NewReader(buf).NextAtom()
	if err != nil {
		return Reader{}, err
	}
	return Reader{atom: atom}, nil
}

// Atom returns the port's atom. It stays valid for the whole cycle.
func (r Reader) Atom() atombuf.Unidentified {
	return r.atom
}

// Writer hands out the allocator for an output port buffer. A cycle gets
// exactly one top-level atom; asking twice is a bug in the caller and
// fails rather than corrupting the first atom.
type Writer struct {
	cursor  *atombuf.Cursor
	written bool
}

// NewWriter returns a writer over the cycle's output buffer.
func NewWriter(buf []byte) *Writer {
	return &Writer{cursor: atombuf.NewCursor(buf)}
}

// Begin returns the allocator for the cycle's one top-level atom.
func (w *Writer) Begin() (atombuf.SpaceWriter, error) {
	if w.written {
		return nil, atomerrors.AlreadyWritten()
	}
	w.written = true
	return w.cursor, nil
}

// Written returns the bytes produced so far this cycle.
func (w *Writer) Written() []byte {
	return w.cursor.AllocatedBytes()
}

// Reset points the writer at the next cycle's buffer and allows one
// top-level atom again.
func (w *Writer) Reset(buf []byte) {
	w.cursor = atombuf.NewCursor(buf)
	w.written = false
}
