package atombuf

import (
	"github.com/resonatelabs/atombuf/urid"
)

// NewChunkWriter starts a chunk atom and returns a writer for its raw
// body. The body has no structure of its own; callers append with
// WriteBytes or any of the typed helpers.
func NewChunkWriter(w SpaceWriter, typ urid.URID) (AtomWriter, error) {
	return NewAtomWriter(w, typ)
}

// WriteChunk writes a chunk atom with the given body in one step.
func WriteChunk(w SpaceWriter, typ urid.URID, body []byte) error {
	cw, err := NewChunkWriter(w, typ)
	if err != nil {
		return err
	}
	_, err = WriteBytes(&cw, body)
	return err
}

// ReadChunk returns the raw body of a chunk atom.
func ReadChunk(a Unidentified, typ urid.URID) ([]byte, error) {
	return a.body(typ)
}
