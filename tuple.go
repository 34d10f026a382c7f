package atombuf

import (
	"github.com/resonatelabs/atombuf/urid"
)

// TupleWriter frames a tuple atom. A tuple body is a plain concatenation
// of child atoms with their usual alignment padding and carries no count;
// readers walk it until the body runs out.
type TupleWriter struct {
	frame AtomWriter
}

// NewTupleWriter starts a tuple atom.
func NewTupleWriter(w SpaceWriter, typ urid.URID) (TupleWriter, error) {
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return TupleWriter{}, err
	}
	return TupleWriter{frame: aw}, nil
}

// Body returns the writer child atoms are written through. Writing any
// atom through it appends that atom to the tuple.
func (tw *TupleWriter) Body() SpaceWriter {
	return &tw.frame
}

// TupleIterator walks the child atoms of a tuple body.
type TupleIterator struct {
	reader Reader
}

// ReadTuple returns an iterator over a tuple atom's children.
func ReadTuple(a Unidentified, typ urid.URID) (TupleIterator, error) {
	body, err := a.body(typ)
	if err != nil {
		return TupleIterator{}, err
	}
	return TupleIterator{reader: Reader{data: body}}, nil
}

// Next returns the next child atom. It reports false at the end of the
// body and also when the remaining bytes do not hold a whole atom; a
// truncated tail ends the walk rather than failing it.
func (it *TupleIterator) Next() (Unidentified, bool) {
	var atom Unidentified
	err := it.reader.TryRead(func(r *Reader) error {
		var err error
		atom, err = r.NextAtom()
		return err
	})
	if err != nil {
		return Unidentified{}, false
	}
	return atom, true
}
