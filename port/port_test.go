package port

import (
	"testing"

	"github.com/resonatelabs/atombuf"
	atomerrors "github.com/resonatelabs/atombuf/errors"
)

func TestWriter_OneAtomPerCycle(t *testing.T) {
	buf := atombuf.NewAlignedBuf(64)
	w := NewWriter(buf.Bytes())

	sw, err := w.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := atombuf.WriteInt(sw, 7, 42); err != nil {
		t.Fatalf("WriteInt failed: %v", err)
	}

	if _, err := w.Begin(); !atomerrors.IsKind(err, atomerrors.KindAtomAlreadyWritten) {
		t.Fatalf("got %v, want atom_already_written", err)
	}

	next := atombuf.NewAlignedBuf(64)
	w.Reset(next.Bytes())
	if _, err := w.Begin(); err != nil {
		t.Fatalf("Begin after Reset failed: %v", err)
	}
}

func TestReader_FramesPortAtom(t *testing.T) {
	buf := atombuf.NewAlignedBuf(64)
	w := NewWriter(buf.Bytes())
	sw, err := w.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := atombuf.WriteLong(sw, 8, 1<<33); err != nil {
		t.Fatalf("WriteLong failed: %v", err)
	}

	r, err := NewReader(w.Written())
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	v, err := atombuf.ReadLong(r.Atom(), 8)
	if err != nil || v != 1<<33 {
		t.Errorf("ReadLong: %d, %v", v, err)
	}
}

func TestReader_RejectsTruncatedBuffer(t *testing.T) {
	buf := atombuf.NewAlignedBuf(16)
	if _, err := NewReader(buf.Bytes()[:4]); !atomerrors.IsKind(err, atomerrors.KindReadingOutOfBounds) {
		t.Fatalf("got %v, want reading_out_of_bounds", err)
	}
}
