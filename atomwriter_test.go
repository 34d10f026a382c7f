package atombuf

import (
	"testing"

	atomerrors "github.com/resonatelabs/atombuf/errors"
)

func TestAtomWriter_TracksBodySize(t *testing.T) {
	buf := NewAlignedBuf(64)
	c := NewCursor(buf.Bytes())

	aw, err := NewAtomWriter(c, 3)
	if err != nil {
		t.Fatalf("NewAtomWriter failed: %v", err)
	}
	if got := aw.Atom().Header(); got.SizeOfBody != 0 || got.Type != 3 {
		t.Fatalf("fresh header %+v, want size 0 type 3", got)
	}

	if _, err := WriteBytes(&aw, []byte{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}
	if got := aw.Atom().Header().SizeOfBody; got != 5 {
		t.Errorf("got size %d, want 5", got)
	}

	if err := aw.Rewind(2); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}
	if got := aw.Atom().Header().SizeOfBody; got != 3 {
		t.Errorf("got size %d after rewind, want 3", got)
	}

	if err := aw.Rewind(4); !atomerrors.IsKind(err, atomerrors.KindRewindBeyondAllocated) {
		t.Fatalf("got %v, want rewind_beyond_allocated", err)
	}
}

func TestAtomWriter_RejectsZeroType(t *testing.T) {
	c := NewCursor(NewAlignedBuf(32).Bytes())
	if _, err := NewAtomWriter(c, 0); !atomerrors.IsKind(err, atomerrors.KindInvalidValue) {
		t.Fatalf("got %v, want invalid_value", err)
	}
}

func TestAtomWriter_NestedSizePropagation(t *testing.T) {
	buf := NewAlignedBuf(128)
	c := NewCursor(buf.Bytes())

	outer, err := NewAtomWriter(c, 10)
	if err != nil {
		t.Fatalf("outer writer failed: %v", err)
	}
	inner, err := NewAtomWriter(&outer, 11)
	if err != nil {
		t.Fatalf("inner writer failed: %v", err)
	}
	if _, err := WriteValue(&inner, int64(42)); err != nil {
		t.Fatalf("WriteValue failed: %v", err)
	}

	// The eight payload bytes must show up in the inner header and, with
	// the inner header itself, in the outer one.
	if got := inner.Atom().Header().SizeOfBody; got != 8 {
		t.Errorf("inner size %d, want 8", got)
	}
	if got := outer.Atom().Header().SizeOfBody; got != 16 {
		t.Errorf("outer size %d, want 16", got)
	}

	// Reading it back walks the same structure.
	atom, err := buf.Read().NextAtom()
	if err != nil {
		t.Fatalf("NextAtom failed: %v", err)
	}
	if atom.Type() != 10 || len(atom.Body()) != 16 {
		t.Fatalf("got type %d body %d, want 10/16", atom.Type(), len(atom.Body()))
	}
	child, err := NewReader(atom.Body()).NextAtom()
	if err != nil {
		t.Fatalf("child NextAtom failed: %v", err)
	}
	if child.Type() != 11 || len(child.Body()) != 8 {
		t.Errorf("got child type %d body %d, want 11/8", child.Type(), len(child.Body()))
	}
}

func TestAtomWriter_DeepNesting(t *testing.T) {
	buf := NewAlignedBuf(256)
	c := NewCursor(buf.Bytes())

	a, err := NewAtomWriter(c, 1)
	if err != nil {
		t.Fatalf("writer failed: %v", err)
	}
	b, err := NewAtomWriter(&a, 2)
	if err != nil {
		t.Fatalf("writer failed: %v", err)
	}
	d, err := NewAtomWriter(&b, 3)
	if err != nil {
		t.Fatalf("writer failed: %v", err)
	}
	if _, err := WriteBytes(&d, make([]byte, 24)); err != nil {
		t.Fatalf("WriteBytes failed: %v", err)
	}

	wantSizes := map[string]uint32{"a": 40, "b": 32, "d": 24}
	for name, aw := range map[string]*AtomWriter{"a": &a, "b": &b, "d": &d} {
		if got := aw.Atom().Header().SizeOfBody; got != wantSizes[name] {
			t.Errorf("writer %s: size %d, want %d", name, got, wantSizes[name])
		}
	}
}
