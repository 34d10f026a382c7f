package atombuf

import (
	"testing"

	atomerrors "github.com/resonatelabs/atombuf/errors"
)

func TestCursor_AllocateAndSplit(t *testing.T) {
	buf := NewAlignedBuf(16)
	c := NewCursor(buf.Bytes())

	first, err := c.AllocateAndSplit(4)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if len(first.Previous) != 0 || len(first.Allocated) != 4 {
		t.Errorf("got %d/%d, want 0/4", len(first.Previous), len(first.Allocated))
	}

	second, err := c.AllocateAndSplit(8)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if len(second.Previous) != 4 {
		t.Errorf("got previous %d, want 4", len(second.Previous))
	}
	if len(c.AllocatedBytes()) != 12 || len(c.RemainingBytes()) != 4 {
		t.Errorf("got %d/%d, want 12/4", len(c.AllocatedBytes()), len(c.RemainingBytes()))
	}
}

func TestCursor_OutOfSpace(t *testing.T) {
	c := NewCursor(NewAlignedBuf(16).Bytes())
	if _, err := c.AllocateAndSplit(8); err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	_, err := c.AllocateAndSplit(9)
	if !atomerrors.IsKind(err, atomerrors.KindOutOfSpace) {
		t.Fatalf("got %v, want out_of_space", err)
	}
	// A failed allocation must not consume capacity.
	if _, err := c.AllocateAndSplit(8); err != nil {
		t.Fatalf("allocate after failure failed: %v", err)
	}
}

func TestCursor_Rewind(t *testing.T) {
	buf := NewAlignedBuf(16)
	c := NewCursor(buf.Bytes())

	raw, err := Allocate(c, 8)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	copy(raw, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	if err := c.Rewind(4); err != nil {
		t.Fatalf("rewind failed: %v", err)
	}
	if len(c.AllocatedBytes()) != 4 {
		t.Errorf("got %d allocated, want 4", len(c.AllocatedBytes()))
	}

	// Rewound bytes are handed out again by the next allocation.
	again, err := Allocate(c, 4)
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if again[0] != 5 {
		t.Errorf("got %d, want the rewound byte 5", again[0])
	}

	if err := c.Rewind(9); !atomerrors.IsKind(err, atomerrors.KindRewindBeyondAllocated) {
		t.Fatalf("got %v, want rewind_beyond_allocated", err)
	}
}

func TestAllocateAligned_Padding(t *testing.T) {
	buf := NewAlignedBuf(32)
	c := NewCursor(buf.Bytes())

	if _, err := Allocate(c, 3); err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	sp, err := AllocateAligned[int64](c, 8)
	if err != nil {
		t.Fatalf("AllocateAligned failed: %v", err)
	}
	if paddingFor(sp.Bytes(), 8) != 0 {
		t.Errorf("allocated space not aligned")
	}
	// 3 raw bytes, 5 padding, 8 payload.
	if len(c.AllocatedBytes()) != 16 {
		t.Errorf("got %d allocated, want 16", len(c.AllocatedBytes()))
	}
}

func TestWriteValue_AliasesBuffer(t *testing.T) {
	buf := NewAlignedBuf(16)
	c := NewCursor(buf.Bytes())

	p, err := WriteValue(c, int64(3))
	if err != nil {
		t.Fatalf("WriteValue failed: %v", err)
	}
	*p = 11

	got, err := ReadValue[int64](buf.Read())
	if err != nil {
		t.Fatalf("ReadValue failed: %v", err)
	}
	if *got != 11 {
		t.Errorf("got %d, want the aliased write 11", *got)
	}
}
