package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
)

// AlignedBuf owns a growable byte buffer whose start is always aligned to
// AtomAlign. It is the buffer to use when the caller, not a host, owns the
// memory, for example when staging a message before copying it to a port.
//
// The backing store is a []uint64, which the runtime guarantees to be
// 8-aligned, so a freshly aligned view never needs leading padding.
type AlignedBuf struct {
	words []uint64
}

// NewAlignedBuf returns a zeroed buffer with room for at least capacity
// bytes, rounded up to whole words.
func NewAlignedBuf(capacity int) *AlignedBuf {
	return &AlignedBuf{words: make([]uint64, (capacity+AtomAlign-1)/AtomAlign)}
}

// Len returns the buffer length in bytes.
func (b *AlignedBuf) Len() int {
	return len(b.words) * AtomAlign
}

// Bytes returns the buffer contents as a byte view. The view is
// invalidated by the next growth.
func (b *AlignedBuf) Bytes() []byte {
	return wordBytes(b.words)
}

// Space returns the buffer as an atom-aligned space.
func (b *AlignedBuf) Space() AtomSpace {
	sp, err := SpaceOf[Header](b.Bytes())
	if err != nil {
		// A word-backed buffer is always 8-aligned.
		panic(err)
	}
	return sp
}

// Read returns a reader over the buffer contents.
func (b *AlignedBuf) Read() *Reader {
	return NewReader(b.Bytes())
}

// Writer returns a growing SpaceWriter over the buffer. Allocations that
// do not fit extend the backing store instead of failing; the only write
// errors a growing writer returns are rewind violations.
//
// Growth moves the buffer, so byte views handed out before an allocation,
// including Allocation.Previous and pointers from WriteValue, must not be
// used across one. Framing writers re-derive their headers per allocation
// and stay correct.
func (b *AlignedBuf) Writer() *BufWriter {
	return &BufWriter{buf: b}
}

// BufWriter is the growable SpaceWriter over an AlignedBuf.
type BufWriter struct {
	buf       *AlignedBuf
	allocated int
}

func (w *BufWriter) AllocateAndSplit(size int) (Allocation, error) {
	if size < 0 {
		return Allocation{}, atomerrors.InvalidValue(atomerrors.PhaseWrite, "negative allocation size")
	}
	if need := w.allocated + size; need > w.buf.Len() {
		grown := make([]uint64, (need+AtomAlign-1)/AtomAlign)
		copy(grown, w.buf.words)
		w.buf.words = grown
	}
	data := w.buf.Bytes()
	alloc := Allocation{
		Previous:  data[:w.allocated],
		Allocated: data[w.allocated : w.allocated+size],
	}
	w.allocated += size
	return alloc, nil
}

func (w *BufWriter) Rewind(n int) error {
	if n > w.allocated {
		return atomerrors.RewindBeyondAllocated(w.allocated, n)
	}
	w.allocated -= n
	return nil
}

func (w *BufWriter) AllocatedBytes() []byte {
	return w.buf.Bytes()[:w.allocated]
}

func (w *BufWriter) RemainingBytes() []byte {
	return w.buf.Bytes()[w.allocated:]
}
