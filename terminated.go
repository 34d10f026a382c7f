package atombuf

// Terminated adapts a SpaceWriter so the allocated bytes always end with
// a sentinel byte. Each allocation first takes back the previous sentinel,
// reserves one extra byte, and writes the sentinel there; the caller only
// ever sees the bytes it asked for.
type Terminated struct {
	inner      SpaceWriter
	terminator byte
	wrote      bool
}

// NewTerminated wraps inner so its output stays terminated with the given
// byte. Most callers want 0 for C string compatibility.
func NewTerminated(inner SpaceWriter, terminator byte) *Terminated {
	return &Terminated{inner: inner, terminator: terminator}
}

func (t *Terminated) AllocateAndSplit(size int) (Allocation, error) {
	if t.wrote {
		if err := t.inner.Rewind(1); err != nil {
			return Allocation{}, err
		}
	}
	alloc, err := t.inner.AllocateAndSplit(size + 1)
	if err != nil {
		return Allocation{}, err
	}
	alloc.Allocated[size] = t.terminator
	alloc.Allocated = alloc.Allocated[:size]
	t.wrote = true
	return alloc, nil
}

// Rewind passes straight through to the inner writer and does not track
// the sentinel. Rewinding past it leaves the adapter believing a sentinel
// is still in place, so the next allocation takes one byte back that was
// never the terminator; only rewind bytes obtained through this adapter's
// AllocateAndSplit, and fewer of them than it returned.
func (t *Terminated) Rewind(n int) error {
	return t.inner.Rewind(n)
}

func (t *Terminated) AllocatedBytes() []byte {
	return t.inner.AllocatedBytes()
}

func (t *Terminated) RemainingBytes() []byte {
	return t.inner.RemainingBytes()
}
