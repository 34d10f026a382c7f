package atombuf

// Allocation is the result of a single allocation. Allocated is the fresh
// byte range; Previous covers everything the writer had allocated before
// this call, so framing writers can reach back and patch headers they
// wrote earlier.
type Allocation struct {
	Previous  []byte
	Allocated []byte
}

// SpaceWriter is an append-only allocator over a byte range. Implementors
// hand out byte ranges in order and can take the most recent ones back
// through Rewind.
type SpaceWriter interface {
	// AllocateAndSplit reserves size bytes at the current position.
	AllocateAndSplit(size int) (Allocation, error)

	// Rewind releases the last n allocated bytes so they can be
	// allocated again.
	Rewind(n int) error

	// AllocatedBytes returns everything allocated so far.
	AllocatedBytes() []byte

	// RemainingBytes returns the unallocated tail. A growable writer
	// reports its current tail, not its ultimate capacity.
	RemainingBytes() []byte
}

// Allocate reserves size bytes and returns them without the split view.
func Allocate(w SpaceWriter, size int) ([]byte, error) {
	alloc, err := w.AllocateAndSplit(size)
	if err != nil {
		return nil, err
	}
	return alloc.Allocated, nil
}

// AllocateAligned reserves size bytes starting at an address aligned for
// T, allocating any padding needed to get there. The padding bytes count
// against the writer but are not part of the returned space.
func AllocateAligned[T any](w SpaceWriter, size int) (Space[T], error) {
	pad := paddingFor(w.RemainingBytes(), alignOf[T]())
	raw, err := Allocate(w, pad+size)
	if err != nil {
		return Space[T]{}, err
	}
	return AlignSpace[T](raw)
}

// WriteValue allocates aligned room for one T and writes v into it. The
// returned pointer aliases the writer's buffer and stays valid until the
// bytes are rewound.
func WriteValue[T any](w SpaceWriter, v T) (*T, error) {
	sp, err := AllocateAligned[T](w, sizeOf[T]())
	if err != nil {
		return nil, err
	}
	p := viewAs[T](sp.Bytes())
	*p = v
	return p, nil
}

// WriteSlice allocates aligned room for len(vs) values and copies them in.
func WriteSlice[T any](w SpaceWriter, vs []T) ([]T, error) {
	sp, err := AllocateAligned[T](w, len(vs)*sizeOf[T]())
	if err != nil {
		return nil, err
	}
	out := viewSlice[T](sp.Bytes(), len(vs))
	copy(out, vs)
	return out, nil
}

// WriteBytes appends b verbatim, without alignment.
func WriteBytes(w SpaceWriter, b []byte) ([]byte, error) {
	raw, err := Allocate(w, len(b))
	if err != nil {
		return nil, err
	}
	copy(raw, b)
	return raw, nil
}

// CopyAtom appends a complete atom, header and body, realigning first.
func CopyAtom(w SpaceWriter, a Unidentified) (Unidentified, error) {
	sp, err := AllocateAligned[Header](w, len(a.Bytes()))
	if err != nil {
		return Unidentified{}, err
	}
	copy(sp.Bytes(), a.Bytes())
	return Unidentified{data: sp.Bytes()}, nil
}

// zeroFill clears an allocated range. Allocators hand out whatever the
// buffer held before, so padding that must read back as zero has to be
// cleared explicitly.
func zeroFill(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
