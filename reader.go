package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
)

// Reader walks a byte range with a monotonically advancing cursor. Every
// successful read consumes the bytes it returned, including any alignment
// padding it had to skip; failed reads leave the cursor where it was.
type Reader struct {
	data []byte
}

// NewReader returns a reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{data: b}
}

// Remaining returns the bytes the cursor has not consumed yet.
func (r *Reader) Remaining() []byte {
	return r.data
}

// NextBytes consumes and returns the next n bytes without any alignment
// adjustment.
func (r *Reader) NextBytes(n int) ([]byte, error) {
	if n > len(r.data) {
		return nil, atomerrors.OutOfBounds(atomerrors.PhaseRead, n, len(r.data))
	}
	out := r.data[:n]
	r.data = r.data[n:]
	return out, nil
}

// NextAtom realigns the cursor for an atom header, reads the header, and
// consumes header plus body. The returned atom does not include trailing
// alignment padding; the next realignment skips it.
func (r *Reader) NextAtom() (Unidentified, error) {
	sp, err := AlignSpace[Header](r.data)
	if err != nil {
		return Unidentified{}, err
	}
	if sp.Len() < HeaderSize {
		return Unidentified{}, atomerrors.OutOfBounds(atomerrors.PhaseRead, HeaderSize, sp.Len())
	}
	hdr := viewAs[Header](sp.Bytes())
	total := hdr.SizeOfAtom()
	if sp.Len() < total {
		return Unidentified{}, atomerrors.OutOfBounds(atomerrors.PhaseRead, total, sp.Len())
	}
	atom := Unidentified{data: sp.Bytes()[:total]}
	r.data = sp.Bytes()[total:]
	return atom, nil
}

// TryRead runs f against a copy of the cursor and commits the copy's
// position only if f succeeds. On failure the reader is unchanged, which
// is what lets iterators stop cleanly at a truncated tail.
func (r *Reader) TryRead(f func(*Reader) error) error {
	tmp := Reader{data: r.data}
	if err := f(&tmp); err != nil {
		return err
	}
	r.data = tmp.data
	return nil
}

// ReadValue realigns r for T, then consumes and views one value.
func ReadValue[T any](r *Reader) (*T, error) {
	sp, err := AlignSpace[T](r.data)
	if err != nil {
		return nil, err
	}
	size := sizeOf[T]()
	if sp.Len() < size {
		return nil, atomerrors.OutOfBounds(atomerrors.PhaseRead, size, sp.Len())
	}
	v := viewAs[T](sp.Bytes())
	r.data = sp.Bytes()[size:]
	return v, nil
}

// ReadSlice realigns r for T, then consumes and views count values.
func ReadSlice[T any](r *Reader, count int) ([]T, error) {
	sp, err := AlignSpace[T](r.data)
	if err != nil {
		return nil, err
	}
	size := count * sizeOf[T]()
	if sp.Len() < size {
		return nil, atomerrors.OutOfBounds(atomerrors.PhaseRead, size, sp.Len())
	}
	vs := viewSlice[T](sp.Bytes(), count)
	r.data = sp.Bytes()[size:]
	return vs, nil
}
