package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// vectorBody is the fixed prelude of a vector atom's body, describing the
// homogeneous elements that follow it.
type vectorBody struct {
	ChildSize uint32
	ChildType uint32
}

// VectorWriter appends elements of a single scalar type to a vector atom.
type VectorWriter[T ScalarValue] struct {
	frame AtomWriter
}

// NewVectorWriter starts a vector atom whose elements are of type T,
// tagged with childType.
func NewVectorWriter[T ScalarValue](w SpaceWriter, typ, childType urid.URID) (VectorWriter[T], error) {
	if !childType.IsValid() {
		return VectorWriter[T]{}, atomerrors.InvalidValue(atomerrors.PhaseWrite, "vector child URID is zero")
	}
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return VectorWriter[T]{}, err
	}
	body := vectorBody{
		ChildSize: uint32(sizeOf[T]()),
		ChildType: uint32(childType),
	}
	if _, err := WriteValue(&aw, body); err != nil {
		return VectorWriter[T]{}, err
	}
	return VectorWriter[T]{frame: aw}, nil
}

// Push appends one element.
func (vw *VectorWriter[T]) Push(v T) (*T, error) {
	return WriteValue(&vw.frame, v)
}

// Append copies vs onto the end of the vector.
func (vw *VectorWriter[T]) Append(vs []T) ([]T, error) {
	return WriteSlice(&vw.frame, vs)
}

// Extend grows the vector by count zeroed elements and returns them for
// the caller to fill in place.
func (vw *VectorWriter[T]) Extend(count int) ([]T, error) {
	sp, err := AllocateAligned[T](&vw.frame, count*sizeOf[T]())
	if err != nil {
		return nil, err
	}
	zeroFill(sp.Bytes())
	return viewSlice[T](sp.Bytes(), count), nil
}

// ReadVector views the elements of a vector atom. Both the vector's own
// tag and the declared element type and size must match, otherwise the
// body cannot safely be viewed as []T.
func ReadVector[T ScalarValue](a Unidentified, typ, childType urid.URID) ([]T, error) {
	raw, err := a.body(typ)
	if err != nil {
		return nil, err
	}
	r := NewReader(raw)
	body, err := ReadValue[vectorBody](r)
	if err != nil {
		return nil, err
	}
	if body.ChildType != uint32(childType) {
		return nil, atomerrors.URIDMismatch(uint32(childType), body.ChildType)
	}
	if body.ChildSize != uint32(sizeOf[T]()) {
		return nil, atomerrors.New(atomerrors.PhaseRead, atomerrors.KindInvalidValue).
			Detail("vector child size does not match element type").
			Requested(sizeOf[T]()).
			Available(int(body.ChildSize)).
			Build()
	}
	return ReadSlice[T](r, len(r.Remaining())/sizeOf[T]())
}
