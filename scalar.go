package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// scalarBodySize is the wire size of every scalar body. Four-byte values
// carry four bytes of zero padding so that whatever follows the atom stays
// aligned and equal bodies compare equal bytewise.
const scalarBodySize = 8

// ScalarValue constrains the value types that can live in scalar and
// vector bodies.
type ScalarValue interface {
	~int32 | ~uint32 | ~int64 | ~float32 | ~float64
}

func writeScalar[T ScalarValue](w SpaceWriter, typ urid.URID, v T) error {
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return err
	}
	sp, err := AllocateAligned[int64](&aw, scalarBodySize)
	if err != nil {
		return err
	}
	zeroFill(sp.Bytes())
	*viewAs[T](sp.Bytes()) = v
	return nil
}

func readScalar[T ScalarValue](a Unidentified, typ urid.URID) (T, error) {
	var zero T
	body, err := a.body(typ)
	if err != nil {
		return zero, err
	}
	if len(body) < sizeOf[T]() {
		return zero, atomerrors.OutOfBounds(atomerrors.PhaseRead, sizeOf[T](), len(body))
	}
	return *viewAs[T](body), nil
}

// WriteInt writes a 32-bit signed integer atom.
func WriteInt(w SpaceWriter, typ urid.URID, v int32) error {
	return writeScalar(w, typ, v)
}

// WriteLong writes a 64-bit signed integer atom.
func WriteLong(w SpaceWriter, typ urid.URID, v int64) error {
	return writeScalar(w, typ, v)
}

// WriteFloat writes a 32-bit float atom.
func WriteFloat(w SpaceWriter, typ urid.URID, v float32) error {
	return writeScalar(w, typ, v)
}

// WriteDouble writes a 64-bit float atom.
func WriteDouble(w SpaceWriter, typ urid.URID, v float64) error {
	return writeScalar(w, typ, v)
}

// WriteBool writes a boolean atom, encoded as int32 zero or one.
func WriteBool(w SpaceWriter, typ urid.URID, v bool) error {
	var n int32
	if v {
		n = 1
	}
	return writeScalar(w, typ, n)
}

// WriteURID writes a URID atom.
func WriteURID(w SpaceWriter, typ urid.URID, v urid.URID) error {
	return writeScalar(w, typ, uint32(v))
}

// ReadInt reads a 32-bit signed integer atom.
func ReadInt(a Unidentified, typ urid.URID) (int32, error) {
	return readScalar[int32](a, typ)
}

// ReadLong reads a 64-bit signed integer atom.
func ReadLong(a Unidentified, typ urid.URID) (int64, error) {
	return readScalar[int64](a, typ)
}

// ReadFloat reads a 32-bit float atom.
func ReadFloat(a Unidentified, typ urid.URID) (float32, error) {
	return readScalar[float32](a, typ)
}

// ReadDouble reads a 64-bit float atom.
func ReadDouble(a Unidentified, typ urid.URID) (float64, error) {
	return readScalar[float64](a, typ)
}

// ReadBool reads a boolean atom. Any non-zero body value is true.
func ReadBool(a Unidentified, typ urid.URID) (bool, error) {
	n, err := readScalar[int32](a, typ)
	return n != 0, err
}

// ReadURID reads a URID atom.
func ReadURID(a Unidentified, typ urid.URID) (urid.URID, error) {
	n, err := readScalar[uint32](a, typ)
	return urid.URID(n), err
}
