package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// ObjectHeader identifies an object atom. ID is the object's own URID and
// may be zero for anonymous objects; OType names the object's class and
// must never be zero.
type ObjectHeader struct {
	ID    urid.URID
	OType urid.URID
}

// PropertyHeader precedes each property value inside an object body.
// Context is usually zero; a non-zero context scopes the property, for
// example to a language.
type PropertyHeader struct {
	Key     urid.URID
	Context urid.URID
}

type objectBody struct {
	ID    uint32
	OType uint32
}

// propertyBody records start at 8-byte boundaries within the object
// body, like atom headers. alignOf carries that rule.
type propertyBody struct {
	Key     uint32
	Context uint32
}

// ObjectWriter appends properties to an object atom.
type ObjectWriter struct {
	frame AtomWriter
}

// NewObjectWriter starts an object atom with the given header.
func NewObjectWriter(w SpaceWriter, typ urid.URID, hdr ObjectHeader) (ObjectWriter, error) {
	if !hdr.OType.IsValid() {
		return ObjectWriter{}, atomerrors.InvalidValue(atomerrors.PhaseWrite, "object type URID is zero")
	}
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return ObjectWriter{}, err
	}
	body := objectBody{ID: uint32(hdr.ID), OType: uint32(hdr.OType)}
	if _, err := WriteValue(&aw, body); err != nil {
		return ObjectWriter{}, err
	}
	return ObjectWriter{frame: aw}, nil
}

// Property writes a property header with the given key and returns the
// writer for the property's value. Exactly one atom must be written
// through it before the next call.
func (ow *ObjectWriter) Property(key urid.URID) (SpaceWriter, error) {
	return ow.PropertyWithContext(key, 0)
}

// PropertyWithContext is Property with an explicit context URID.
func (ow *ObjectWriter) PropertyWithContext(key, context urid.URID) (SpaceWriter, error) {
	if !key.IsValid() {
		return nil, atomerrors.InvalidValue(atomerrors.PhaseWrite, "property key URID is zero")
	}
	body := propertyBody{Key: uint32(key), Context: uint32(context)}
	if _, err := WriteValue(&ow.frame, body); err != nil {
		return nil, err
	}
	return &ow.frame, nil
}

// ObjectIterator walks the properties of an object body.
type ObjectIterator struct {
	reader Reader
}

// ReadObject returns the header of an object atom and an iterator over
// its properties.
func ReadObject(a Unidentified, typ urid.URID) (ObjectHeader, ObjectIterator, error) {
	body, err := a.body(typ)
	if err != nil {
		return ObjectHeader{}, ObjectIterator{}, err
	}
	return readObjectBody(body)
}

// ReadObjectOrBlank reads an object atom that may carry either the object
// tag or the legacy blank tag. Blank objects are identical on the wire and
// are only supported for reading.
func ReadObjectOrBlank(a Unidentified, objectType, blankType urid.URID) (ObjectHeader, ObjectIterator, error) {
	got := a.Type()
	if got != objectType && got != blankType {
		return ObjectHeader{}, ObjectIterator{}, atomerrors.URIDMismatch(uint32(objectType), uint32(got))
	}
	return readObjectBody(a.Body())
}

func readObjectBody(body []byte) (ObjectHeader, ObjectIterator, error) {
	r := Reader{data: body}
	ob, err := ReadValue[objectBody](&r)
	if err != nil {
		return ObjectHeader{}, ObjectIterator{}, err
	}
	if ob.OType == 0 {
		return ObjectHeader{}, ObjectIterator{}, atomerrors.InvalidValue(atomerrors.PhaseRead, "object type URID is zero")
	}
	hdr := ObjectHeader{ID: urid.URID(ob.ID), OType: urid.URID(ob.OType)}
	return hdr, ObjectIterator{reader: r}, nil
}

// Next returns the next property's header and value atom. Like the other
// body iterators it reports false on a truncated or malformed tail.
func (it *ObjectIterator) Next() (PropertyHeader, Unidentified, bool) {
	var (
		hdr  PropertyHeader
		atom Unidentified
	)
	err := it.reader.TryRead(func(r *Reader) error {
		pb, err := ReadValue[propertyBody](r)
		if err != nil {
			return err
		}
		if pb.Key == 0 {
			return atomerrors.InvalidValue(atomerrors.PhaseRead, "property key URID is zero")
		}
		hdr = PropertyHeader{Key: urid.URID(pb.Key), Context: urid.URID(pb.Context)}
		atom, err = r.NextAtom()
		return err
	})
	if err != nil {
		return PropertyHeader{}, Unidentified{}, false
	}
	return hdr, atom, true
}
