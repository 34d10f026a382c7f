package atombuf

import (
	"github.com/resonatelabs/atombuf/urid"
)

// Canonical URIs of the atom vocabulary.
const (
	ChunkURI    = "http://lv2plug.in/ns/ext/atom#Chunk"
	IntURI      = "http://lv2plug.in/ns/ext/atom#Int"
	LongURI     = "http://lv2plug.in/ns/ext/atom#Long"
	FloatURI    = "http://lv2plug.in/ns/ext/atom#Float"
	DoubleURI   = "http://lv2plug.in/ns/ext/atom#Double"
	BoolURI     = "http://lv2plug.in/ns/ext/atom#Bool"
	URIDURI     = "http://lv2plug.in/ns/ext/atom#URID"
	VectorURI   = "http://lv2plug.in/ns/ext/atom#Vector"
	TupleURI    = "http://lv2plug.in/ns/ext/atom#Tuple"
	ObjectURI   = "http://lv2plug.in/ns/ext/atom#Object"
	BlankURI    = "http://lv2plug.in/ns/ext/atom#Blank"
	PropertyURI = "http://lv2plug.in/ns/ext/atom#Property"
	SequenceURI = "http://lv2plug.in/ns/ext/atom#Sequence"
	StringURI   = "http://lv2plug.in/ns/ext/atom#String"
	LiteralURI  = "http://lv2plug.in/ns/ext/atom#Literal"
	EventURI    = "http://lv2plug.in/ns/ext/atom#Event"

	FrameUnitURI = "http://lv2plug.in/ns/extensions/units#frame"
	BeatUnitURI  = "http://lv2plug.in/ns/extensions/units#beat"
)

// URIDs holds the mapped tags of the whole atom vocabulary, resolved once
// at initialization so the processing path never touches the mapper.
type URIDs struct {
	Chunk    urid.URID
	Int      urid.URID
	Long     urid.URID
	Float    urid.URID
	Double   urid.URID
	Bool     urid.URID
	URID     urid.URID
	Vector   urid.URID
	Tuple    urid.URID
	Object   urid.URID
	Blank    urid.URID
	Property urid.URID
	Sequence urid.URID
	String   urid.URID
	Literal  urid.URID
	Event    urid.URID

	FrameUnit urid.URID
	BeatUnit  urid.URID
}

// MapURIDs resolves the atom vocabulary against m.
func MapURIDs(m urid.Map) URIDs {
	return URIDs{
		Chunk:     m.Map(ChunkURI),
		Int:       m.Map(IntURI),
		Long:      m.Map(LongURI),
		Float:     m.Map(FloatURI),
		Double:    m.Map(DoubleURI),
		Bool:      m.Map(BoolURI),
		URID:      m.Map(URIDURI),
		Vector:    m.Map(VectorURI),
		Tuple:     m.Map(TupleURI),
		Object:    m.Map(ObjectURI),
		Blank:     m.Map(BlankURI),
		Property:  m.Map(PropertyURI),
		Sequence:  m.Map(SequenceURI),
		String:    m.Map(StringURI),
		Literal:   m.Map(LiteralURI),
		Event:     m.Map(EventURI),
		FrameUnit: m.Map(FrameUnitURI),
		BeatUnit:  m.Map(BeatUnitURI),
	}
}
