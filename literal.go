package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// LiteralInfo classifies a literal's text. Exactly one of the two URIDs
// is set: a language tag for natural language text, or a datatype for
// typed lexical values.
type LiteralInfo struct {
	language urid.URID
	datatype urid.URID
}

// LanguageLiteral returns the info of a literal in the given language.
func LanguageLiteral(language urid.URID) LiteralInfo {
	return LiteralInfo{language: language}
}

// DatatypeLiteral returns the info of a literal with the given datatype.
func DatatypeLiteral(datatype urid.URID) LiteralInfo {
	return LiteralInfo{datatype: datatype}
}

// Language returns the language URID, reporting false for typed literals.
func (i LiteralInfo) Language() (urid.URID, bool) {
	return i.language, i.language.IsValid()
}

// Datatype returns the datatype URID, reporting false for language
// literals.
func (i LiteralInfo) Datatype() (urid.URID, bool) {
	return i.datatype, i.datatype.IsValid()
}

func (i LiteralInfo) validate(phase atomerrors.Phase) error {
	if i.language.IsValid() == i.datatype.IsValid() {
		return atomerrors.InvalidValue(phase, "literal must have exactly one of language and datatype")
	}
	return nil
}

type literalBody struct {
	Datatype uint32
	Language uint32
}

// NewLiteralWriter starts a literal atom and returns a string writer for
// its text.
func NewLiteralWriter(w SpaceWriter, typ urid.URID, info LiteralInfo) (StringWriter, error) {
	if err := info.validate(atomerrors.PhaseWrite); err != nil {
		return StringWriter{}, err
	}
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return StringWriter{}, err
	}
	body := literalBody{
		Datatype: uint32(info.datatype),
		Language: uint32(info.language),
	}
	if _, err := WriteValue(&aw, body); err != nil {
		return StringWriter{}, err
	}
	return StringWriter{frame: aw}, nil
}

// WriteLiteral writes a complete literal atom in one step.
func WriteLiteral(w SpaceWriter, typ urid.URID, info LiteralInfo, s string) error {
	sw, err := NewLiteralWriter(w, typ, info)
	if err != nil {
		return err
	}
	return sw.Append(s)
}

// ReadLiteral returns the info and text of a literal atom.
func ReadLiteral(a Unidentified, typ urid.URID) (LiteralInfo, string, error) {
	raw, err := a.body(typ)
	if err != nil {
		return LiteralInfo{}, "", err
	}
	r := Reader{data: raw}
	body, err := ReadValue[literalBody](&r)
	if err != nil {
		return LiteralInfo{}, "", err
	}
	info := LiteralInfo{
		language: urid.URID(body.Language),
		datatype: urid.URID(body.Datatype),
	}
	if err := info.validate(atomerrors.PhaseRead); err != nil {
		return LiteralInfo{}, "", err
	}
	text, err := decodeStringBody(r.Remaining())
	if err != nil {
		return LiteralInfo{}, "", err
	}
	return info, text, nil
}
