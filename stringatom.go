package atombuf

import (
	"unicode/utf8"

	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// StringWriter appends UTF-8 text to a string atom. The body always ends
// with a single NUL byte that counts toward the body size; each append
// takes the previous NUL back before writing, so intermediate states are
// valid C strings too.
type StringWriter struct {
	frame  AtomWriter
	hasNul bool
}

// NewStringWriter starts a string atom with an empty body.
func NewStringWriter(w SpaceWriter, typ urid.URID) (StringWriter, error) {
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return StringWriter{}, err
	}
	return StringWriter{frame: aw}, nil
}

// Append adds s to the end of the string.
func (sw *StringWriter) Append(s string) error {
	if sw.hasNul {
		if err := sw.frame.Rewind(1); err != nil {
			return err
		}
	}
	raw, err := Allocate(&sw.frame, len(s)+1)
	if err != nil {
		return err
	}
	copy(raw, s)
	raw[len(s)] = 0
	sw.hasNul = true
	return nil
}

// WriteString writes a complete string atom in one step.
func WriteString(w SpaceWriter, typ urid.URID, s string) error {
	sw, err := NewStringWriter(w, typ)
	if err != nil {
		return err
	}
	return sw.Append(s)
}

// ReadString returns the text of a string atom. The result aliases the
// atom's buffer and is only valid while the buffer is.
func ReadString(a Unidentified, typ urid.URID) (string, error) {
	body, err := a.body(typ)
	if err != nil {
		return "", err
	}
	return decodeStringBody(body)
}

func decodeStringBody(body []byte) (string, error) {
	if len(body) == 0 {
		return "", atomerrors.InvalidValue(atomerrors.PhaseRead, "string body is empty")
	}
	if body[len(body)-1] != 0 {
		return "", atomerrors.InvalidValue(atomerrors.PhaseRead, "string body is not NUL terminated")
	}
	text := body[:len(body)-1]
	if !utf8.Valid(text) {
		return "", atomerrors.InvalidValue(atomerrors.PhaseRead, "string body is not valid UTF-8")
	}
	return viewString(text), nil
}
