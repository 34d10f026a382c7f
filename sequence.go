package atombuf

import (
	atomerrors "github.com/resonatelabs/atombuf/errors"
	"github.com/resonatelabs/atombuf/urid"
)

// TimestampUnit selects how event timestamps are encoded on the wire.
type TimestampUnit uint8

const (
	// UnitFrames timestamps are sample frame counts, encoded as int64.
	UnitFrames TimestampUnit = iota
	// UnitBeats timestamps are musical beats, encoded as float64.
	UnitBeats
)

// Timestamp is the time of one sequence event. All timestamps of a
// sequence share the unit declared in the sequence body.
type Timestamp struct {
	frames int64
	beats  float64
	unit   TimestampUnit
}

// FrameTime returns a timestamp in sample frames.
func FrameTime(frames int64) Timestamp {
	return Timestamp{frames: frames, unit: UnitFrames}
}

// BeatTime returns a timestamp in beats.
func BeatTime(beats float64) Timestamp {
	return Timestamp{beats: beats, unit: UnitBeats}
}

// Unit returns the timestamp's unit.
func (t Timestamp) Unit() TimestampUnit {
	return t.unit
}

// AsFrames returns the frame count, reporting false for beat timestamps.
func (t Timestamp) AsFrames() (int64, bool) {
	return t.frames, t.unit == UnitFrames
}

// AsBeats returns the beat count, reporting false for frame timestamps.
func (t Timestamp) AsBeats() (float64, bool) {
	return t.beats, t.unit == UnitBeats
}

func (t Timestamp) lessEq(o Timestamp) bool {
	if t.unit == UnitFrames && o.unit == UnitFrames {
		return t.frames <= o.frames
	}
	return t.asFloat() <= o.asFloat()
}

func (t Timestamp) asFloat() float64 {
	if t.unit == UnitFrames {
		return float64(t.frames)
	}
	return t.beats
}

// SequenceUnit pairs the URID written into a sequence body with the
// timestamp encoding it implies.
type SequenceUnit struct {
	URID urid.URID
	Kind TimestampUnit
}

// FrameUnit declares frame-based timestamps tagged with u.
func FrameUnit(u urid.URID) SequenceUnit {
	return SequenceUnit{URID: u, Kind: UnitFrames}
}

// BeatUnit declares beat-based timestamps tagged with u.
func BeatUnit(u urid.URID) SequenceUnit {
	return SequenceUnit{URID: u, Kind: UnitBeats}
}

type sequenceBody struct {
	Unit uint32
	Pad  uint32
}

// SequenceWriter appends timestamped events to a sequence atom. Event
// times must not decrease; the writer enforces this before touching the
// buffer, so a rejected event leaves the sequence exactly as it was.
type SequenceWriter struct {
	frame   AtomWriter
	unit    SequenceUnit
	last    Timestamp
	hasLast bool
}

// NewSequenceWriter starts a sequence atom with the given time unit.
func NewSequenceWriter(w SpaceWriter, typ urid.URID, unit SequenceUnit) (SequenceWriter, error) {
	aw, err := NewAtomWriter(w, typ)
	if err != nil {
		return SequenceWriter{}, err
	}
	if _, err := WriteValue(&aw, sequenceBody{Unit: uint32(unit.URID)}); err != nil {
		return SequenceWriter{}, err
	}
	return SequenceWriter{frame: aw, unit: unit}, nil
}

// Event writes the timestamp of the next event and returns the writer its
// atom must be written through. Exactly one atom per call.
func (sw *SequenceWriter) Event(ts Timestamp) (SpaceWriter, error) {
	if ts.Unit() != sw.unit.Kind {
		return nil, atomerrors.IllegalState("event timestamp unit does not match the sequence unit")
	}
	if sw.hasLast && !sw.last.lessEq(ts) {
		return nil, atomerrors.IllegalState("event timestamps must not decrease")
	}
	if err := sw.writeTimestamp(ts); err != nil {
		return nil, err
	}
	sw.last = ts
	sw.hasLast = true
	return &sw.frame, nil
}

func (sw *SequenceWriter) writeTimestamp(ts Timestamp) error {
	switch ts.Unit() {
	case UnitBeats:
		_, err := WriteValue(&sw.frame, ts.beats)
		return err
	default:
		_, err := WriteValue(&sw.frame, ts.frames)
		return err
	}
}

// Forward copies a complete atom into the sequence at the given time.
func (sw *SequenceWriter) Forward(ts Timestamp, a Unidentified) error {
	w, err := sw.Event(ts)
	if err != nil {
		return err
	}
	_, err = CopyAtom(w, a)
	return err
}

// SequenceIterator walks the events of a sequence body.
type SequenceIterator struct {
	reader Reader
	unit   TimestampUnit
}

// ReadSequence returns an iterator over a sequence atom's events. The
// body's unit field is compared against beatURID; any other value,
// including zero, is treated as frames.
func ReadSequence(a Unidentified, typ, beatURID urid.URID) (*SequenceIterator, error) {
	raw, err := a.body(typ)
	if err != nil {
		return nil, err
	}
	r := Reader{data: raw}
	body, err := ReadValue[sequenceBody](&r)
	if err != nil {
		return nil, err
	}
	unit := UnitFrames
	if beatURID.IsValid() && body.Unit == uint32(beatURID) {
		unit = UnitBeats
	}
	return &SequenceIterator{reader: r, unit: unit}, nil
}

// Unit returns the timestamp unit declared by the sequence body.
func (it *SequenceIterator) Unit() TimestampUnit {
	return it.unit
}

// Next returns the next event's timestamp and atom, reporting false at
// the end of the body or at a truncated tail.
func (it *SequenceIterator) Next() (Timestamp, Unidentified, bool) {
	var (
		ts   Timestamp
		atom Unidentified
	)
	err := it.reader.TryRead(func(r *Reader) error {
		var err error
		ts, err = readTimestamp(r, it.unit)
		if err != nil {
			return err
		}
		atom, err = r.NextAtom()
		return err
	})
	if err != nil {
		return Timestamp{}, Unidentified{}, false
	}
	return ts, atom, true
}

func readTimestamp(r *Reader, unit TimestampUnit) (Timestamp, error) {
	if unit == UnitBeats {
		v, err := ReadValue[float64](r)
		if err != nil {
			return Timestamp{}, err
		}
		return BeatTime(*v), nil
	}
	v, err := ReadValue[int64](r)
	if err != nil {
		return Timestamp{}, err
	}
	return FrameTime(*v), nil
}
