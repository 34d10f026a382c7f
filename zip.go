package atombuf

// ZipIterator merges two sequence iterators into one ordered event
// stream. Both inputs must already be ordered and use the same timestamp
// unit; when both sides carry the same timestamp the first iterator's
// event comes out first, so the merge is stable.
type ZipIterator struct {
	first       *SequenceIterator
	second      *SequenceIterator
	firstEvent  *zipEvent
	secondEvent *zipEvent
}

type zipEvent struct {
	ts   Timestamp
	atom Unidentified
}

// ZipSequences returns a merging iterator over two sequences.
func ZipSequences(first, second *SequenceIterator) *ZipIterator {
	return &ZipIterator{first: first, second: second}
}

func fetch(it *SequenceIterator) *zipEvent {
	ts, atom, ok := it.Next()
	if !ok {
		return nil
	}
	return &zipEvent{ts: ts, atom: atom}
}

// Next returns the earliest pending event of either input, reporting
// false once both are exhausted.
func (z *ZipIterator) Next() (Timestamp, Unidentified, bool) {
	if z.firstEvent == nil {
		z.firstEvent = fetch(z.first)
	}
	if z.secondEvent == nil {
		z.secondEvent = fetch(z.second)
	}

	var out *zipEvent
	switch {
	case z.firstEvent == nil && z.secondEvent == nil:
		return Timestamp{}, Unidentified{}, false
	case z.secondEvent == nil:
		out, z.firstEvent = z.firstEvent, nil
	case z.firstEvent == nil:
		out, z.secondEvent = z.secondEvent, nil
	case z.firstEvent.ts.lessEq(z.secondEvent.ts):
		out, z.firstEvent = z.firstEvent, nil
	default:
		out, z.secondEvent = z.secondEvent, nil
	}
	return out.ts, out.atom, true
}
