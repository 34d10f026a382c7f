package atombuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func readSequenceAtom(t *testing.T, buf *AlignedBuf) *SequenceIterator {
	t.Helper()
	atom, err := buf.Read().NextAtom()
	require.NoError(t, err)
	it, err := ReadSequence(atom, 70, 72)
	require.NoError(t, err)
	return it
}

func TestZip_MergeOrder(t *testing.T) {
	first := NewAlignedBuf(512)
	writeFrameSequence(t, NewCursor(first.Bytes()), []struct {
		at    int64
		value int32
	}{{1, 10}, {2, 20}, {5, 50}, {6, 60}})

	second := NewAlignedBuf(512)
	writeFrameSequence(t, NewCursor(second.Bytes()), []struct {
		at    int64
		value int32
	}{{3, 30}, {4, 40}, {5, 55}, {8, 80}})

	z := ZipSequences(readSequenceAtom(t, first), readSequenceAtom(t, second))

	want := []struct {
		at    int64
		value int32
	}{{1, 10}, {2, 20}, {3, 30}, {4, 40}, {5, 50}, {5, 55}, {6, 60}, {8, 80}}

	for _, w := range want {
		ts, ev, ok := z.Next()
		require.True(t, ok, "missing event at %d", w.at)
		frames, isFrames := ts.AsFrames()
		require.True(t, isFrames)
		require.Equal(t, w.at, frames)
		v, err := ReadInt(ev, 1)
		require.NoError(t, err)
		// Equal timestamps keep the first sequence's event in front.
		require.Equal(t, w.value, v)
	}
	_, _, ok := z.Next()
	require.False(t, ok)
}

func TestZip_FirstOutlastsSecond(t *testing.T) {
	first := NewAlignedBuf(512)
	writeFrameSequence(t, NewCursor(first.Bytes()), []struct {
		at    int64
		value int32
	}{{1, 10}, {7, 70}, {9, 90}})

	second := NewAlignedBuf(512)
	writeFrameSequence(t, NewCursor(second.Bytes()), []struct {
		at    int64
		value int32
	}{{2, 20}})

	z := ZipSequences(readSequenceAtom(t, first), readSequenceAtom(t, second))

	var got []int32
	for {
		_, ev, ok := z.Next()
		if !ok {
			break
		}
		v, err := ReadInt(ev, 1)
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int32{10, 20, 70, 90}, got)
}

func TestZip_EmptyInputs(t *testing.T) {
	empty := func() *SequenceIterator {
		buf := NewAlignedBuf(64)
		writeFrameSequence(t, NewCursor(buf.Bytes()), nil)
		return readSequenceAtom(t, buf)
	}

	z := ZipSequences(empty(), empty())
	_, _, ok := z.Next()
	require.False(t, ok)
}
