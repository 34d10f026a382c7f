package testbed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/resonatelabs/atombuf"
	"github.com/resonatelabs/atombuf/port"
	"github.com/resonatelabs/atombuf/urid"
)

func TestGuestMemoryRoundtrip(t *testing.T) {
	mem := guestMemory(t)
	mapper := urid.NewMapper()
	urids := atombuf.MapURIDs(mapper)

	// Deliberately start the port buffer at an odd offset. The guest
	// gives no alignment promises, so the host side must realign.
	raw := memoryView(t, mem, 3, 512)
	sp, err := atombuf.AlignSpace[atombuf.Header](raw)
	require.NoError(t, err)

	w := port.NewWriter(sp.Bytes())
	sw, err := w.Begin()
	require.NoError(t, err)

	seq, err := atombuf.NewSequenceWriter(sw, urids.Sequence, atombuf.FrameUnit(urids.FrameUnit))
	require.NoError(t, err)
	for i, v := range []int32{10, 20, 30} {
		ew, err := seq.Event(atombuf.FrameTime(int64(i * 4)))
		require.NoError(t, err)
		require.NoError(t, atombuf.WriteInt(ew, urids.Int, v))
	}

	// Re-acquire the view the way a host would on the next callback and
	// read the sequence back out of guest memory.
	again := memoryView(t, mem, 3, 512)
	sp2, err := atombuf.AlignSpace[atombuf.Header](again)
	require.NoError(t, err)

	r, err := port.NewReader(sp2.Bytes())
	require.NoError(t, err)
	it, err := atombuf.ReadSequence(r.Atom(), urids.Sequence, urids.BeatUnit)
	require.NoError(t, err)
	require.Equal(t, atombuf.UnitFrames, it.Unit())

	var got []int32
	for {
		ts, ev, ok := it.Next()
		if !ok {
			break
		}
		frames, isFrames := ts.AsFrames()
		require.True(t, isFrames)
		require.Equal(t, int64(len(got)*4), frames)
		v, err := atombuf.ReadInt(ev, urids.Int)
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int32{10, 20, 30}, got)
}

func TestGuestMemoryObjectForwarding(t *testing.T) {
	mem := guestMemory(t)
	mapper := urid.NewMapper()
	urids := atombuf.MapURIDs(mapper)
	keyX := mapper.Map("urn:testbed:x")
	classC := mapper.Map("urn:testbed:c")

	// Stage an object in host memory, then forward it into the guest's
	// output region byte for byte.
	staging := atombuf.NewAlignedBuf(256)
	sc := atombuf.NewCursor(staging.Bytes())
	ow, err := atombuf.NewObjectWriter(sc, urids.Object, atombuf.ObjectHeader{OType: classC})
	require.NoError(t, err)
	pw, err := ow.Property(keyX)
	require.NoError(t, err)
	require.NoError(t, atombuf.WriteDouble(pw, urids.Double, 6.5))

	atom, err := staging.Read().NextAtom()
	require.NoError(t, err)

	out := memoryView(t, mem, 1024, 256)
	sp, err := atombuf.AlignSpace[atombuf.Header](out)
	require.NoError(t, err)
	cursor := atombuf.NewCursor(sp.Bytes())
	_, err = atombuf.CopyAtom(cursor, atom)
	require.NoError(t, err)

	// Parse it back from a fresh guest view.
	check := memoryView(t, mem, 1024, 256)
	sp2, err := atombuf.AlignSpace[atombuf.Header](check)
	require.NoError(t, err)
	got, err := atombuf.NewReader(sp2.Bytes()).NextAtom()
	require.NoError(t, err)

	hdr, it, err := atombuf.ReadObject(got, urids.Object)
	require.NoError(t, err)
	require.Equal(t, classC, hdr.OType)

	p, v, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, keyX, p.Key)
	d, err := atombuf.ReadDouble(v, urids.Double)
	require.NoError(t, err)
	require.Equal(t, 6.5, d)
}

func TestGuestMemoryCapacityEnforced(t *testing.T) {
	mem := guestMemory(t)
	mapper := urid.NewMapper()
	urids := atombuf.MapURIDs(mapper)

	view := memoryView(t, mem, 0, 16)
	c := atombuf.NewCursor(view)
	require.NoError(t, atombuf.WriteInt(c, urids.Int, 1))

	// The region is full; the next atom must fail cleanly instead of
	// spilling into guest memory past the port.
	err := atombuf.WriteInt(c, urids.Int, 2)
	require.Error(t, err)
}
