// Package atombuf implements a real-time safe binary encoding for typed,
// self-describing values called atoms.
//
// An atom is a small header naming a body's length and type, followed by
// the body itself. Because the header carries everything a consumer needs,
// atoms of unknown types can be skipped, copied, or forwarded without being
// understood, and container atoms nest arbitrarily. All values are encoded
// in the machine's native byte order at their natural alignment, so reading
// never parses or copies: a read is a bounds check and a pointer cast.
// Nothing on the read or write path allocates on the heap, which makes the
// library safe to use on audio and other deadline-bound threads.
//
// # Architecture Overview
//
//	atombuf/             Core encoding: spaces, readers, writers, atom types
//	├── errors/          Structured error types for debugging
//	├── urid/            URI to integer mapping, the source of type tags
//	├── port/            Host-owned buffer endpoints with cycle semantics
//	├── testbed/         Integration harness over WASM linear memory
//	└── cmd/atomdump/    Interactive atom tree inspector
//
// # Quick Start
//
// Map the vocabulary once, then write and read atoms through cursors:
//
//	mapper := urid.NewMapper()
//	urids := atombuf.MapURIDs(mapper)
//
//	buf := atombuf.NewAlignedBuf(256)
//	cursor := atombuf.NewCursor(buf.Bytes())
//	if err := atombuf.WriteInt(cursor, urids.Int, 42); err != nil {
//	    log.Fatal(err)
//	}
//
//	atom, err := buf.Read().NextAtom()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, err := atombuf.ReadInt(atom, urids.Int)
//	fmt.Println(v) // 42
//
// # Spaces and Writers
//
// Space[T] is a byte range whose start is aligned for T; AlignSpace and
// the Reader derive aligned views from raw buffers. SpaceWriter is the
// allocator abstraction: Cursor writes into fixed host-owned memory and
// AlignedBuf grows its own. AtomWriter frames one atom inside any
// SpaceWriter and keeps every enclosing header's size correct as nested
// content is written, so deep structures need no finalization step.
//
// # Atom Types
//
// The package ships the standard vocabulary: scalars (Int, Long, Float,
// Double, Bool, URID), Chunk for raw bytes, Vector for homogeneous scalar
// arrays, Tuple for heterogeneous children, Object for keyed properties,
// Sequence for timestamped events, String and Literal for text. Each type
// has Write/Read helpers plus incremental writer and iterator forms.
//
// # Type Tags
//
// Atoms are tagged with URIDs, integers a urid.Map assigns to URIs.
// Readers verify tags before interpreting bodies and fail with a typed
// error on mismatch; tags are only comparable between buffers produced
// under the same mapping.
//
// # Thread Safety
//
// urid.Mapper is safe for concurrent use. Readers, writers, and spaces
// are views over shared buffers and are NOT thread-safe; confine a buffer
// to one goroutine or synchronize access externally.
package atombuf
