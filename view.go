package atombuf

import (
	"unsafe"
)

// AtomAlign is the alignment every atom starts at within its enclosing
// space. The Go alignment of Header is only 4, so header-typed operations
// must not derive their alignment from the Go type.
const AtomAlign = 8

// This file is the only place in the library that reinterprets raw bytes as
// typed values. Every view goes through viewAs/viewSlice/viewString, which
// validate size and alignment before casting; callers are responsible for
// the bytes actually holding values of the target type.

func sizeOf[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

func alignOf[T any]() int {
	var z T
	// Wire records that start atoms or property entries are placed at
	// 8-byte boundaries even though their Go alignment is only 4.
	switch any(z).(type) {
	case Header, propertyBody:
		return AtomAlign
	}
	return int(unsafe.Alignof(z))
}

func sliceAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// paddingFor returns the number of bytes to skip so that b starts at an
// address that is a multiple of align. align must be a power of two.
func paddingFor(b []byte, align int) int {
	if len(b) == 0 {
		return 0
	}
	return int(-sliceAddr(b)) & (align - 1)
}

// viewAs reinterprets the first sizeof(T) bytes of b as a *T.
// b must be large enough and aligned for T; violating either is a bug in
// this library, not a data error, hence the panics.
func viewAs[T any](b []byte) *T {
	if len(b) < sizeOf[T]() {
		panic("atombuf: typed view over undersized byte range")
	}
	if paddingFor(b, alignOf[T]()) != 0 {
		panic("atombuf: typed view over misaligned byte range")
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// viewSlice reinterprets the first count*sizeof(T) bytes of b as a []T.
func viewSlice[T any](b []byte, count int) []T {
	if count == 0 {
		return nil
	}
	if len(b) < count*sizeOf[T]() {
		panic("atombuf: typed slice view over undersized byte range")
	}
	if paddingFor(b, alignOf[T]()) != 0 {
		panic("atombuf: typed slice view over misaligned byte range")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), count)
}

// wordBytes views a word slice as bytes. Word-backed storage is how the
// library obtains byte buffers that are guaranteed 8-aligned.
func wordBytes(words []uint64) []byte {
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), len(words)*AtomAlign)
}

// viewString reinterprets b as a string without copying. The caller must
// not let the result outlive the underlying buffer, and must not write to
// the viewed bytes afterwards.
func viewString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
