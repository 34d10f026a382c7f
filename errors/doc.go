// Package errors provides structured error types for the atombuf library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the byte-accounting context of the failed
// operation: how much was requested, how much was available, and which URIDs
// were expected versus found.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrite, errors.KindOutOfSpace).
//		Used(120).
//		Capacity(128).
//		Requested(16).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfSpace(used, capacity, requested)
//	err := errors.URIDMismatch(expected, found)
//
// All errors implement the standard error interface and support errors.Is/As.
// Constructors do not format messages eagerly; rendering happens in Error(),
// so returning one from a real-time processing path costs a single
// allocation at most.
package errors
