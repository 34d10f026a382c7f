// Package urid implements the URI-to-integer mapping service consumed by the
// atom encoding layer.
//
// A URID is a small positive integer standing in for a URI. Atom type
// identity in the processing hot path is always decided by URID equality,
// never by string comparison. The zero URID is reserved and means
// "absent/none/invalid" everywhere.
//
// The Map interface is the contract the atom layer depends on; Mapper is the
// built-in hash-table implementation. Mapping is NOT real-time safe: it
// allocates and takes a lock. Callers must resolve every URID they need once
// during initialization and cache the results (see atombuf.MapURIDs), so that
// the processing cycle only ever compares integers.
package urid
