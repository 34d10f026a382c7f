package urid

// URID is an integer identifier standing in for a URI, assigned by a Map.
// The zero value is reserved and never identifies anything.
type URID uint32

// IsValid reports whether the URID identifies a URI.
func (u URID) IsValid() bool {
	return u != 0
}

// Map assigns stable URIDs to URI strings.
//
// Implementations must be idempotent: mapping the same URI twice returns the
// same URID for the lifetime of the mapper. Mapping is allowed to allocate
// and block, and must therefore never be called from a real-time path.
type Map interface {
	Map(uri string) URID
}

// Unmap resolves a URID back to the URI it was assigned to. It returns ""
// for URIDs the mapper never produced, including zero.
type Unmap interface {
	Unmap(u URID) string
}
