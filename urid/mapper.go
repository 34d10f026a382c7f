package urid

import (
	"sync"

	"go.uber.org/zap"
)

// Mapper is a hash-table backed Map and Unmap implementation.
//
// URIDs are assigned sequentially starting at 1. A Mapper is safe for
// concurrent use, but mapping takes a lock and may allocate; resolve and
// cache URIDs during initialization, not in a processing cycle.
type Mapper struct {
	mu    sync.Mutex
	urids map[string]URID
	uris  []string
}

// NewMapper creates an empty mapper.
func NewMapper() *Mapper {
	return &Mapper{
		urids: make(map[string]URID),
	}
}

// Map returns the URID for uri, assigning a fresh one on first use.
// The empty URI maps to the reserved zero URID.
func (m *Mapper) Map(uri string) URID {
	if uri == "" {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.urids[uri]; ok {
		return u
	}

	m.uris = append(m.uris, uri)
	u := URID(len(m.uris))
	m.urids[uri] = u

	Logger().Debug("mapped new URID",
		zap.String("uri", uri),
		zap.Uint32("urid", uint32(u)))

	return u
}

// Unmap returns the URI that u was assigned to, or "" if u is unknown.
func (m *Mapper) Unmap(u URID) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := int(u) - 1
	if i < 0 || i >= len(m.uris) {
		return ""
	}
	return m.uris[i]
}

// Len returns the number of URIs mapped so far.
func (m *Mapper) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.uris)
}
