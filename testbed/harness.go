// Package testbed holds integration tests that run the atom encoding
// against memory an actual host shares with a guest, using a WASM linear
// memory as the shared region. Plugin hosts hand plugins raw memory with
// no alignment promises, which is exactly what a guest memory view gives
// us.
package testbed

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// minimalModule is a hand-assembled WASM binary that declares one page of
// linear memory and exports it as "memory". It has no code; the module
// only exists so the runtime gives us guest-owned memory.
var minimalModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version 1

	// memory section: 1 memory, min 1 page, no max
	0x05, 0x03, 0x01, 0x00, 0x01,

	// export section: "memory" -> memory 0
	0x07, 0x0a, 0x01,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y',
	0x02, 0x00,
}

// guestMemory instantiates the minimal module and returns its exported
// linear memory. The runtime is torn down with the test.
func guestMemory(t *testing.T) api.Memory {
	t.Helper()
	ctx := context.Background()

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() {
		if err := r.Close(ctx); err != nil {
			t.Errorf("closing runtime: %v", err)
		}
	})

	mod, err := r.Instantiate(ctx, minimalModule)
	if err != nil {
		t.Fatalf("instantiating module: %v", err)
	}
	mem := mod.Memory()
	if mem == nil {
		t.Fatal("module has no exported memory")
	}
	return mem
}

// memoryView returns a writable view of size bytes of guest memory at
// offset. The view aliases the guest's memory until it grows.
func memoryView(t *testing.T, mem api.Memory, offset, size uint32) []byte {
	t.Helper()
	view, ok := mem.Read(offset, size)
	if !ok {
		t.Fatalf("reading %d bytes at %d out of range", size, offset)
	}
	return view
}
