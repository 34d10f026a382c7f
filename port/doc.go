// Package port adapts host-owned buffers to the atom encoding with the
// access rules of a processing cycle: an input port exposes exactly one
// top-level atom per cycle, and an output port accepts exactly one.
//
// The host owns the memory on both sides. Readers and writers are views
// that must be re-created, or Reset, when the host hands over the buffers
// of the next cycle.
package port
