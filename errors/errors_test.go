package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "out of space",
			err:      OutOfSpace(120, 128, 16),
			contains: []string{"[write]", "out_of_space", "requested 16", "120 of 128 used"},
		},
		{
			name:     "urid mismatch",
			err:      URIDMismatch(7, 8),
			contains: []string{"[read]", "urid_mismatch", "expected URID 7", "found 8"},
		},
		{
			name:     "unaligned",
			err:      Unaligned(PhaseAlign, 8),
			contains: []string{"[align]", "unaligned_buffer", "8 bytes"},
		},
		{
			name:     "minimal",
			err:      &Error{Phase: PhaseRead, Kind: KindInvalidValue},
			contains: []string{"[read]", "invalid_value"},
		},
		{
			name: "with cause",
			err: Wrap(PhaseRead, KindInvalidValue,
				errors.New("underlying error"), "bad literal body"),
			contains: []string{"[read]", "invalid_value", "bad literal body", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseWrite, KindOutOfSpace, cause, "")

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := OutOfSpace(0, 16, 32)

	if !errors.Is(err, &Error{Phase: PhaseWrite, Kind: KindOutOfSpace}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseRead, Kind: KindOutOfSpace}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseWrite, Kind: KindIllegalState}) {
		t.Error("Is should not match different kind")
	}
}

func TestIsKind(t *testing.T) {
	err := OutOfSpace(8, 16, 32)
	if !IsKind(err, KindOutOfSpace) {
		t.Error("IsKind should match direct error")
	}
	if IsKind(err, KindURIDMismatch) {
		t.Error("IsKind should not match other kinds")
	}

	wrapped := Wrap(PhaseWrite, KindIllegalState, err, "nested")
	if !IsKind(wrapped, KindOutOfSpace) {
		t.Error("IsKind should unwrap causes")
	}
	if IsKind(nil, KindOutOfSpace) {
		t.Error("IsKind(nil) should be false")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseWrite, KindOutOfSpace).
		Used(100).
		Capacity(128).
		Requested(64).
		Cause(cause).
		Detail("sequence event").
		Build()

	if err.Phase != PhaseWrite {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseWrite)
	}
	if err.Kind != KindOutOfSpace {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfSpace)
	}
	if err.Used != 100 || err.Capacity != 128 || err.Requested != 64 {
		t.Errorf("byte accounting = %d/%d/%d, want 100/128/64", err.Used, err.Capacity, err.Requested)
	}
	if err.Cause != cause {
		t.Error("Cause not set")
	}
	if err.Detail != "sequence event" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestOutOfBoundsPhases(t *testing.T) {
	r := OutOfBounds(PhaseRead, 16, 4)
	if r.Kind != KindReadingOutOfBounds {
		t.Errorf("read kind = %v", r.Kind)
	}
	w := OutOfBounds(PhaseWrite, 16, 4)
	if w.Kind != KindWritingOutOfBounds {
		t.Errorf("write kind = %v", w.Kind)
	}
}
