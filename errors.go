package fftplan

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Plan.
var (
	// ErrNoLengthNoDefault is returned when no dimensions were set and the
	// transform kind has no implicit default. Complex-to-complex and
	// real-to-real transforms default to one dimension spanning the whole
	// input buffer; real-to-complex and complex-to-real transforms have no
	// sane default and require explicit dimensions.
	ErrNoLengthNoDefault = errors.New("fftplan: no dimensions set and the transform kind has no default length")

	// ErrPlanFailed is returned when the engine rejects the lowered
	// problem. The engine's signal is opaque: a wisdom restriction with no
	// matching wisdom and an unplannable problem shape are not
	// distinguishable from here.
	ErrPlanFailed = errors.New("fftplan: engine rejected the plan")

	// ErrPlanDestroyed is returned by Execute after Destroy.
	ErrPlanDestroyed = errors.New("fftplan: plan has been destroyed")
)

// BufferSizeError reports that a bound buffer is shorter than the extents
// the configured dimensions require. The builder that produced it remains
// valid: rebind a larger buffer and call Plan again.
type BufferSizeError struct {
	InLen  int   // logical length of the bound input storage
	OutLen int   // logical length of the bound output storage
	Dims   []Dim // the dimensions the check ran against
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("fftplan: buffer too small for dims %v: input has %d elements, output has %d",
		e.Dims, e.InLen, e.OutLen)
}
