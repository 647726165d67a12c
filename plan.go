package fftplan

import (
	"io"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// IoPlan is a finalized out-of-place transform: it owns the validated
// specification's lowered descriptor plus the two bound storages. Execute
// may be called any number of times; it reads the input buffer and
// overwrites the output buffer, allocating nothing.
//
// Execute is not synchronized. Distinct plans may execute concurrently
// from distinct goroutines, but a single plan must not.
type IoPlan[T, U Element] struct {
	desc      *engine.Desc
	in        []T
	out       []U
	destroyed bool
}

// Input returns the plan's input buffer.
func (p *IoPlan[T, U]) Input() []T {
	return p.in
}

// Output returns the plan's output buffer.
func (p *IoPlan[T, U]) Output() []U {
	return p.out
}

// Execute runs the transform on the bound buffers. Returns
// ErrPlanDestroyed after Destroy.
func (p *IoPlan[T, U]) Execute() error {
	if p.destroyed {
		return ErrPlanDestroyed
	}

	engine.Execute(p.desc)

	return nil
}

// Destroy releases the descriptor through the engine's guarded teardown
// entry point. Idempotent; the buffers remain usable by the caller.
func (p *IoPlan[T, U]) Destroy() {
	if p.destroyed {
		return
	}

	p.destroyed = true
	engine.Destroy(p.desc)
}

// Fprint writes a human-readable description of the lowered plan.
func (p *IoPlan[T, U]) Fprint(w io.Writer) {
	engine.Fprint(w, p.desc)
}

// InplacePlan is a finalized in-place transform over a single buffer.
type InplacePlan[T Element] struct {
	desc      *engine.Desc
	inout     []T
	destroyed bool
}

// InOut returns the combined input/output buffer.
func (p *InplacePlan[T]) InOut() []T {
	return p.inout
}

// Execute runs the transform, overwriting the buffer with the result.
// Returns ErrPlanDestroyed after Destroy.
func (p *InplacePlan[T]) Execute() error {
	if p.destroyed {
		return ErrPlanDestroyed
	}

	engine.Execute(p.desc)

	return nil
}

// Destroy releases the descriptor. Idempotent.
func (p *InplacePlan[T]) Destroy() {
	if p.destroyed {
		return
	}

	p.destroyed = true
	engine.Destroy(p.desc)
}

// Fprint writes a human-readable description of the lowered plan.
func (p *InplacePlan[T]) Fprint(w io.Writer) {
	engine.Fprint(w, p.desc)
}
