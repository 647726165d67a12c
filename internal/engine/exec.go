package engine

import (
	"fmt"
	"io"
)

// Execute runs the lowered transform on the buffers bound at plan time.
// It allocates nothing and touches no shared planner state, so distinct
// descriptors may execute concurrently. Executing a destroyed descriptor
// is a caller bug and panics.
func Execute(d *Desc) {
	if d.exec == nil {
		panic("engine: Execute on destroyed descriptor")
	}

	d.exec()
}

// Destroy releases a descriptor. Idempotent; serialized on the planner
// lock like plan creation.
func Destroy(d *Desc) {
	if d == nil {
		return
	}

	withPlannerLock(func() struct{} {
		d.destroyed = true
		d.exec = nil

		return struct{}{}
	})
}

// Fprint writes a human-readable description of the descriptor, in the
// spirit of fftw_print_plan.
func Fprint(w io.Writer, d *Desc) {
	if d == nil || d.destroyed {
		fmt.Fprintln(w, "(destroyed descriptor)")
		return
	}

	fmt.Fprintf(w, "(%s kernel=%s flags=%#x problem=%q)\n", d.kind, d.kernel, d.flags, d.key)
}
