// Package fftplan is a planning layer for DFT execution. Callers describe
// the buffers, dimensions, strides and effort level of a transform through
// a staged builder, and receive a reusable plan that executes the transform
// through the underlying engine.
//
// The builder is a compile-time state machine: each stage is a distinct
// type exposing only the operations legal in that stage. Binding an input
// buffer yields an input stage, binding an output (or going in-place)
// yields a terminal stage, and real-to-real transforms must pass through a
// kind-selection stage before a Plan method exists at all. Sequencing
// mistakes therefore fail at the call site rather than at run time; only
// buffer sizing and engine acceptance remain runtime checks.
//
//	in := fftplan.AllocReal(256)
//	out := fftplan.AllocComplex(129)
//	plan, err := fftplan.NewPlanner().
//		Rigor(fftplan.Measure).
//		InputReal(in).
//		OutputComplex(out).
//		Dim1(256).
//		Plan()
//	if err != nil {
//		// The builder (with its buffers) is still intact for retry.
//	}
//	defer plan.Destroy()
//	plan.Execute()
//
// Plan creation and destruction serialize on a process-wide lock around the
// engine's non-reentrant planning entry points. Execute is not locked:
// distinct plans may execute concurrently, but a single plan must not be
// executed from multiple goroutines at once.
package fftplan
