package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/cwbudde/algo-fftplan/internal/cpu"
)

// Kernel names recorded in wisdom entries.
const (
	kernelAuto   = "auto"   // radix-2 passes on power-of-two axes
	kernelNaive  = "naive"  // direct summation on every axis
	kernelDirect = "direct" // real-to-real definitional summation
)

// measureReps maps effort level to the number of timed repetitions per
// candidate kernel.
var measureReps = [4]int{0, 1, 3, 9}

// PlanDFT lowers a complex-to-complex problem. It returns nil if the
// arguments are unusable or if FlagWisdomOnly is set and no wisdom of at
// least the requested effort exists for this problem shape.
//
// In-place transforms pass the same slice as in and out. Not reentrant;
// serialized on the internal planner lock.
func PlanDFT(dims, howmany []IODim, in, out []complex128, sign int, flags uint) *Desc {
	if !validDims(dims, howmany) || in == nil || out == nil {
		return nil
	}

	if sign != Forward && sign != Backward {
		return nil
	}

	return withPlannerLock(func() *Desc {
		key := problemKey("dft", dims, howmany, sign, nil)

		kernel, ok := chooseKernel(key, dims, flags, func(kernel string) func() {
			e := newDFTExec(dims, howmany, sign, kernel)
			tin, tout := cloneComplex(in), cloneComplex(out)

			return func() { e.run(tin, tout) }
		})
		if !ok {
			return nil
		}

		e := newDFTExec(dims, howmany, sign, kernel)

		return newDesc("dft", key, kernel, flags, func() { e.run(in, out) })
	})
}

// PlanDFTR2C lowers a real-to-complex problem. The real input has extent
// dims[i].N per axis; the complex output stores only the non-redundant
// n/2+1 entries along the last axis. Always a forward transform.
func PlanDFTR2C(dims, howmany []IODim, in []float64, out []complex128, flags uint) *Desc {
	if !validDims(dims, howmany) || in == nil || out == nil {
		return nil
	}

	return withPlannerLock(func() *Desc {
		key := problemKey("r2c", dims, howmany, Forward, nil)

		kernel, ok := chooseKernel(key, dims, flags, func(kernel string) func() {
			e := newR2CExec(dims, howmany, kernel)
			tin, tout := cloneFloat(in), cloneComplex(out)

			return func() { e.run(tin, tout) }
		})
		if !ok {
			return nil
		}

		e := newR2CExec(dims, howmany, kernel)

		return newDesc("r2c", key, kernel, flags, func() { e.run(in, out) })
	})
}

// PlanDFTC2R lowers a complex-to-real problem, the inverse layout of
// PlanDFTR2C. Always a backward transform, unnormalized.
func PlanDFTC2R(dims, howmany []IODim, in []complex128, out []float64, flags uint) *Desc {
	if !validDims(dims, howmany) || in == nil || out == nil {
		return nil
	}

	return withPlannerLock(func() *Desc {
		key := problemKey("c2r", dims, howmany, Backward, nil)

		kernel, ok := chooseKernel(key, dims, flags, func(kernel string) func() {
			e := newC2RExec(dims, howmany, kernel)
			tin, tout := cloneComplex(in), cloneFloat(out)

			return func() { e.run(tin, tout) }
		})
		if !ok {
			return nil
		}

		e := newC2RExec(dims, howmany, kernel)

		return newDesc("c2r", key, kernel, flags, func() { e.run(in, out) })
	})
}

// PlanR2R lowers a real-to-real problem with one transform kind per axis
// (len(kinds) must equal len(dims)).
func PlanR2R(dims, howmany []IODim, in, out []float64, kinds []R2RCode, flags uint) *Desc {
	if !validDims(dims, howmany) || in == nil || out == nil {
		return nil
	}

	if len(kinds) != len(dims) {
		return nil
	}

	for i, k := range kinds {
		if !r2rKindValid(k, dims[i].N) {
			return nil
		}
	}

	return withPlannerLock(func() *Desc {
		key := problemKey("r2r", dims, howmany, 0, kinds)

		level := rigorLevel(flags)
		if flags&FlagWisdomOnly != 0 {
			e, ok := DefaultWisdom.Lookup(key)
			if !ok || e.Level < level {
				return nil
			}
		}

		if level > 0 {
			DefaultWisdom.Record(key, WisdomEntry{Level: level, Kernel: kernelDirect})
		}

		e := newR2RExec(dims, howmany, kinds)

		return newDesc("r2r", key, kernelDirect, flags, func() { e.run(in, out) })
	})
}

func newDesc(kind, key, kernel string, flags uint, exec func()) *Desc {
	return &Desc{kind: kind, key: key, kernel: kernel, flags: flags, exec: exec}
}

// chooseKernel resolves which complex kernel set a problem should use,
// consulting wisdom first, then either the estimate heuristic or actual
// measurement of candidate executors built by mkCandidate. Returns false
// when FlagWisdomOnly is set without a qualifying wisdom entry.
//
// Must be called with the planner lock held.
func chooseKernel(key string, dims []IODim, flags uint, mkCandidate func(kernel string) func()) (string, bool) {
	level := rigorLevel(flags)
	candidates := candidateKernels(dims)

	if e, ok := DefaultWisdom.Lookup(key); ok && e.Level >= level {
		for _, c := range candidates {
			if c == e.Kernel {
				return e.Kernel, true
			}
		}
	}

	if flags&FlagWisdomOnly != 0 {
		return "", false
	}

	if level == 0 {
		return estimateKernel(dims, cpu.DetectFeatures()), true
	}

	if len(candidates) == 1 {
		DefaultWisdom.Record(key, WisdomEntry{Level: level, Kernel: candidates[0]})
		return candidates[0], true
	}

	best := candidates[0]
	bestTime := time.Duration(-1)
	reps := measureReps[level]

	for _, c := range candidates {
		run := mkCandidate(c)

		start := time.Now()
		for r := 0; r < reps; r++ {
			run()
		}
		elapsed := time.Since(start)

		logger.Debug().
			Str("problem", key).
			Str("kernel", c).
			Dur("elapsed", elapsed).
			Msg("measured candidate kernel")

		if bestTime < 0 || elapsed < bestTime {
			best = c
			bestTime = elapsed
		}
	}

	DefaultWisdom.Record(key, WisdomEntry{Level: level, Kernel: best})

	return best, true
}

// candidateKernels returns the kernel sets worth considering: radix-2
// passes only pay off when at least one axis is a power of two.
func candidateKernels(dims []IODim) []string {
	for _, d := range dims {
		if d.N >= 2 && isPowerOf2(d.N) {
			return []string{kernelAuto, kernelNaive}
		}
	}

	return []string{kernelNaive}
}

// estimateKernel picks a kernel without measuring. Radix-2 passes win for
// any non-trivial power-of-two axis; on narrow-vector hosts the crossover
// sits a little higher, but direct summation only stays competitive for
// very short axes either way.
func estimateKernel(dims []IODim, features cpu.Features) string {
	threshold := 8
	if features.Vectorized() {
		threshold = 4
	}

	for _, d := range dims {
		if d.N >= threshold && isPowerOf2(d.N) {
			return kernelAuto
		}
	}

	for _, d := range dims {
		if d.N >= 2 && isPowerOf2(d.N) {
			return kernelAuto
		}
	}

	return kernelNaive
}

func validDims(dims, howmany []IODim) bool {
	if len(dims) == 0 {
		return false
	}

	for _, d := range dims {
		if d.N < 1 || d.InStride < 1 || d.OutStride < 1 {
			return false
		}
	}

	for _, h := range howmany {
		if h.N < 1 || h.InStride < 0 || h.OutStride < 0 {
			return false
		}
	}

	return true
}

// problemKey builds the wisdom signature of a problem: everything that
// shapes the lowered transform except the buffer addresses.
func problemKey(kind string, dims, howmany []IODim, sign int, kinds []R2RCode) string {
	var b strings.Builder

	b.WriteString(kind)

	for _, d := range dims {
		fmt.Fprintf(&b, ";%d/%d/%d", d.N, d.InStride, d.OutStride)
	}

	if len(howmany) > 0 {
		b.WriteString(";hm")
		for _, h := range howmany {
			fmt.Fprintf(&b, ";%d/%d/%d", h.N, h.InStride, h.OutStride)
		}
	}

	if sign != 0 {
		fmt.Fprintf(&b, ";sign=%d", sign)
	}

	for _, k := range kinds {
		fmt.Fprintf(&b, ";k=%s", k)
	}

	return b.String()
}

func cloneComplex(s []complex128) []complex128 {
	c := make([]complex128, len(s))
	copy(c, s)

	return c
}

func cloneFloat(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)

	return c
}
