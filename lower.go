package fftplan

import "github.com/cwbudde/algo-fftplan/internal/engine"

// pairing describes an element-type combination of bound storages: which
// side, if any, holds the halved spectrum on the last axis, and whether the
// combination has a dimensionless default. The pairing is fixed by the
// staged constructor the caller used, never by runtime type inspection.
type pairing struct {
	name       string
	hasDefault bool
	halvedIn   bool
	halvedOut  bool
	r2r        bool
}

var (
	pairC2C = pairing{name: "c2c", hasDefault: true}
	pairR2C = pairing{name: "r2c", halvedOut: true}
	pairC2R = pairing{name: "c2r", halvedIn: true}
	pairR2R = pairing{name: "r2r", hasDefault: true, r2r: true}
)

// lowerFunc is the engine entry point bound to a terminal builder stage.
// Each pairing has exactly one, selected at the stage transition.
type lowerFunc[T, U Element] func(dims, howmany []engine.IODim, in []T, out []U,
	sign int, flags uint, kinds []engine.R2RCode) *engine.Desc

func lowerC2C(dims, howmany []engine.IODim, in, out []complex128,
	sign int, flags uint, _ []engine.R2RCode) *engine.Desc {
	return engine.PlanDFT(dims, howmany, in, out, sign, flags)
}

func lowerR2C(dims, howmany []engine.IODim, in []float64, out []complex128,
	_ int, flags uint, _ []engine.R2RCode) *engine.Desc {
	return engine.PlanDFTR2C(dims, howmany, in, out, flags)
}

func lowerC2R(dims, howmany []engine.IODim, in []complex128, out []float64,
	_ int, flags uint, _ []engine.R2RCode) *engine.Desc {
	return engine.PlanDFTC2R(dims, howmany, in, out, flags)
}

func lowerR2R(dims, howmany []engine.IODim, in, out []float64,
	_ int, flags uint, kinds []engine.R2RCode) *engine.Desc {
	return engine.PlanR2R(dims, howmany, in, out, kinds, flags)
}

// lowered is a fully resolved problem ready for an engine entry point.
type lowered struct {
	dims    []engine.IODim
	howmany []engine.IODim
	kinds   []engine.R2RCode
}

// resolve turns the accumulated specification into engine dimensions:
// apply the dimensionless default where the pairing has one, derive tight
// per-side strides for row-major dims, check the bound storages against
// the required extents, broadcast real-to-real kinds across the rank, and
// compose the storage element strides into the axis strides. Lengths are
// logical storage elements. No engine interaction happens here; a failed
// resolve leaves the builder untouched for retry.
func resolve(m *meta, pair pairing, inLogical, outLogical int) (lowered, error) {
	dims := m.dims
	explicit := m.explicitStrides

	if len(dims) == 0 {
		if !pair.hasDefault {
			return lowered{}, ErrNoLengthNoDefault
		}

		if inLogical < 1 {
			return lowered{}, &BufferSizeError{InLen: inLogical, OutLen: outLogical}
		}

		dims = []Dim{{N: inLogical, InStride: 1, OutStride: 1}}
		explicit = false
	}

	rank := len(dims)
	last := rank - 1

	// Per-side extents: the halved side stores n/2+1 entries on the last
	// axis, every other axis is symmetric.
	inExt := make([]int, rank)
	outExt := make([]int, rank)

	for i, d := range dims {
		inExt[i], outExt[i] = d.N, d.N
	}

	if pair.halvedIn {
		inExt[last] = dims[last].N/2 + 1
	}

	if pair.halvedOut {
		outExt[last] = dims[last].N/2 + 1
	}

	inStr := make([]int, rank)
	outStr := make([]int, rank)

	if explicit {
		for i, d := range dims {
			inStr[i], outStr[i] = d.InStride, d.OutStride
		}
	} else {
		copy(inStr, tightStrides(inExt))
		copy(outStr, tightStrides(outExt))
	}

	realExt, complexExt := requiredExtents(dims, pair.halvedIn || pair.halvedOut)

	requiredIn, requiredOut := realExt, realExt
	if pair.halvedIn {
		requiredIn = complexExt
	}

	if pair.halvedOut {
		requiredOut = complexExt
	}

	// Contiguous batches place each repetition after the span of the
	// previous one on each side.
	spanIn := spanOf(inExt, inStr)
	spanOut := spanOf(outExt, outStr)

	var howmany []Dim
	switch {
	case m.batchCount > 1:
		howmany = []Dim{{N: m.batchCount, InStride: spanIn, OutStride: spanOut}}
	case len(m.howmany) > 0:
		howmany = m.howmany
	}

	totalIn, totalOut := spanIn, spanOut
	for _, h := range howmany {
		totalIn += (h.N - 1) * h.InStride
		totalOut += (h.N - 1) * h.OutStride
	}

	if inLogical < requiredIn || outLogical < requiredOut ||
		inLogical < totalIn || outLogical < totalOut {
		errDims := make([]Dim, rank)
		for i, d := range dims {
			errDims[i] = Dim{N: d.N, InStride: inStr[i], OutStride: outStr[i]}
		}

		return lowered{}, &BufferSizeError{InLen: inLogical, OutLen: outLogical, Dims: errDims}
	}

	var kinds []engine.R2RCode
	if pair.r2r {
		ks := m.kinds
		if len(ks) == 1 && rank > 1 {
			one := ks[0]
			ks = make([]R2RKind, rank)

			for i := range ks {
				ks[i] = one
			}
		}

		if len(ks) != rank {
			panic("fftplan: Plan: kind count must be 1 or match the dimension count")
		}

		kinds = make([]engine.R2RCode, rank)
		for i, k := range ks {
			kinds[i] = k.code()
		}
	}

	eDims := make([]engine.IODim, rank)
	for i, d := range dims {
		eDims[i] = engine.IODim{
			N:         d.N,
			InStride:  inStr[i] * m.inStride,
			OutStride: outStr[i] * m.outStride,
		}
	}

	eHow := make([]engine.IODim, len(howmany))
	for i, h := range howmany {
		eHow[i] = engine.IODim{
			N:         h.N,
			InStride:  h.InStride * m.inStride,
			OutStride: h.OutStride * m.outStride,
		}
	}

	return lowered{dims: eDims, howmany: eHow, kinds: kinds}, nil
}

// tightStrides derives row-major strides for the given per-axis extents.
func tightStrides(ext []int) []int {
	strides := make([]int, len(ext))
	acc := 1

	for i := len(ext) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= ext[i]
	}

	return strides
}

// spanOf returns the number of logical elements between the first and last
// element touched by one transform, inclusive.
func spanOf(ext, strides []int) int {
	span := 1
	for i := range ext {
		span += (ext[i] - 1) * strides[i]
	}

	return span
}
