package fftplan

import "github.com/cwbudde/algo-fftplan/internal/engine"

// meta is the mutable specification a builder accumulates: rigor,
// direction, wisdom restriction, storage element strides, transform
// dimensions, batch dimensions and real-to-real kinds. Builder stages copy
// it by value on every stage transition, so an earlier stage can be reused
// to derive several plans.
type meta struct {
	rigor             Rigor
	direction         Direction
	wisdomRestriction bool

	inStride  int // element stride of the input storage view
	outStride int // element stride of the output storage view

	dims            []Dim
	explicitStrides bool
	howmany         []Dim
	batchCount      int
	kinds           []R2RKind
}

func newMeta() meta {
	return meta{rigor: Estimate, direction: Forward, inStride: 1, outStride: 1}
}

func (m *meta) setRowMajor(lengths []int) {
	m.dims = RowMajor(lengths...)
	m.explicitStrides = false
}

func (m *meta) setSubArray(entries []Dim) {
	m.dims = SubArray(entries)
	m.explicitStrides = true
}

func (m *meta) setBatch(count int) {
	if count < 1 {
		panic("fftplan: Batch: count must be positive")
	}

	m.batchCount = count
	m.howmany = nil
}

func (m *meta) setBatchDims(entries []Dim) {
	if len(entries) == 0 {
		panic("fftplan: BatchDims: empty batch dimensions")
	}

	for _, e := range entries {
		if e.N < 1 || e.InStride < 0 || e.OutStride < 0 {
			panic("fftplan: BatchDims: invalid batch dimension")
		}
	}

	m.howmany = append([]Dim(nil), entries...)
	m.batchCount = 0
}

func (m *meta) setKinds(kinds []R2RKind) {
	if len(kinds) == 0 {
		panic("fftplan: Kinds: no kinds given")
	}

	if len(kinds) > 1 && len(m.dims) > 0 && len(kinds) != len(m.dims) {
		panic("fftplan: Kinds: kind count must be 1 or match the dimension count")
	}

	m.kinds = append([]R2RKind(nil), kinds...)
}

// flags builds the engine flag word from rigor and wisdom restriction.
func (m *meta) flags() uint {
	f := m.rigor.flags()
	if m.wisdomRestriction {
		f |= engine.FlagWisdomOnly
	}

	return f
}
