package fftplan

// Dim describes one axis of a transform: its length and the distance (in
// logical storage elements) between consecutive entries along that axis in
// the input and output buffers. A transform's axes are ordered outermost
// first.
type Dim struct {
	N         int
	InStride  int
	OutStride int
}

// RowMajor derives dimensions with tight row-major strides from
// outermost-to-innermost axis lengths: the last axis varies fastest with
// stride 1. Panics if lengths is empty or any length is not positive;
// supplying meaningless dimensions is a caller bug, not a runtime
// condition.
//
// The strides are symmetric. For real-to-complex and complex-to-real plans
// built through the planner, the complex side is re-derived at plan time
// with the last axis tightened to n/2+1, so tightly packed buffers on both
// sides line up without padding.
func RowMajor(lengths ...int) []Dim {
	if len(lengths) == 0 {
		panic("fftplan: RowMajor: empty dimensions")
	}

	dims := make([]Dim, len(lengths))
	stride := 1

	for i := len(lengths) - 1; i >= 0; i-- {
		if lengths[i] < 1 {
			panic("fftplan: RowMajor: axis length must be positive")
		}

		dims[i] = Dim{N: lengths[i], InStride: stride, OutStride: stride}
		stride *= lengths[i]
	}

	return dims
}

// SubArray validates explicitly strided dimensions, for transforming a
// sub-region of a larger contiguous array: every k-th element, or a slab
// of a larger N-dimensional array. Panics on an empty list or on
// non-positive lengths or strides.
func SubArray(entries []Dim) []Dim {
	if len(entries) == 0 {
		panic("fftplan: SubArray: empty dimensions")
	}

	dims := make([]Dim, len(entries))
	for i, e := range entries {
		if e.N < 1 {
			panic("fftplan: SubArray: axis length must be positive")
		}

		if e.InStride < 1 || e.OutStride < 1 {
			panic("fftplan: SubArray: strides must be positive")
		}

		dims[i] = e
	}

	return dims
}

// requiredExtents returns the minimum element counts the real-typed and
// complex-typed buffers must hold for one transform over dims. All axes
// but the last contribute their full length to both sides; the last axis
// contributes n to the real side and the non-redundant n/2+1 to the
// complex side when asymmetric is true (real<->complex transforms), and n
// to both sides otherwise.
func requiredExtents(dims []Dim, asymmetric bool) (realExt, complexExt int) {
	head := 1
	for _, d := range dims[:len(dims)-1] {
		head *= d.N
	}

	last := dims[len(dims)-1].N
	realExt = head * last

	if asymmetric {
		complexExt = head * (last/2 + 1)
	} else {
		complexExt = realExt
	}

	return realExt, complexExt
}
