package engine

import "math"

// twiddleTable returns count roots of unity W[k] = exp(sign*2*pi*i*k/n).
func twiddleTable(n, count, sign int) []complex128 {
	tw := make([]complex128, count)
	for k := 0; k < count; k++ {
		angle := float64(sign) * 2.0 * math.Pi * float64(k) / float64(n)
		tw[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return tw
}

// bitrevIndices returns the bit-reversal permutation for a size-n radix-2
// pass. n must be a power of two.
func bitrevIndices(n int) []int {
	bits := 0
	for v := n; v > 1; v >>= 1 {
		bits++
	}

	bitrev := make([]int, n)
	for i := 0; i < n; i++ {
		r := 0
		v := i
		for b := 0; b < bits; b++ {
			r = (r << 1) | (v & 1)
			v >>= 1
		}
		bitrev[i] = r
	}

	return bitrev
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// axisKernel is the 1-D transform bound to one dense axis: either an
// iterative radix-2 pass or a direct summation over a precomputed full
// twiddle table. All tables are built at plan time; apply never allocates.
type axisKernel struct {
	n      int
	radix2 bool
	tw     []complex128
	bitrev []int
}

func newAxisKernel(n, sign int, wantRadix2 bool) axisKernel {
	if wantRadix2 && n >= 2 && isPowerOf2(n) {
		return axisKernel{
			n:      n,
			radix2: true,
			tw:     twiddleTable(n, n/2, sign),
			bitrev: bitrevIndices(n),
		}
	}

	return axisKernel{n: n, tw: twiddleTable(n, n, sign)}
}

// apply transforms buf in place; tmp is scratch of at least n elements.
func (k *axisKernel) apply(buf, tmp []complex128) {
	if k.radix2 {
		k.applyRadix2(buf)
		return
	}

	k.applyDirect(buf, tmp)
}

func (k *axisKernel) applyRadix2(buf []complex128) {
	n := k.n
	for i, j := range k.bitrev {
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				w := k.tw[j*step]
				a := buf[start+j]
				b := buf[start+j+half] * w
				buf[start+j] = a + b
				buf[start+j+half] = a - b
			}
		}
	}
}

func (k *axisKernel) applyDirect(buf, tmp []complex128) {
	n := k.n
	for out := 0; out < n; out++ {
		var sum complex128

		idx := 0
		for j := 0; j < n; j++ {
			sum += buf[j] * k.tw[idx]

			idx += out
			if idx >= n {
				idx -= n
			}
		}

		tmp[out] = sum
	}

	copy(buf[:n], tmp[:n])
}

// denseFFT performs an N-D complex transform in place over a dense
// row-major scratch array, one axis at a time.
type denseFFT struct {
	n       []int
	scratch []complex128
	line    []complex128
	tmp     []complex128
	axes    []axisKernel
}

func newDenseFFT(n []int, sign int, kernel string) denseFFT {
	total := 1
	maxN := 1

	for _, v := range n {
		total *= v
		if v > maxN {
			maxN = v
		}
	}

	axes := make([]axisKernel, len(n))
	for i, v := range n {
		axes[i] = newAxisKernel(v, sign, kernel == kernelAuto)
	}

	return denseFFT{
		n:       n,
		scratch: make([]complex128, total),
		line:    make([]complex128, maxN),
		tmp:     make([]complex128, maxN),
		axes:    axes,
	}
}

func (d *denseFFT) transform() {
	stride := 1
	for a := len(d.n) - 1; a >= 0; a-- {
		d.transformAxis(a, stride)
		stride *= d.n[a]
	}
}

func (d *denseFFT) transformAxis(a, stride int) {
	n := d.n[a]
	span := stride * n

	for blockStart := 0; blockStart < len(d.scratch); blockStart += span {
		for off := 0; off < stride; off++ {
			base := blockStart + off

			for i := 0; i < n; i++ {
				d.line[i] = d.scratch[base+i*stride]
			}

			d.axes[a].apply(d.line[:n], d.tmp[:n])

			for i := 0; i < n; i++ {
				d.scratch[base+i*stride] = d.line[i]
			}
		}
	}
}

// denseStrides returns the row-major stride of each axis in a dense array
// with extents n.
func denseStrides(n []int) []int {
	strides := make([]int, len(n))
	acc := 1

	for a := len(n) - 1; a >= 0; a-- {
		strides[a] = acc
		acc *= n[a]
	}

	return strides
}

// batchWalker steps through the batch ("howmany") multi-index, tracking the
// input and output base offsets. A zero batch list yields one iteration.
type batchWalker struct {
	howmany []IODim
	ctr     []int
}

func newBatchWalker(howmany []IODim) batchWalker {
	return batchWalker{howmany: howmany, ctr: make([]int, len(howmany))}
}

// next advances the walker, returning false once all batch elements have
// been visited. The counters end zeroed so the walker is reusable.
func (b *batchWalker) next(inBase, outBase *int) bool {
	for a := len(b.howmany) - 1; a >= 0; a-- {
		b.ctr[a]++
		*inBase += b.howmany[a].InStride
		*outBase += b.howmany[a].OutStride

		if b.ctr[a] < b.howmany[a].N {
			return true
		}

		*inBase -= b.howmany[a].N * b.howmany[a].InStride
		*outBase -= b.howmany[a].N * b.howmany[a].OutStride
		b.ctr[a] = 0
	}

	return false
}

// dftExec is a lowered complex-to-complex problem.
type dftExec struct {
	denseFFT
	dims  []IODim
	batch batchWalker
	ctr   []int
}

func newDFTExec(dims, howmany []IODim, sign int, kernel string) *dftExec {
	n := make([]int, len(dims))
	for i, d := range dims {
		n[i] = d.N
	}

	return &dftExec{
		denseFFT: newDenseFFT(n, sign, kernel),
		dims:     dims,
		batch:    newBatchWalker(howmany),
		ctr:      make([]int, len(dims)),
	}
}

func (e *dftExec) run(in, out []complex128) {
	inBase, outBase := 0, 0
	for {
		e.gather(in, inBase)
		e.transform()
		e.scatter(out, outBase)

		if !e.batch.next(&inBase, &outBase) {
			return
		}
	}
}

func (e *dftExec) gather(src []complex128, base int) {
	idx := base
	for i := range e.scratch {
		e.scratch[i] = src[idx]

		for a := len(e.n) - 1; a >= 0; a-- {
			e.ctr[a]++
			idx += e.dims[a].InStride

			if e.ctr[a] < e.n[a] {
				break
			}

			idx -= e.n[a] * e.dims[a].InStride
			e.ctr[a] = 0
		}
	}
}

func (e *dftExec) scatter(dst []complex128, base int) {
	idx := base
	for i := range e.scratch {
		dst[idx] = e.scratch[i]

		for a := len(e.n) - 1; a >= 0; a-- {
			e.ctr[a]++
			idx += e.dims[a].OutStride

			if e.ctr[a] < e.n[a] {
				break
			}

			idx -= e.n[a] * e.dims[a].OutStride
			e.ctr[a] = 0
		}
	}
}

// r2cExec lowers a real-to-halfcomplex problem: the real input is embedded
// into the dense complex scratch, transformed forward, and the
// non-redundant half of the last axis is written out.
type r2cExec struct {
	denseFFT
	dims     []IODim
	batch    batchWalker
	ctr      []int
	outExt   []int
	dstride  []int
	totalOut int
}

func newR2CExec(dims, howmany []IODim, kernel string) *r2cExec {
	n := make([]int, len(dims))
	for i, d := range dims {
		n[i] = d.N
	}

	outExt := make([]int, len(n))
	copy(outExt, n)
	outExt[len(n)-1] = n[len(n)-1]/2 + 1

	totalOut := 1
	for _, v := range outExt {
		totalOut *= v
	}

	return &r2cExec{
		denseFFT: newDenseFFT(n, Forward, kernel),
		dims:     dims,
		batch:    newBatchWalker(howmany),
		ctr:      make([]int, len(dims)),
		outExt:   outExt,
		dstride:  denseStrides(n),
		totalOut: totalOut,
	}
}

func (e *r2cExec) run(in []float64, out []complex128) {
	inBase, outBase := 0, 0
	for {
		e.gatherReal(in, inBase)
		e.transform()
		e.scatterHalf(out, outBase)

		if !e.batch.next(&inBase, &outBase) {
			return
		}
	}
}

func (e *r2cExec) gatherReal(src []float64, base int) {
	idx := base
	for i := range e.scratch {
		e.scratch[i] = complex(src[idx], 0)

		for a := len(e.n) - 1; a >= 0; a-- {
			e.ctr[a]++
			idx += e.dims[a].InStride

			if e.ctr[a] < e.n[a] {
				break
			}

			idx -= e.n[a] * e.dims[a].InStride
			e.ctr[a] = 0
		}
	}
}

func (e *r2cExec) scatterHalf(dst []complex128, base int) {
	denseIdx, outIdx := 0, base

	for i := 0; i < e.totalOut; i++ {
		dst[outIdx] = e.scratch[denseIdx]

		for a := len(e.n) - 1; a >= 0; a-- {
			e.ctr[a]++
			denseIdx += e.dstride[a]
			outIdx += e.dims[a].OutStride

			if e.ctr[a] < e.outExt[a] {
				break
			}

			denseIdx -= e.outExt[a] * e.dstride[a]
			outIdx -= e.outExt[a] * e.dims[a].OutStride
			e.ctr[a] = 0
		}
	}
}

// c2rExec lowers a halfcomplex-to-real problem: the stored half spectrum is
// expanded by Hermitian symmetry, transformed backward, and the real parts
// are written out. The transform is unnormalized.
type c2rExec struct {
	denseFFT
	dims    []IODim
	batch   batchWalker
	ctr     []int
	inExt   []int
	dstride []int
	totalIn int
}

func newC2RExec(dims, howmany []IODim, kernel string) *c2rExec {
	n := make([]int, len(dims))
	for i, d := range dims {
		n[i] = d.N
	}

	inExt := make([]int, len(n))
	copy(inExt, n)
	inExt[len(n)-1] = n[len(n)-1]/2 + 1

	totalIn := 1
	for _, v := range inExt {
		totalIn *= v
	}

	return &c2rExec{
		denseFFT: newDenseFFT(n, Backward, kernel),
		dims:     dims,
		batch:    newBatchWalker(howmany),
		ctr:      make([]int, len(dims)),
		inExt:    inExt,
		dstride:  denseStrides(n),
		totalIn:  totalIn,
	}
}

func (e *c2rExec) run(in []complex128, out []float64) {
	inBase, outBase := 0, 0
	for {
		e.gatherHalf(in, inBase)
		e.hermitianFill()
		e.transform()
		e.scatterReal(out, outBase)

		if !e.batch.next(&inBase, &outBase) {
			return
		}
	}
}

func (e *c2rExec) gatherHalf(src []complex128, base int) {
	denseIdx, inIdx := 0, base

	for i := 0; i < e.totalIn; i++ {
		e.scratch[denseIdx] = src[inIdx]

		for a := len(e.n) - 1; a >= 0; a-- {
			e.ctr[a]++
			denseIdx += e.dstride[a]
			inIdx += e.dims[a].InStride

			if e.ctr[a] < e.inExt[a] {
				break
			}

			denseIdx -= e.inExt[a] * e.dstride[a]
			inIdx -= e.inExt[a] * e.dims[a].InStride
			e.ctr[a] = 0
		}
	}
}

// hermitianFill reconstructs the redundant half of the last axis:
// X[k1,...,kr] = conj(X[(n1-k1)%n1, ..., (nr-kr)%nr]). The mirror source
// always lies in the stored half because kr > nr/2 implies nr-kr < nr/2+1.
func (e *c2rExec) hermitianFill() {
	last := len(e.n) - 1
	half := e.n[last] / 2

	for i := range e.scratch {
		rem := i
		mirror := 0
		lastCoord := 0

		for a := 0; a < len(e.n); a++ {
			coord := rem / e.dstride[a]
			rem %= e.dstride[a]

			if a == last {
				lastCoord = coord
			}

			m := 0
			if coord != 0 {
				m = e.n[a] - coord
			}

			mirror += m * e.dstride[a]
		}

		if lastCoord > half {
			c := e.scratch[mirror]
			e.scratch[i] = complex(real(c), -imag(c))
		}
	}
}

func (e *c2rExec) scatterReal(dst []float64, base int) {
	idx := base
	for i := range e.scratch {
		dst[idx] = real(e.scratch[i])

		for a := len(e.n) - 1; a >= 0; a-- {
			e.ctr[a]++
			idx += e.dims[a].OutStride

			if e.ctr[a] < e.n[a] {
				break
			}

			idx -= e.n[a] * e.dims[a].OutStride
			e.ctr[a] = 0
		}
	}
}
