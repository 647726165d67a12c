package engine

import "math"

// r2rExec lowers a real-to-real problem: each axis is transformed by its
// own kind via the direct definitional summation. All transforms are
// unnormalized, so the round-trip scale factors are n (R2HC/HC2R, DHT),
// 2n (the DCT-II/III, DST-II/III and the type-IV pairs), 2(n-1) for DCT-I
// and 2(n+1) for DST-I.
type r2rExec struct {
	n       []int
	dims    []IODim
	kinds   []R2RCode
	batch   batchWalker
	scratch []float64
	line    []float64
	tmp     []float64
	ctr     []int
}

// r2rKindValid reports whether a kind is usable for an axis of length n.
// DCT-I is the only kind with a minimum length: its logical size is
// 2(n-1), which degenerates at n = 1.
func r2rKindValid(kind R2RCode, n int) bool {
	if kind > RODFT11 {
		return false
	}

	if kind == REDFT00 && n < 2 {
		return false
	}

	return true
}

func newR2RExec(dims, howmany []IODim, kinds []R2RCode) *r2rExec {
	n := make([]int, len(dims))
	total := 1
	maxN := 1

	for i, d := range dims {
		n[i] = d.N
		total *= d.N

		if d.N > maxN {
			maxN = d.N
		}
	}

	return &r2rExec{
		n:       n,
		dims:    dims,
		kinds:   kinds,
		batch:   newBatchWalker(howmany),
		scratch: make([]float64, total),
		line:    make([]float64, maxN),
		tmp:     make([]float64, maxN),
		ctr:     make([]int, len(dims)),
	}
}

func (e *r2rExec) run(in, out []float64) {
	inBase, outBase := 0, 0
	for {
		e.gather(in, inBase)

		stride := 1
		for a := len(e.n) - 1; a >= 0; a-- {
			e.transformAxis(a, stride)
			stride *= e.n[a]
		}

		e.scatter(out, outBase)

		if !e.batch.next(&inBase, &outBase) {
			return
		}
	}
}

func (e *r2rExec) gather(src []float64, base int) {
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

func (e *r2rExec) scatter(dst []float64, base int) {
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

func (e *r2rExec) transformAxis(a, stride int) {
	n := e.n[a]
	span := stride * n

	for blockStart := 0; blockStart < len(e.scratch); blockStart += span {
		for off := 0; off < stride; off++ {
			base := blockStart + off

			for i := 0; i < n; i++ {
				e.line[i] = e.scratch[base+i*stride]
			}

			applyR2R(e.kinds[a], e.line[:n], e.tmp[:n])

			for i := 0; i < n; i++ {
				e.scratch[base+i*stride] = e.tmp[i]
			}
		}
	}
}

// applyR2R computes one unnormalized 1-D real transform of src into dst,
// following the definitional formulas of the corresponding FFTW kinds.
func applyR2R(kind R2RCode, src, dst []float64) {
	n := len(src)

	switch kind {
	case R2HC:
		// dst[k] holds the real part of the DFT for k <= n/2 and
		// dst[n-k] the imaginary part for 0 < k < (n+1)/2.
		for k := 0; k <= n/2; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += src[j] * math.Cos(2*math.Pi*float64(j*k)/float64(n))
			}
			dst[k] = sum
		}

		for k := 1; k < (n+1)/2; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum -= src[j] * math.Sin(2*math.Pi*float64(j*k)/float64(n))
			}
			dst[n-k] = sum
		}

	case HC2R:
		for j := 0; j < n; j++ {
			sum := src[0]

			if n%2 == 0 {
				if j%2 == 0 {
					sum += src[n/2]
				} else {
					sum -= src[n/2]
				}
			}

			for k := 1; k < (n+1)/2; k++ {
				angle := 2 * math.Pi * float64(j*k) / float64(n)
				sum += 2 * (src[k]*math.Cos(angle) - src[n-k]*math.Sin(angle))
			}

			dst[j] = sum
		}

	case DHT:
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				angle := 2 * math.Pi * float64(j*k) / float64(n)
				sum += src[j] * (math.Cos(angle) + math.Sin(angle))
			}
			dst[k] = sum
		}

	case REDFT00:
		for k := 0; k < n; k++ {
			sum := src[0]

			if k%2 == 0 {
				sum += src[n-1]
			} else {
				sum -= src[n-1]
			}

			for j := 1; j < n-1; j++ {
				sum += 2 * src[j] * math.Cos(math.Pi*float64(j*k)/float64(n-1))
			}

			dst[k] = sum
		}

	case REDFT10:
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += 2 * src[j] * math.Cos(math.Pi*float64(2*j+1)*float64(k)/float64(2*n))
			}
			dst[k] = sum
		}

	case REDFT01:
		for k := 0; k < n; k++ {
			sum := src[0]
			for j := 1; j < n; j++ {
				sum += 2 * src[j] * math.Cos(math.Pi*float64(j)*float64(2*k+1)/float64(2*n))
			}
			dst[k] = sum
		}

	case REDFT11:
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += 2 * src[j] * math.Cos(math.Pi*float64(2*j+1)*float64(2*k+1)/float64(4*n))
			}
			dst[k] = sum
		}

	case RODFT00:
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += 2 * src[j] * math.Sin(math.Pi*float64(j+1)*float64(k+1)/float64(n+1))
			}
			dst[k] = sum
		}

	case RODFT10:
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += 2 * src[j] * math.Sin(math.Pi*float64(2*j+1)*float64(k+1)/float64(2*n))
			}
			dst[k] = sum
		}

	case RODFT01:
		for k := 0; k < n; k++ {
			sum := src[n-1]
			if k%2 == 1 {
				sum = -sum
			}

			for j := 0; j < n-1; j++ {
				sum += 2 * src[j] * math.Sin(math.Pi*float64(j+1)*float64(2*k+1)/float64(2*n))
			}

			dst[k] = sum
		}

	case RODFT11:
		for k := 0; k < n; k++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += 2 * src[j] * math.Sin(math.Pi*float64(2*j+1)*float64(2*k+1)/float64(4*n))
			}
			dst[k] = sum
		}
	}
}
