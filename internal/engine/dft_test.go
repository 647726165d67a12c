package engine

import (
	"math"
	"math/cmplx"
	"testing"
)

const tol = 1e-10

// refDFT computes the unnormalized DFT by direct summation of the
// defining formula.
func refDFT(src []complex128, sign int) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := float64(sign) * 2 * math.Pi * float64(j*k) / float64(n)
			sum += src[j] * cmplx.Exp(complex(0, angle))
		}
		dst[k] = sum
	}

	return dst
}

func assertClose(t *testing.T, got, want complex128, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func dims1(n int) []IODim {
	return []IODim{{N: n, InStride: 1, OutStride: 1}}
}

func TestPlanDFT_MatchesReference(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 12, 16, 31, 32} {
		in := make([]complex128, n)
		out := make([]complex128, n)

		for i := range in {
			in[i] = complex(float64(i+1)*0.5, float64(n-i)*0.25)
		}

		want := refDFT(in, Forward)

		d := PlanDFT(dims1(n), nil, in, out, Forward, FlagEstimate)
		if d == nil {
			t.Fatalf("PlanDFT(n=%d) returned nil", n)
		}

		Execute(d)

		for k := range out {
			assertClose(t, out[k], want[k], "n=%d k=%d", n, k)
		}

		Destroy(d)
	}
}

func TestPlanDFT_NaiveAndRadix2Agree(t *testing.T) {
	t.Parallel()

	const n = 64

	in := make([]complex128, n)
	for i := range in {
		in[i] = complex(math.Sin(float64(i)), math.Cos(float64(3*i)))
	}

	outNaive := make([]complex128, n)
	outRadix := make([]complex128, n)

	eNaive := newDFTExec(dims1(n), nil, Forward, kernelNaive)
	eNaive.run(in, outNaive)

	eRadix := newDFTExec(dims1(n), nil, Forward, kernelAuto)
	eRadix.run(in, outRadix)

	for k := range outNaive {
		assertClose(t, outRadix[k], outNaive[k], "k=%d", k)
	}
}

func TestPlanDFT_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 7, 16, 33} {
		in := make([]complex128, n)
		mid := make([]complex128, n)
		out := make([]complex128, n)

		for i := range in {
			in[i] = complex(float64(i), float64(-i))
		}

		fwd := PlanDFT(dims1(n), nil, in, mid, Forward, FlagEstimate)
		bwd := PlanDFT(dims1(n), nil, mid, out, Backward, FlagEstimate)

		Execute(fwd)
		Execute(bwd)

		for i := range out {
			assertClose(t, out[i]/complex(float64(n), 0), in[i], "n=%d i=%d", n, i)
		}

		Destroy(fwd)
		Destroy(bwd)
	}
}

func TestPlanDFT_2D(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 4

	in := make([]complex128, rows*cols)
	for i := range in {
		in[i] = complex(float64(i%5), float64(i%3))
	}

	out := make([]complex128, rows*cols)

	dims := []IODim{
		{N: rows, InStride: cols, OutStride: cols},
		{N: cols, InStride: 1, OutStride: 1},
	}

	d := PlanDFT(dims, nil, in, out, Forward, FlagEstimate)
	Execute(d)
	Destroy(d)

	// Reference: transform rows, then columns.
	want := make([]complex128, rows*cols)
	copy(want, in)

	for r := 0; r < rows; r++ {
		copy(want[r*cols:(r+1)*cols], refDFT(want[r*cols:(r+1)*cols], Forward))
	}

	col := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = want[r*cols+c]
		}

		colT := refDFT(col, Forward)
		for r := 0; r < rows; r++ {
			want[r*cols+c] = colT[r]
		}
	}

	for i := range out {
		assertClose(t, out[i], want[i], "i=%d", i)
	}
}

func TestPlanDFT_Strided(t *testing.T) {
	t.Parallel()

	const n, stride = 8, 3

	in := make([]complex128, (n-1)*stride+1)
	out := make([]complex128, (n-1)*stride+1)
	packed := make([]complex128, n)

	for i := 0; i < n; i++ {
		v := complex(float64(i)*1.5, float64(i%2))
		in[i*stride] = v
		packed[i] = v
	}

	dims := []IODim{{N: n, InStride: stride, OutStride: stride}}

	d := PlanDFT(dims, nil, in, out, Forward, FlagEstimate)
	Execute(d)
	Destroy(d)

	want := refDFT(packed, Forward)
	for k := 0; k < n; k++ {
		assertClose(t, out[k*stride], want[k], "k=%d", k)
	}
}

func TestPlanDFT_Batch(t *testing.T) {
	t.Parallel()

	const n, count = 4, 3

	in := make([]complex128, n*count)
	out := make([]complex128, n*count)

	for i := range in {
		in[i] = complex(float64(i), float64(2*i))
	}

	howmany := []IODim{{N: count, InStride: n, OutStride: n}}

	d := PlanDFT(dims1(n), howmany, in, out, Forward, FlagEstimate)
	Execute(d)
	Destroy(d)

	for b := 0; b < count; b++ {
		want := refDFT(in[b*n:(b+1)*n], Forward)
		for k := 0; k < n; k++ {
			assertClose(t, out[b*n+k], want[k], "batch=%d k=%d", b, k)
		}
	}
}

func TestPlanDFT_InPlace(t *testing.T) {
	t.Parallel()

	const n = 8

	buf := make([]complex128, n)
	orig := make([]complex128, n)

	for i := range buf {
		buf[i] = complex(float64(i*i), float64(-i))
		orig[i] = buf[i]
	}

	d := PlanDFT(dims1(n), nil, buf, buf, Forward, FlagEstimate)
	Execute(d)
	Destroy(d)

	want := refDFT(orig, Forward)
	for k := range buf {
		assertClose(t, buf[k], want[k], "k=%d", k)
	}
}

func TestPlanDFTR2C_HalfSpectrum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4, 5, 8, 9} {
		in := make([]float64, n)
		full := make([]complex128, n)

		for i := range in {
			in[i] = float64(i+1) * 0.75
			full[i] = complex(in[i], 0)
		}

		out := make([]complex128, n/2+1)

		d := PlanDFTR2C(dims1(n), nil, in, out, FlagEstimate)
		if d == nil {
			t.Fatalf("PlanDFTR2C(n=%d) returned nil", n)
		}

		Execute(d)
		Destroy(d)

		want := refDFT(full, Forward)
		for k := range out {
			assertClose(t, out[k], want[k], "n=%d k=%d", n, k)
		}
	}
}

func TestPlanDFTC2R_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 4, 5, 8, 9, 16, 17} {
		in := make([]float64, n)
		for i := range in {
			in[i] = math.Sin(float64(i)*0.7) + 0.3*float64(i)
		}

		spectrum := make([]complex128, n/2+1)
		back := make([]float64, n)

		fwd := PlanDFTR2C(dims1(n), nil, in, spectrum, FlagEstimate)
		bwd := PlanDFTC2R(dims1(n), nil, spectrum, back, FlagEstimate)

		Execute(fwd)
		Execute(bwd)

		for i := range back {
			if math.Abs(back[i]/float64(n)-in[i]) > tol {
				t.Fatalf("n=%d i=%d: got %v want %v", n, i, back[i]/float64(n), in[i])
			}
		}

		Destroy(fwd)
		Destroy(bwd)
	}
}

func TestPlanDFTR2C_2D(t *testing.T) {
	t.Parallel()

	const rows, cols = 4, 6
	halfCols := cols/2 + 1

	in := make([]float64, rows*cols)
	for i := range in {
		in[i] = float64(i%7) - 2.5
	}

	out := make([]complex128, rows*halfCols)

	dims := []IODim{
		{N: rows, InStride: cols, OutStride: halfCols},
		{N: cols, InStride: 1, OutStride: 1},
	}

	d := PlanDFTR2C(dims, nil, in, out, FlagEstimate)
	Execute(d)
	Destroy(d)

	// Reference: full 2-D complex transform, compare the stored half.
	full := make([]complex128, rows*cols)
	for i := range in {
		full[i] = complex(in[i], 0)
	}

	for r := 0; r < rows; r++ {
		copy(full[r*cols:(r+1)*cols], refDFT(full[r*cols:(r+1)*cols], Forward))
	}

	col := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = full[r*cols+c]
		}

		colT := refDFT(col, Forward)
		for r := 0; r < rows; r++ {
			full[r*cols+c] = colT[r]
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < halfCols; c++ {
			assertClose(t, out[r*halfCols+c], full[r*cols+c], "r=%d c=%d", r, c)
		}
	}
}

func TestPlanDFT_InvalidArguments(t *testing.T) {
	t.Parallel()

	in := make([]complex128, 4)
	out := make([]complex128, 4)

	if d := PlanDFT(nil, nil, in, out, Forward, FlagEstimate); d != nil {
		t.Error("PlanDFT with no dims should fail")
	}

	if d := PlanDFT(dims1(0), nil, in, out, Forward, FlagEstimate); d != nil {
		t.Error("PlanDFT with zero-length axis should fail")
	}

	if d := PlanDFT(dims1(4), nil, in, out, 0, FlagEstimate); d != nil {
		t.Error("PlanDFT with invalid sign should fail")
	}

	if d := PlanDFT(dims1(4), nil, nil, out, Forward, FlagEstimate); d != nil {
		t.Error("PlanDFT with nil input should fail")
	}
}

func TestDestroy_Idempotent(t *testing.T) {
	t.Parallel()

	in := make([]complex128, 4)
	out := make([]complex128, 4)

	d := PlanDFT(dims1(4), nil, in, out, Forward, FlagEstimate)
	Destroy(d)
	Destroy(d)
	Destroy(nil)
}

func TestExecute_DestroyedPanics(t *testing.T) {
	t.Parallel()

	in := make([]complex128, 4)
	out := make([]complex128, 4)

	d := PlanDFT(dims1(4), nil, in, out, Forward, FlagEstimate)
	Destroy(d)

	defer func() {
		if recover() == nil {
			t.Fatal("Execute on destroyed descriptor should panic")
		}
	}()

	Execute(d)
}
