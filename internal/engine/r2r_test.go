package engine

import (
	"math"
	"testing"
)

func planR2R1D(t *testing.T, n int, kind R2RCode, in, out []float64) *Desc {
	t.Helper()

	d := PlanR2R(dims1(n), nil, in, out, []R2RCode{kind}, FlagEstimate)
	if d == nil {
		t.Fatalf("PlanR2R(n=%d, kind=%s) returned nil", n, kind)
	}

	return d
}

func assertCloseReal(t *testing.T, got, want float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v", append(args, got, want)...)
	}
}

func testSignal(n int) []float64 {
	sig := make([]float64, n)
	for i := range sig {
		sig[i] = math.Sin(float64(i)*1.3) + 0.25*float64(i%4)
	}

	return sig
}

func TestR2HC_MatchesDFT(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 8, 9} {
		in := testSignal(n)
		out := make([]float64, n)

		d := planR2R1D(t, n, R2HC, in, out)
		Execute(d)
		Destroy(d)

		full := make([]complex128, n)
		for i := range in {
			full[i] = complex(in[i], 0)
		}

		want := refDFT(full, Forward)

		for k := 0; k <= n/2; k++ {
			assertCloseReal(t, out[k], real(want[k]), "n=%d real k=%d", n, k)
		}

		for k := 1; k < (n+1)/2; k++ {
			assertCloseReal(t, out[n-k], imag(want[k]), "n=%d imag k=%d", n, k)
		}
	}
}

// Round-trip pairs and their scale factors: applying the pair and dividing
// by the factor must reproduce the input.
func TestR2R_RoundTrips(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		fwd, inv R2RCode
		minN     int
		scale    func(n int) float64
	}{
		{"halfcomplex", R2HC, HC2R, 1, func(n int) float64 { return float64(n) }},
		{"hartley", DHT, DHT, 1, func(n int) float64 { return float64(n) }},
		{"dct1", REDFT00, REDFT00, 2, func(n int) float64 { return 2 * float64(n-1) }},
		{"dct23", REDFT10, REDFT01, 1, func(n int) float64 { return 2 * float64(n) }},
		{"dct4", REDFT11, REDFT11, 1, func(n int) float64 { return 2 * float64(n) }},
		{"dst1", RODFT00, RODFT00, 1, func(n int) float64 { return 2 * float64(n+1) }},
		{"dst23", RODFT10, RODFT01, 1, func(n int) float64 { return 2 * float64(n) }},
		{"dst4", RODFT11, RODFT11, 1, func(n int) float64 { return 2 * float64(n) }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, n := range []int{2, 3, 5, 8, 16, 17} {
				if n < tc.minN {
					continue
				}

				in := testSignal(n)
				mid := make([]float64, n)
				out := make([]float64, n)

				fwd := planR2R1D(t, n, tc.fwd, in, mid)
				inv := planR2R1D(t, n, tc.inv, mid, out)

				Execute(fwd)
				Execute(inv)

				scale := tc.scale(n)
				for i := range out {
					assertCloseReal(t, out[i]/scale, in[i], "n=%d i=%d", n, i)
				}

				Destroy(fwd)
				Destroy(inv)
			}
		})
	}
}

func TestR2R_2DSeparableKinds(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 5

	in := make([]float64, rows*cols)
	for i := range in {
		in[i] = float64(i%4) - 1.5
	}

	out := make([]float64, rows*cols)

	dims := []IODim{
		{N: rows, InStride: cols, OutStride: cols},
		{N: cols, InStride: 1, OutStride: 1},
	}

	d := PlanR2R(dims, nil, in, out, []R2RCode{REDFT10, RODFT10}, FlagEstimate)
	if d == nil {
		t.Fatal("PlanR2R 2-D returned nil")
	}

	Execute(d)
	Destroy(d)

	// Reference: DST-II along rows, then DCT-II along columns.
	want := make([]float64, rows*cols)
	copy(want, in)
	tmp := make([]float64, cols)

	for r := 0; r < rows; r++ {
		applyR2R(RODFT10, want[r*cols:(r+1)*cols], tmp)
		copy(want[r*cols:(r+1)*cols], tmp)
	}

	colIn := make([]float64, rows)
	colOut := make([]float64, rows)

	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			colIn[r] = want[r*cols+c]
		}

		applyR2R(REDFT10, colIn, colOut)

		for r := 0; r < rows; r++ {
			want[r*cols+c] = colOut[r]
		}
	}

	for i := range out {
		assertCloseReal(t, out[i], want[i], "i=%d", i)
	}
}

func TestR2R_InvalidKinds(t *testing.T) {
	t.Parallel()

	in := make([]float64, 4)
	out := make([]float64, 4)

	// DCT-I needs at least two points.
	if d := PlanR2R(dims1(1), nil, in, out, []R2RCode{REDFT00}, FlagEstimate); d != nil {
		t.Error("REDFT00 with n=1 should fail")
	}

	// Kind count must match rank.
	if d := PlanR2R(dims1(4), nil, in, out, []R2RCode{R2HC, R2HC}, FlagEstimate); d != nil {
		t.Error("kind count mismatch should fail")
	}

	if d := PlanR2R(dims1(4), nil, in, out, []R2RCode{RODFT11 + 1}, FlagEstimate); d != nil {
		t.Error("unknown kind should fail")
	}
}
