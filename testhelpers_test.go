package fftplan

import (
	"math"
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxFloat64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

// refDFT computes the DFT of x directly from the definition.
func refDFT(x []complex128, sign int) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := float64(sign) * 2 * math.Pi * float64(k*j) / float64(n)
			sum += x[j] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}

// testRealSignal fills a deterministic, aperiodic real test signal.
func testRealSignal(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(0.7*float64(i)) + 0.25*math.Cos(2.3*float64(i)+0.5)
	}

	return x
}
