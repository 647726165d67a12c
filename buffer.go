package fftplan

import "github.com/cwbudde/algo-fftplan/internal/engine"

// AllocComplex returns an n-element complex buffer from the engine
// allocator, aligned for peak execution performance. Plain Go slices are
// always valid transform storage; unaligned ones may just run slower.
func AllocComplex(n int) []complex128 {
	data, _ := engine.AllocComplex128(n)
	return data
}

// AllocReal returns an n-element real buffer from the engine allocator.
func AllocReal(n int) []float64 {
	data, _ := engine.AllocFloat64(n)
	return data
}
