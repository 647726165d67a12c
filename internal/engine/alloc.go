package engine

import "unsafe"

// Alignment is the byte alignment guaranteed by the engine allocator.
// Buffers not obtained from it are still valid transform storage but may
// execute slower on SIMD-capable hosts.
const Alignment = 64

// AllocComplex128 returns an n-element complex slice aligned to Alignment
// bytes, along with its backing allocation. The aligned view points into
// the backing array and keeps it reachable on its own; the backing slice is
// returned for callers that need the raw bytes.
func AllocComplex128(n int) ([]complex128, []byte) {
	if n <= 0 {
		return nil, nil
	}

	backing := make([]byte, n*16+Alignment)
	ptr := alignPointer(backing)

	return unsafe.Slice((*complex128)(ptr), n), backing
}

// AllocFloat64 returns an n-element float slice aligned to Alignment bytes,
// along with its backing allocation.
func AllocFloat64(n int) ([]float64, []byte) {
	if n <= 0 {
		return nil, nil
	}

	backing := make([]byte, n*8+Alignment)
	ptr := alignPointer(backing)

	return unsafe.Slice((*float64)(ptr), n), backing
}

// alignPointer returns the first Alignment-aligned address inside backing.
func alignPointer(backing []byte) unsafe.Pointer {
	base := uintptr(unsafe.Pointer(&backing[0]))
	offset := (Alignment - base%Alignment) % Alignment

	return unsafe.Pointer(&backing[offset])
}
