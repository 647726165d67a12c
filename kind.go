package fftplan

import "github.com/cwbudde/algo-fftplan/internal/engine"

// R2RKind selects the transform family of one axis of a real-to-real
// plan. Kinds are required, and only meaningful, for real-to-real
// transforms; the builder's kind stage enforces this at compile time.
//
// All kinds are unnormalized. Round-trip scale factors: R2HC followed by
// HC2R multiplies by n, DHT applied twice by n, DCT10 followed by DCT01
// (and the DST counterparts) by 2n, the type-IV kinds applied twice by 2n,
// DCT00 applied twice by 2(n-1), and DST00 applied twice by 2(n+1).
type R2RKind int

const (
	// R2HC produces the halfcomplex spectrum of a real sequence: the real
	// parts of the non-redundant DFT coefficients in the first half of the
	// output, the imaginary parts packed in reverse in the second half.
	R2HC R2RKind = iota
	// HC2R is the unnormalized inverse of R2HC.
	HC2R
	// DHT is the discrete Hartley transform.
	DHT
	// DCT00 is the even-even cosine transform (DCT-I).
	DCT00
	// DCT01 is DCT-III, the unnormalized inverse of DCT10.
	DCT01
	// DCT10 is DCT-II, the common "DCT".
	DCT10
	// DCT11 is DCT-IV.
	DCT11
	// DST00 is the odd-odd sine transform (DST-I).
	DST00
	// DST01 is DST-III, the unnormalized inverse of DST10.
	DST01
	// DST10 is DST-II.
	DST10
	// DST11 is DST-IV.
	DST11
)

func (k R2RKind) String() string {
	switch k {
	case R2HC:
		return "R2HC"
	case HC2R:
		return "HC2R"
	case DHT:
		return "DHT"
	case DCT00:
		return "DCT00"
	case DCT01:
		return "DCT01"
	case DCT10:
		return "DCT10"
	case DCT11:
		return "DCT11"
	case DST00:
		return "DST00"
	case DST01:
		return "DST01"
	case DST10:
		return "DST10"
	case DST11:
		return "DST11"
	default:
		return "R2RKind(invalid)"
	}
}

// code maps the kind onto the engine's kind constant.
func (k R2RKind) code() engine.R2RCode {
	switch k {
	case R2HC:
		return engine.R2HC
	case HC2R:
		return engine.HC2R
	case DHT:
		return engine.DHT
	case DCT00:
		return engine.REDFT00
	case DCT01:
		return engine.REDFT01
	case DCT10:
		return engine.REDFT10
	case DCT11:
		return engine.REDFT11
	case DST00:
		return engine.RODFT00
	case DST01:
		return engine.RODFT01
	case DST10:
		return engine.RODFT10
	case DST11:
		return engine.RODFT11
	default:
		panic("fftplan: invalid R2RKind")
	}
}
