// Package engine is the transform execution engine behind the public
// planner. It exposes a guru-style planning interface: callers describe a
// problem as per-axis (length, input-stride, output-stride) triples plus
// batch triples, raw buffers, a direction sign, and behavior flags, and
// receive an opaque descriptor that can be executed any number of times.
//
// Plan creation and destruction are not reentrant and serialize on a
// process-wide lock internally. Execute touches no shared state and may be
// called concurrently on distinct descriptors.
package engine

// IODim describes one axis of a transform: its length and the distance (in
// elements) between consecutive entries along that axis in the input and
// output buffers.
type IODim struct {
	N         int
	InStride  int
	OutStride int
}

// Planning effort flags. Exactly one effort flag must be set; FlagWisdomOnly
// may be or'd in to refuse planning without previously recorded wisdom.
const (
	FlagEstimate uint = 1 << iota
	FlagMeasure
	FlagPatient
	FlagExhaustive
	FlagWisdomOnly
)

// Transform direction signs, matching the exponent sign of the DFT kernel.
const (
	Forward  = -1
	Backward = +1
)

// R2RCode identifies a real-to-real transform kind on one axis.
type R2RCode uint

const (
	R2HC R2RCode = iota // real to halfcomplex
	HC2R                // halfcomplex to real
	DHT                 // discrete Hartley transform
	REDFT00             // DCT-I
	REDFT01             // DCT-III
	REDFT10             // DCT-II
	REDFT11             // DCT-IV
	RODFT00             // DST-I
	RODFT01             // DST-III
	RODFT10             // DST-II
	RODFT11             // DST-IV
)

func (k R2RCode) String() string {
	switch k {
	case R2HC:
		return "R2HC"
	case HC2R:
		return "HC2R"
	case DHT:
		return "DHT"
	case REDFT00:
		return "REDFT00"
	case REDFT01:
		return "REDFT01"
	case REDFT10:
		return "REDFT10"
	case REDFT11:
		return "REDFT11"
	case RODFT00:
		return "RODFT00"
	case RODFT01:
		return "RODFT01"
	case RODFT10:
		return "RODFT10"
	case RODFT11:
		return "RODFT11"
	default:
		return "R2R(unknown)"
	}
}

// Desc is an opaque, fully lowered transform descriptor. It is exclusively
// owned by the plan that created it: never copy one, only move it with its
// owner, and release it exactly once via Destroy.
type Desc struct {
	kind      string // "dft", "r2c", "c2r", "r2r"
	key       string // wisdom signature
	kernel    string
	flags     uint
	exec      func()
	destroyed bool
}

// rigorLevel extracts the effort level (0..3) from a flag set.
func rigorLevel(flags uint) int {
	switch {
	case flags&FlagExhaustive != 0:
		return 3
	case flags&FlagPatient != 0:
		return 2
	case flags&FlagMeasure != 0:
		return 1
	default:
		return 0
	}
}
