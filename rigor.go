package fftplan

import "github.com/cwbudde/algo-fftplan/internal/engine"

// Rigor is the effort the engine puts into discovering a good execution
// strategy, trading planning time for execution speed. Levels are
// monotonically increasing effort.
type Rigor int

const (
	// Estimate picks a strategy heuristically without measuring.
	Estimate Rigor = iota
	// Measure times candidate strategies on the actual problem.
	Measure
	// Patient measures more thoroughly than Measure.
	Patient
	// Exhaustive considers every candidate the engine knows.
	Exhaustive
)

func (r Rigor) String() string {
	switch r {
	case Estimate:
		return "Estimate"
	case Measure:
		return "Measure"
	case Patient:
		return "Patient"
	case Exhaustive:
		return "Exhaustive"
	default:
		return "Rigor(invalid)"
	}
}

// flags maps the rigor onto the engine's effort flag.
func (r Rigor) flags() uint {
	switch r {
	case Measure:
		return engine.FlagMeasure
	case Patient:
		return engine.FlagPatient
	case Exhaustive:
		return engine.FlagExhaustive
	default:
		return engine.FlagEstimate
	}
}

// Direction selects forward or backward transformation. It is meaningful
// only for complex-to-complex transforms: real-to-complex is always
// forward and complex-to-real always backward, and real-to-real kinds
// carry their own direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}

	return "Forward"
}

// sign maps the direction onto the engine's exponent sign.
func (d Direction) sign() int {
	if d == Backward {
		return engine.Backward
	}

	return engine.Forward
}
