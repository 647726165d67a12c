package fftplan

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-fftplan/internal/engine"
)

// logger is disabled by default. Planning emits debug-level traces of the
// resolved dimensions and the engine's measurement decisions; execution
// never logs.
var logger = zerolog.Nop()

// SetLogger installs a logger for planning diagnostics, here and in the
// engine. Pass zerolog.Nop() to disable again.
func SetLogger(l zerolog.Logger) {
	logger = l
	engine.SetLogger(l)
}
