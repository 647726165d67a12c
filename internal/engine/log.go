package engine

import "github.com/rs/zerolog"

// logger is disabled by default; the public package forwards its configured
// logger here so measurement decisions can be traced.
var logger = zerolog.Nop()

// SetLogger installs the logger used for planning diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}
