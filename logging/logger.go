// Package logging builds the structured logger used across the binaries.
//
// The screen owns stdout and stderr while a session is active, so log output is held in a
// Deferred sink and written out once the terminal has been restored.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates a logger writing JSON lines to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
