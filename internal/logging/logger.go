// Package logging provides component-scoped loggers on top of the global
// zerolog logger.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions. The logger
// is returned by pointer so event methods can be chained on the call.
func Component(name string) *zerolog.Logger {
	l := log.With().Str("cmp", name).Logger()
	return &l
}
