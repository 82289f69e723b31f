// Package logging holds zerolog helpers shared across formgate packages.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// ForField derives a logger tagged with a form field id.
func ForField(l zerolog.Logger, id string) zerolog.Logger {
	return l.With().Str("field", id).Logger()
}
