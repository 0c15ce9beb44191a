// Package logger configures the zerolog logger used across the application.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout. In development the level is
// Debug, otherwise Info.
func New(environment string) zerolog.Logger {
	level := zerolog.InfoLevel
	if environment == "development" {
		level = zerolog.DebugLevel
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", "campusgate").
		Logger()
}

// Nop returns a logger that discards everything, for use in tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
