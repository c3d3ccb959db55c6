// Package logger builds the zerolog logger shared by the directory service
// binaries. Output is single-line JSON on stdout so container log collectors
// can ingest it without extra configuration.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns the root logger for the named binary. The level is read from
// DIRECTORY_LOG_LEVEL and falls back to info when unset or unparseable.
func New(service string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("DIRECTORY_LOG_LEVEL")))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Str("service", service).
		Timestamp().
		Logger()
}
