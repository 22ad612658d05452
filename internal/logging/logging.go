// Package logging builds the zerolog loggers used by the tracker.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options selects the level and encoding of a logger.
type Options struct {
	Level  zerolog.Level
	Format string
}

// New returns a logger writing to w. Console output is meant for humans and
// is the default for unknown formats.
func New(w io.Writer, opts Options) zerolog.Logger {
	out := w
	if opts.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).
		Level(opts.Level).
		With().
		Timestamp().
		Str("app", "booktracker").
		Logger()
}

// ParseLevel maps a level name onto zerolog. Empty input reports false so the
// caller can keep its default.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// ValidFormat reports whether format names a supported encoding.
func ValidFormat(format string) bool {
	switch format {
	case FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}
