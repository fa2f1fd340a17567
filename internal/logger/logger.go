// Package logger builds the diagnostic zerolog logger.
//
// Diagnostic logs go to stderr and are off unless --debug is passed.
// Anything the user is meant to read is printed by the caller, never logged.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level names accepted by Config.Level.
const (
	DebugLevel    = "debug"
	InfoLevel     = "info"
	WarnLevel     = "warn"
	ErrorLevel    = "error"
	DisabledLevel = "disabled"
)

// Config represents logger configuration.
type Config struct {
	// Level is one of the level names above. Empty means disabled.
	Level string
	// Pretty enables human-readable console output.
	Pretty bool
	// Output is the destination (defaults to os.Stderr).
	Output io.Writer
}

// New returns a logger for cfg. Unknown levels are an error.
func New(cfg Config) (zerolog.Logger, error) {
	if cfg.Level == "" || cfg.Level == DisabledLevel {
		return zerolog.Nop(), nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: unknown level %q", cfg.Level)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
