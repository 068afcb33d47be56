// Package shared holds helpers common to the CLI commands.
package shared

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger builds the engine logger: pretty console lines by default,
// structured JSON when json is set.
func Logger(debug, json bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if json {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		out = os.Stderr
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
