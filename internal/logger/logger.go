// Package logger configures the zerolog logger shared across the pipeline.
// Adapters and the aggregator log operational failures here; the normalizer
// and deduplicator stay silent by contract.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatJSON emits one JSON object per line, for collectors.
	FormatJSON Format = "json"
	// FormatText emits human-readable console output.
	FormatText Format = "text"
)

// New creates a logger at the given level ("debug", "info", "warn", "error";
// unknown values fall back to info) writing to w in the given format.
func New(level string, format Format, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == FormatText {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
