// Package logging builds the event logger of a sheetfilter run.
//
// Events such as "found file", "column reduced rows from 10 to 4" or
// "processing complete" are written through zerolog, either as
// human-readable console lines or as JSON objects for log collectors.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Formats lists the accepted values of --log-format.
var Formats = []string{FormatConsole, FormatJSON}

// Options configures the event logger.
//
// Fields:
//   - Format: FormatConsole or FormatJSON
//   - Verbose: Include debug events (per-column details)
//   - NoColor: Disable ANSI colors in console output
//   - File: Optional second destination receiving JSON events
type Options struct {
	Format  string
	Verbose bool
	NoColor bool
	File    io.Writer
}

// ParseFormat validates a --log-format value.
//
// Parameters:
//   - s: Format name, case-insensitive; empty means console
//
// Returns:
//   - string: Normalized format name
//   - error: Error if the format is not supported
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return FormatConsole, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid log format %q (supported: %s)", s, strings.Join(Formats, ", "))
}

// New creates the event logger writing to w.
//
// Console output uses short timestamps; JSON output carries an RFC 3339
// "time" field. Verbose enables debug events, otherwise only info and above
// are written. When opts.File is set every event is also appended to it as
// a JSON line.
//
// Parameters:
//   - w: Destination writer (typically os.Stderr)
//   - opts: Logger options
//
// Returns:
//   - zerolog.Logger: Configured logger
//   - error: Error if opts.Format is not supported
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	format, err := ParseFormat(opts.Format)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := w
	if format == FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    opts.NoColor,
		}
	}
	if opts.File != nil {
		out = zerolog.MultiLevelWriter(out, opts.File)
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// OpenFile opens path for appending log events, creating parent directories.
//
// Parameters:
//   - path: Log file path
//
// Returns:
//   - *os.File: Open file; the caller closes it
//   - error: Error if the directory or file cannot be created
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// Component returns a logger tagged with the given component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
//
// Parameters:
//   - logger: Logger to write to
//   - operation: Operation name
//
// Returns:
//   - func(): Call when the operation has finished
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
