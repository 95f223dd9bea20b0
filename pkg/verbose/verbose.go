// Package verbose provides debug tracing for sheetfilter.
//
// Messages are only emitted after Enable is called (the --verbose flag).
// Output goes through a zerolog console logger so debug traces share the
// formatting of the run log.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.RWMutex
	enabled bool
	logger  = newLogger(os.Stderr)
)

// newLogger builds the debug logger for the given writer.
//
// Lines are rendered as "[DEBUG] message" with no timestamp and no color so
// that they stay readable when redirected to files.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - zerolog.Logger: Logger writing formatted debug lines to w
func newLogger(w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: func(any) string {
			return "[DEBUG]"
		},
	}
	return zerolog.New(console).Level(zerolog.DebugLevel)
}

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Rebuilds the debug logger if the provided writer is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		logger = newLogger(w)
	}
}

// current returns the logger and enabled flag under a single read lock.
func current() (zerolog.Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, enabled
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	l, on := current()
	if on {
		l.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// It is an alias of Printf kept for call sites that read as status lines.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// SettingsLoaded logs which settings file was used.
//
// Parameters:
//   - path: Settings file path; empty when built-in defaults were used
func SettingsLoaded(path string) {
	if path == "" {
		Printf("Using built-in default settings")
		return
	}
	Printf("Settings loaded from: %s", path)
}

// RowDropped logs a row removal with the column, value and reason.
//
// Values longer than 60 characters are truncated.
//
// Parameters:
//   - column: Column whose value caused the removal
//   - value: The cell value as a string
//   - reason: Why the row was dropped (e.g., "formula", "excluded by \"cancel*\"")
func RowDropped(column, value, reason string) {
	if !IsEnabled() {
		return
	}
	Printf("Row dropped: %s=%q (%s)", column, truncate(value, 60), reason)
}

// truncate shortens s to maxLen characters, appending "..." when cut.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: Maximum length including the ellipsis
//
// Returns:
//   - string: s unchanged if short enough, otherwise truncated with "..."
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
