// Package warnings prints user-facing warnings that are not part of the run
// event log: settings problems, ignored options and output caveats.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ajxudir/sheetfilter/pkg/constants"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning line prefixed with the warning icon.
//
// A trailing newline is added when the message does not end with one.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()

	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, "%s  %s", constants.IconWarn, msg)
}

// SettingsFallback warns that a settings file could not be used and the
// built-in defaults apply instead.
//
// Parameters:
//   - path: The settings file that failed to load
//   - err: Why it could not be used
func SettingsFallback(path string, err error) {
	Warnf("Ignoring settings file %s: %v; using built-in defaults", path, err)
}

// ValidationWarnings prints each settings validation warning.
//
// Parameters:
//   - warnings: Messages from config.ValidationResult.Warnings
func ValidationWarnings(warnings []string) {
	for _, w := range warnings {
		Warnf("%s", w)
	}
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// It performs the following operations:
//   - Saves the previous warning writer for restoration
//   - Sets the new warning writer (defaults to os.Stderr if nil)
//   - Returns a function that restores the previous writer when called
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
