package verbose

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the behavior of Enable and Disable functions.
//
// It verifies:
//   - Disable sets enabled state to false
//   - Enable sets enabled state to true
//   - IsEnabled returns correct state
func TestEnableDisable(t *testing.T) {
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests the behavior of SetWriter.
//
// It verifies:
//   - Writer can be set and messages are written to it
//   - nil writer parameter is ignored
//   - Verbose messages include [DEBUG] prefix
func TestSetWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	defer SetWriter(os.Stderr)

	Enable()
	Printf("test message")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] test message")

	SetWriter(nil)
	buf.Reset()
	Enable()
	Printf("another message")
	Disable()
	assert.Contains(t, buf.String(), "[DEBUG] another message")
}

// TestPrintf tests that output only appears while enabled.
func TestPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	defer SetWriter(os.Stderr)

	Disable()
	Printf("hidden %d", 1)
	assert.Empty(t, buf.String())

	Enable()
	Printf("shown %d", 2)
	Infof("status %s", "ok")
	Disable()

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] shown 2")
	assert.Contains(t, out, "[DEBUG] status ok")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

// TestSettingsLoaded tests both the file and default branches.
func TestSettingsLoaded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	defer SetWriter(os.Stderr)

	Enable()
	defer Disable()

	SettingsLoaded("")
	SettingsLoaded("/tmp/settings.yml")

	assert.Contains(t, buf.String(), "built-in default settings")
	assert.Contains(t, buf.String(), "Settings loaded from: /tmp/settings.yml")
}

// TestRowDropped tests row drop tracing and value truncation.
func TestRowDropped(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	defer SetWriter(os.Stderr)

	Disable()
	RowDropped("Status", "cancelled", "excluded")
	assert.Empty(t, buf.String())

	Enable()
	defer Disable()
	RowDropped("Status", strings.Repeat("x", 100), "excluded by \"x*\"")

	out := buf.String()
	assert.Contains(t, out, "Row dropped: Status=")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 61))
}

// TestTruncate tests the truncate helper.
func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 6, "abc..."},
		{"tiny limit", "abcdef", 2, "ab"},
		{"multibyte", "äöüäöüäöü", 5, "äö..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.maxLen))
		})
	}
}
