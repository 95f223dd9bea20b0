package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGlobMatcher tests the GlobMatcher struct and its Match method.
//
// It verifies that:
//   - Wildcards match as in a shell
//   - Matching is case-sensitive
//   - String() returns the pattern
func TestGlobMatcher(t *testing.T) {
	m := NewGlobMatcher("cancel*")
	assert.True(t, m.Match("cancelled"))
	assert.True(t, m.Match("cancel"))
	assert.False(t, m.Match("Cancelled"))
	assert.False(t, m.Match("active"))
	assert.Equal(t, "cancel*", m.String())
}

// TestAnyMatcher tests OR logic and first-match reporting.
//
// It verifies that:
//   - A value matching any pattern matches
//   - First reports the earliest matching pattern
//   - An empty AnyMatcher never matches
func TestAnyMatcher(t *testing.T) {
	m := NewAnyGlobMatcher([]string{"void", "cancel*", "*led"})

	ok, pattern := m.First("cancelled")
	assert.True(t, ok)
	assert.Equal(t, "cancel*", pattern)

	assert.True(t, m.Match("void"))
	assert.False(t, m.Match("active"))
	assert.Equal(t, "any(void, cancel*, *led)", m.String())

	empty := NewAnyMatcher()
	ok, pattern = empty.First("anything")
	assert.False(t, ok)
	assert.Empty(t, pattern)
}

// TestAnyGlobMatcherFirst tests which pattern of a list matches first.
func TestAnyGlobMatcherFirst(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		patterns []string
		want     bool
		pattern  string
	}{
		{"exact", "EU", []string{"EU"}, true, "EU"},
		{"no match", "US", []string{"EU"}, false, ""},
		{"second pattern", "APAC", []string{"EU", "AP*"}, true, "AP*"},
		{"empty list", "EU", nil, false, ""},
		{"empty pattern matches empty value", "", []string{""}, true, ""},
		{"class", "B2", []string{"[A-C][0-9]"}, true, "[A-C][0-9]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pattern := NewAnyGlobMatcher(tt.patterns).First(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}
