package filtering

import (
	"strings"

	"github.com/ajxudir/sheetfilter/pkg/utils"
)

// Matcher defines the interface for string matching strategies.
//
// Example:
//
//	matcher := filtering.NewGlobMatcher("cancel*")
//	if matcher.Match("cancelled") {
//	    fmt.Println("matched!")
//	}
type Matcher interface {
	// Match tests if the given value matches the pattern.
	//
	// Parameters:
	//   - value: String to test against the pattern
	//
	// Returns:
	//   - bool: true if value matches the pattern
	Match(value string) bool

	// String returns a string representation of the matcher.
	//
	// Returns:
	//   - string: Description of the pattern
	String() string
}

// GlobMatcher matches strings using shell-style wildcard patterns.
//
// Supports:
//   - * matches any run of characters, including "/"
//   - ? matches any single character
//   - [seq] and [!seq] match one character in or not in seq
//
// Matching is case-sensitive and covers the whole value.
//
// Example:
//
//	matcher := filtering.NewGlobMatcher("EU-*")
//	matcher.Match("EU-West")  // returns true
//	matcher.Match("eu-west")  // returns false
//	matcher.Match("US-East")  // returns false
type GlobMatcher struct {
	// Pattern is the wildcard pattern string.
	Pattern string
}

// Match tests if value matches the wildcard pattern.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if value matches the pattern
func (m *GlobMatcher) Match(value string) bool {
	return utils.MatchGlob(value, m.Pattern)
}

// String returns the wildcard pattern.
func (m *GlobMatcher) String() string {
	return m.Pattern
}

// NewGlobMatcher creates a wildcard pattern matcher.
//
// Parameters:
//   - pattern: Wildcard pattern (e.g., "cancel*", "[A-C]??")
//
// Returns:
//   - Matcher: A GlobMatcher instance
func NewGlobMatcher(pattern string) Matcher {
	return &GlobMatcher{Pattern: pattern}
}

// AnyMatcher matches if any of the contained matchers match.
//
// This implements OR logic across multiple matchers. An AnyMatcher with no
// matchers never matches.
//
// Fields:
//   - Matchers: Slice of matchers to test, in order
//
// Example:
//
//	matcher := filtering.NewAnyMatcher(
//	    filtering.NewGlobMatcher("cancel*"),
//	    filtering.NewGlobMatcher("void"),
//	)
type AnyMatcher struct {
	// Matchers is the list of matchers (OR logic).
	Matchers []Matcher
}

// NewAnyMatcher creates a matcher that matches if any matcher matches.
//
// Parameters:
//   - matchers: Matchers to combine
//
// Returns:
//   - *AnyMatcher: Combined matcher
func NewAnyMatcher(matchers ...Matcher) *AnyMatcher {
	return &AnyMatcher{Matchers: matchers}
}

// NewAnyGlobMatcher creates an AnyMatcher with one GlobMatcher per pattern.
//
// Patterns are used verbatim and keep their order, so First reports the
// earliest matching pattern of a pattern file.
//
// Parameters:
//   - patterns: Wildcard patterns
//
// Returns:
//   - *AnyMatcher: Combined matcher over all patterns
func NewAnyGlobMatcher(patterns []string) *AnyMatcher {
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		matchers = append(matchers, NewGlobMatcher(p))
	}
	return NewAnyMatcher(matchers...)
}

// Match returns true if any matcher matches.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if any matcher matches
func (m *AnyMatcher) Match(value string) bool {
	ok, _ := m.First(value)
	return ok
}

// First returns whether any matcher matches and the first one that does.
//
// Parameters:
//   - value: String to test
//
// Returns:
//   - bool: true if any matcher matches
//   - string: String() of the first matching matcher, empty if none matched
func (m *AnyMatcher) First(value string) (bool, string) {
	for _, matcher := range m.Matchers {
		if matcher.Match(value) {
			return true, matcher.String()
		}
	}
	return false, ""
}

// String returns a description of the matchers.
//
// Returns:
//   - string: Description in format "any(pattern1, pattern2, ...)"
func (m *AnyMatcher) String() string {
	patterns := make([]string, 0, len(m.Matchers))
	for _, matcher := range m.Matchers {
		patterns = append(patterns, matcher.String())
	}
	return "any(" + strings.Join(patterns, ", ") + ")"
}

// Verify that matchers implement the Matcher interface.
var (
	_ Matcher = (*GlobMatcher)(nil)
	_ Matcher = (*AnyMatcher)(nil)
)
