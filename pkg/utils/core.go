// Package utils holds small helpers shared across sheetfilter packages:
// wildcard matching, string list handling and display widths.
package utils

import (
	"regexp"
	"strings"
	"sync"
)

// globCache stores compiled wildcard patterns to avoid recompilation.
// The same few patterns are matched against every cell of a column, so
// caching matters.
var globCache sync.Map

// compiledGlob is a cache entry. A nil re means the pattern can never match
// (it contains a character class with no valid members, such as "[z-a]").
type compiledGlob struct {
	re *regexp.Regexp
}

// getOrCompileGlob retrieves a compiled wildcard pattern from cache or compiles and caches it.
//
// It performs the following operations:
//   - Step 1: Checks if pattern exists in cache with type-safe assertion
//   - Step 2: Returns cached entry if found
//   - Step 3: Translates and compiles the pattern if not cached
//   - Step 4: Stores the compiled entry for future use
//
// Parameters:
//   - pattern: The wildcard pattern
//
// Returns:
//   - compiledGlob: Compiled pattern (re is nil when the pattern never matches)
func getOrCompileGlob(pattern string) compiledGlob {
	if cached, ok := globCache.Load(pattern); ok {
		if entry, typeOK := cached.(compiledGlob); typeOK {
			return entry
		}
	}

	var entry compiledGlob
	if expr, ok := globToRegex(pattern); ok {
		// globToRegex only emits escaped literals and well-formed classes.
		entry.re = regexp.MustCompile(expr)
	}

	globCache.Store(pattern, entry)
	return entry
}

// MatchGlob reports whether value matches a shell-style wildcard pattern.
//
// Semantics follow fnmatchcase: the whole value must match, matching is
// case-sensitive, and "/" has no special meaning.
//
// Supported patterns:
//   - * matches any run of characters, including none
//   - ? matches exactly one character
//   - [seq] matches one character in seq; ranges like a-z are allowed
//   - [!seq] matches one character not in seq
//   - [ without a closing ] is a literal bracket
//
// Parameters:
//   - value: The string to test
//   - pattern: The wildcard pattern
//
// Returns:
//   - bool: true if value matches pattern
func MatchGlob(value, pattern string) bool {
	entry := getOrCompileGlob(pattern)
	if entry.re == nil {
		return false
	}
	return entry.re.MatchString(value)
}

// globToRegex converts a wildcard pattern to an anchored regular expression.
//
// It performs the following conversions:
//   - * (and runs of *) becomes .*
//   - ? becomes .
//   - [seq] / [!seq] become Go character classes with every member escaped
//   - Everything else is escaped with regexp.QuoteMeta
//
// Parameters:
//   - pattern: The wildcard pattern to convert
//
// Returns:
//   - string: The equivalent regular expression, anchored at both ends
//   - bool: false when the pattern contains a class that can never match
func globToRegex(pattern string) (string, bool) {
	runes := []rune(pattern)
	n := len(runes)

	var b strings.Builder
	b.WriteString(`^(?s:`)

	for i := 0; i < n; {
		c := runes[i]
		i++

		switch c {
		case '*':
			for i < n && runes[i] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			j := i
			if j < n && runes[j] == '!' {
				j++
			}
			if j < n && runes[j] == ']' {
				j++
			}
			for j < n && runes[j] != ']' {
				j++
			}
			if j >= n {
				b.WriteString(`\[`)
				continue
			}
			class, ok := classToRegex(runes[i:j])
			if !ok {
				return "", false
			}
			b.WriteString(class)
			i = j + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`)\z`)
	return b.String(), true
}

// classToRegex converts the inside of a bracket expression to a Go class.
//
// Ranges whose bounds are reversed are dropped. A class left with no members
// never matches unless it is negated, in which case it matches any character.
//
// Parameters:
//   - body: Runes between "[" and "]", including a leading "!" if present
//
// Returns:
//   - string: Regex fragment matching one character
//   - bool: false when the fragment could never match
func classToRegex(body []rune) (string, bool) {
	negate := false
	if len(body) > 0 && body[0] == '!' {
		negate = true
		body = body[1:]
	}

	var members strings.Builder
	for k := 0; k < len(body); {
		if k+2 < len(body) && body[k+1] == '-' {
			lo, hi := body[k], body[k+2]
			if lo <= hi {
				members.WriteString(escapeClassRune(lo))
				members.WriteString("-")
				members.WriteString(escapeClassRune(hi))
			}
			k += 3
			continue
		}
		members.WriteString(escapeClassRune(body[k]))
		k++
	}

	if members.Len() == 0 {
		if negate {
			return `.`, true
		}
		return "", false
	}
	if negate {
		return "[^" + members.String() + "]", true
	}
	return "[" + members.String() + "]", true
}

// escapeClassRune escapes a rune for use inside a regex character class.
func escapeClassRune(r rune) string {
	switch r {
	case '\\', ']', '[', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}

// TrimAndSplit splits a string by separator and trims whitespace from each part.
//
// Empty parts (after trimming) are excluded from the result.
//
// Parameters:
//   - s: The string to split
//   - sep: The separator to split on
//
// Returns:
//   - []string: Non-empty, trimmed parts; nil if s is empty
func TrimAndSplit(s string, sep string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Contains checks if a string slice contains a specific item.
//
// Parameters:
//   - slice: The slice to search
//   - item: The item to look for
//
// Returns:
//   - bool: true if item is found
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
