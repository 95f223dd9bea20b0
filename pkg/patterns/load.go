package patterns

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ajxudir/sheetfilter/pkg/verbose"
)

// FileExtension is the extension of pattern list files.
const FileExtension = ".txt"

// LoadDir loads every pattern file in dir into a Set.
//
// It performs the following operations:
//   - Step 1: Lists dir; a listing failure is returned as an error
//   - Step 2: Skips directories and files without the ".txt" extension
//   - Step 3: Reads each remaining file and splits it into lines
//   - Step 4: Files with no lines are skipped (no restriction for that column)
//   - Step 5: Stores the lines verbatim under the file's base name
//
// Parameters:
//   - dir: Directory containing <column>.txt files
//
// Returns:
//   - Set: Loaded pattern set
//   - error: When dir cannot be listed or a pattern file cannot be read
func LoadDir(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Set{}, fmt.Errorf("failed to list pattern directory %s: %w", dir, err)
	}

	loaded := make(map[string][]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, FileExtension) {
			continue
		}

		path := filepath.Join(dir, name)
		lines, err := LoadFile(path)
		if err != nil {
			return Set{}, err
		}
		if len(lines) == 0 {
			verbose.Printf("Pattern file %s is empty, no restriction for its column", path)
			continue
		}

		column := strings.TrimSuffix(name, FileExtension)
		loaded[column] = lines
		verbose.Printf("Loaded %d pattern(s) for column %q from %s", len(lines), column, path)
	}

	return NewSet(loaded), nil
}

// LoadFile reads a single pattern file and returns its lines.
//
// Parameters:
//   - path: Path to the pattern file
//
// Returns:
//   - []string: Lines of the file, without terminators
//   - error: When the file cannot be read
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits content on line boundaries.
//
// Boundaries are "\r\n", "\n", "\r", "\v", "\f", the file, group and record
// separators (U+001C to U+001E), NEL (U+0085), and the Unicode line and
// paragraph separators (U+2028, U+2029). A boundary at the very end does not
// produce a trailing empty line, so "a\nb\n" yields [a b] while "\n" yields a
// single empty line. Lines are not trimmed.
//
// Parameters:
//   - content: Text to split
//
// Returns:
//   - []string: Lines in order; nil for empty content
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i, r := range content {
		if i < start {
			// Second half of a "\r\n" pair.
			continue
		}
		if !isLineBoundary(r) {
			continue
		}
		lines = append(lines, content[start:i])
		start = i + utf8.RuneLen(r)
		if r == '\r' && start < len(content) && content[start] == '\n' {
			start++
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// isLineBoundary reports whether r ends a line.
func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
