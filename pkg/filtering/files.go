package filtering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/sheetfilter/pkg/utils"
)

// SpreadsheetExtension is the extension of qualifying input files.
const SpreadsheetExtension = ".xlsx"

// DefaultFileFilter skips Office lock files ("~$report.xlsx") that sit next
// to workbooks open in Excel and cannot be parsed.
const DefaultFileFilter = "!~$*"

// FileFilterPatterns holds include and exclude glob patterns for file filtering.
type FileFilterPatterns struct {
	Include []string
	Exclude []string
}

// IsEmpty reports whether no patterns were given.
func (p FileFilterPatterns) IsEmpty() bool {
	return len(p.Include) == 0 && len(p.Exclude) == 0
}

// ParseFileFilterPatterns parses a comma-separated filter string into include/exclude patterns.
// Patterns starting with ! are treated as exclusion patterns.
//
// Parameters:
//   - filter: Comma-separated patterns (e.g., "sales_*.xlsx,!~$*")
//
// Returns:
//   - FileFilterPatterns: Parsed include and exclude patterns
//
// Example:
//
//	patterns := filtering.ParseFileFilterPatterns("2024*,2025*,!*draft*")
//	// patterns.Include = ["2024*", "2025*"]
//	// patterns.Exclude = ["*draft*"]
func ParseFileFilterPatterns(filter string) FileFilterPatterns {
	var patterns FileFilterPatterns
	for _, p := range utils.TrimAndSplit(filter, ",") {
		if strings.HasPrefix(p, "!") {
			if excl := strings.TrimPrefix(p, "!"); excl != "" {
				patterns.Exclude = append(patterns.Exclude, excl)
			}
		} else {
			patterns.Include = append(patterns.Include, p)
		}
	}
	return patterns
}

// MatchesFileFilter checks if a file name matches the filter patterns.
// If include patterns exist, the name must match at least one.
// If the name matches any exclude pattern, it is rejected.
//
// Parameters:
//   - name: The file name to check
//   - patterns: The filter patterns to match against
//
// Returns:
//   - bool: true if the name matches the filter criteria
//
// Example:
//
//	patterns := ParseFileFilterPatterns("*.xlsx,!~$*")
//	filtering.MatchesFileFilter("orders.xlsx", patterns)   // true
//	filtering.MatchesFileFilter("~$orders.xlsx", patterns) // false
func MatchesFileFilter(name string, patterns FileFilterPatterns) bool {
	// Check excludes first - if any exclude pattern matches, reject
	for _, pattern := range patterns.Exclude {
		if utils.MatchGlob(name, pattern) {
			return false
		}
	}

	if len(patterns.Include) == 0 {
		return true
	}

	for _, pattern := range patterns.Include {
		if utils.MatchGlob(name, pattern) {
			return true
		}
	}

	return false
}

// IsSpreadsheet reports whether a file name has the spreadsheet extension.
//
// The comparison is case-sensitive, so "REPORT.XLSX" does not qualify.
func IsSpreadsheet(name string) bool {
	return strings.HasSuffix(name, SpreadsheetExtension)
}

// ListSpreadsheets returns the qualifying spreadsheet files in dir.
//
// It performs the following operations:
//   - Step 1: Lists dir (entries come back sorted by name)
//   - Step 2: Skips directories and names without the ".xlsx" extension
//   - Step 3: Applies the comma-separated file filter to the base name
//
// Parameters:
//   - dir: Directory to list
//   - filter: Comma-separated include/!exclude globs; empty keeps every spreadsheet
//
// Returns:
//   - []string: Full paths of qualifying files in name order
//   - error: When dir cannot be listed
func ListSpreadsheets(dir, filter string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory %s: %w", dir, err)
	}

	patterns := ParseFileFilterPatterns(filter)
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsSpreadsheet(name) {
			continue
		}
		if !patterns.IsEmpty() && !MatchesFileFilter(name, patterns) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}
