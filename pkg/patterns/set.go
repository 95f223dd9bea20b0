// Package patterns loads per-column wildcard pattern lists for sheetfilter.
//
// A pattern directory holds one plain-text file per column. The file name
// without its ".txt" extension is the column name and every line of the file
// is one shell-style wildcard pattern:
//
//	blacklists/
//	    Status.txt   -> "cancel*", "void"
//	    Region.txt   -> (empty file, no restriction)
//
// Load a directory into a Set:
//
//	set, err := patterns.LoadDir("blacklists")
//	if p, ok := set.Patterns("Status"); ok {
//	    fmt.Println(p) // [cancel* void]
//	}
package patterns

import "sort"

// Set maps column names to their ordered pattern lists.
//
// A Set is built once per run and never mutated afterwards. All accessors
// return copies so callers cannot alter the loaded lists.
//
// Fields:
//   - entries: Column name to pattern list; columns with no patterns are absent
//   - columns: Sorted column names for deterministic iteration
type Set struct {
	entries map[string][]string
	columns []string
}

// NewSet builds a Set from a column → patterns mapping.
//
// The input map is copied. Columns with an empty pattern list are dropped,
// matching the rule that an empty pattern file means "no restriction".
//
// Parameters:
//   - entries: Column name to pattern list mapping (may be nil)
//
// Returns:
//   - Set: An immutable pattern set
func NewSet(entries map[string][]string) Set {
	s := Set{entries: make(map[string][]string, len(entries))}
	for column, list := range entries {
		if len(list) == 0 {
			continue
		}
		s.entries[column] = append([]string(nil), list...)
		s.columns = append(s.columns, column)
	}
	sort.Strings(s.columns)
	return s
}

// Columns returns the column names present in the set, sorted.
//
// Returns:
//   - []string: Copy of the sorted column names
func (s Set) Columns() []string {
	return append([]string(nil), s.columns...)
}

// Patterns returns the pattern list for a column.
//
// Column lookup is exact and case-sensitive.
//
// Parameters:
//   - column: Column name to look up
//
// Returns:
//   - []string: Copy of the column's patterns in file order
//   - bool: true if the column is present in the set
func (s Set) Patterns(column string) ([]string, bool) {
	list, ok := s.entries[column]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// Len returns the number of columns in the set.
func (s Set) Len() int {
	return len(s.columns)
}
