// Package filtering provides wildcard matching for sheetfilter.
//
// Cell values are matched against shell-style wildcard patterns with
// fnmatchcase semantics (case-sensitive, whole value, "*" crosses "/").
//
// Column Matching:
//
// Build one matcher per column from its pattern list:
//
//	m := filtering.NewAnyGlobMatcher([]string{"cancel*", "void"})
//	if ok, pattern := m.First("cancelled"); ok {
//	    fmt.Println("matched", pattern) // matched cancel*
//	}
//
// Input Files:
//
// Qualifying spreadsheets are selected by extension and an optional
// comma-separated file filter, where "!" marks an exclusion:
//
//	files, err := filtering.ListSpreadsheets("input", "*.xlsx,!~$*")
package filtering
