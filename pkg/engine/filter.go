package engine

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ajxudir/sheetfilter/pkg/filtering"
	"github.com/ajxudir/sheetfilter/pkg/patterns"
	"github.com/ajxudir/sheetfilter/pkg/sheet"
	"github.com/ajxudir/sheetfilter/pkg/verbose"
)

// FormulaPrefix marks cell text that looks like a formula.
const FormulaPrefix = "="

// Flags selects which pattern sets are applied.
type Flags struct {
	Exclude bool
	Include bool
}

// Stats counts rows through the filter pipeline of one table.
//
// Fields:
//   - InputRows: Rows before filtering
//   - FormulaRows: Rows dropped for formula-looking text
//   - ExcludedRows: Rows dropped by exclusion patterns
//   - NotIncludedRows: Rows dropped for matching no inclusion pattern
//   - OutputRows: Rows left
type Stats struct {
	InputRows       int
	FormulaRows     int
	ExcludedRows    int
	NotIncludedRows int
	OutputRows      int
}

// FilterTable applies the filter pipeline to t in place.
//
// It performs the following operations:
//   - Step 1: Drops every row with a cell whose text starts with "=", always
//   - Step 2: If flags.Exclude, for each column of excl present in t, fills
//     missing values with "" and drops rows matching any of its patterns
//   - Step 3: If flags.Include, for each column of incl present in t, keeps
//     only rows matching at least one of its patterns
//
// Columns of a pattern set that are absent from t are logged and ignored.
// Columns are visited in sorted order; row order is preserved.
//
// Parameters:
//   - t: Table to filter
//   - excl: Exclusion patterns keyed by column
//   - incl: Inclusion patterns keyed by column
//   - flags: Which pattern sets are applied
//   - logger: Event logger
//
// Returns:
//   - Stats: Row counts per stage
func FilterTable(t *sheet.Table, excl, incl patterns.Set, flags Flags, logger zerolog.Logger) Stats {
	stats := Stats{InputRows: t.Len()}

	stats.FormulaRows = stripFormulas(t)
	if stats.FormulaRows > 0 {
		logger.Info().
			Int("before", stats.InputRows).
			Int("after", t.Len()).
			Msgf("Formula filtering reduced rows from %d to %d", stats.InputRows, t.Len())
	}

	if flags.Exclude {
		for _, column := range excl.Columns() {
			stats.ExcludedRows += applyColumn(t, column, excl, true, logger)
		}
	}

	if flags.Include {
		for _, column := range incl.Columns() {
			stats.NotIncludedRows += applyColumn(t, column, incl, false, logger)
		}
	}

	stats.OutputRows = t.Len()
	return stats
}

// IsFormula reports whether a cell value looks like a formula.
func IsFormula(v any) bool {
	return strings.HasPrefix(sheet.CellString(v), FormulaPrefix)
}

// stripFormulas removes rows holding formula-looking text in any column.
func stripFormulas(t *sheet.Table) int {
	return t.Filter(func(row sheet.Row) bool {
		for _, column := range t.Columns {
			v := sheet.Value(row, column)
			if IsFormula(v) {
				verbose.RowDropped(column, sheet.CellString(v), "formula")
				return false
			}
		}
		return true
	})
}

// applyColumn filters t by the patterns of one column.
//
// With exclude set, rows matching any pattern are removed; otherwise rows
// matching none are removed.
//
// Parameters:
//   - t: Table to filter
//   - column: Column name
//   - set: Pattern set holding the column's patterns
//   - exclude: true for exclusion, false for inclusion
//   - logger: Event logger
//
// Returns:
//   - int: Number of rows removed
func applyColumn(t *sheet.Table, column string, set patterns.Set, exclude bool, logger zerolog.Logger) int {
	kind := "Inclusion"
	if exclude {
		kind = "Exclusion"
	}

	if !t.HasColumn(column) {
		logger.Info().Str("column", column).Msgf("Column %s not found; ignoring its %s list", column, strings.ToLower(kind))
		return 0
	}

	list, _ := set.Patterns(column)
	matcher := filtering.NewAnyGlobMatcher(list)
	logger.Debug().Str("column", column).Int("patterns", len(list)).Msgf("Applying %s list to column %s", strings.ToLower(kind), column)

	if exclude {
		t.FillMissing(column, "")
	}

	before := t.Len()
	removed := t.Filter(func(row sheet.Row) bool {
		value := sheet.CellString(sheet.Value(row, column))
		matched, pattern := matcher.First(value)
		switch {
		case exclude && matched:
			verbose.RowDropped(column, value, fmt.Sprintf("excluded by %q", pattern))
			return false
		case !exclude && !matched:
			verbose.RowDropped(column, value, "not included")
			return false
		}
		return true
	})

	logger.Info().
		Str("column", column).
		Int("before", before).
		Int("after", t.Len()).
		Msgf("%s filtering on column %s reduced rows from %d to %d", kind, column, before, t.Len())
	return removed
}
