// Package sheet reads and writes the tabular data sheetfilter works on.
//
// A Table holds the header names of a sheet and its data rows. Each row is
// an ordered map from column name to cell value so that iteration follows
// the source column order. Cell values are one of:
//   - nil for a missing (blank) cell
//   - float64 for a number, whatever its display format
//   - bool for a boolean cell
//   - time.Time for a date or time cell
//   - string for text
package sheet

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iancoleman/orderedmap"
)

// Row is one data row keyed by column name.
type Row = *orderedmap.OrderedMap

// Table is an in-memory sheet: ordered columns and ordered rows.
//
// Fields:
//   - Columns: Header names in sheet order, unique
//   - Rows: Data rows in sheet order
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given columns.
//
// Parameters:
//   - columns: Header names in order
//
// Returns:
//   - *Table: Table with no rows
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// AppendRow adds a row built from positional values.
//
// Values beyond the number of columns are ignored; missing values are nil.
//
// Parameters:
//   - values: Cell values in column order
//
// Returns:
//   - Row: The appended row
func (t *Table) AppendRow(values ...any) Row {
	row := orderedmap.New()
	for i, column := range t.Columns {
		var v any
		if i < len(values) {
			v = values[i]
		}
		row.Set(column, v)
	}
	t.Rows = append(t.Rows, row)
	return row
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with exactly this name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the cell value of row in column, nil when absent.
func Value(row Row, column string) any {
	v, _ := row.Get(column)
	return v
}

// Filter removes every row for which keep returns false.
//
// Rows are removed in place and the relative order of the remaining rows
// is preserved.
//
// Parameters:
//   - keep: Predicate deciding whether a row stays
//
// Returns:
//   - int: Number of rows removed
func (t *Table) Filter(keep func(Row) bool) int {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	removed := len(t.Rows) - len(kept)
	for i := len(kept); i < len(t.Rows); i++ {
		t.Rows[i] = nil
	}
	t.Rows = kept
	return removed
}

// FillMissing replaces nil values of a column with value.
//
// Parameters:
//   - column: Column to fill
//   - value: Replacement for missing cells
//
// Returns:
//   - int: Number of cells replaced
func (t *Table) FillMissing(column string, value any) int {
	filled := 0
	for _, row := range t.Rows {
		if v, ok := row.Get(column); !ok || v == nil {
			row.Set(column, value)
			filled++
		}
	}
	return filled
}

// CellString renders a cell value as text.
//
// It performs the following conversions:
//   - nil becomes ""
//   - float64 uses the shortest decimal form ("3", "2.5")
//   - bool becomes "True" or "False"
//   - time.Time becomes "2006-01-02 15:04:05", with microseconds when set
//   - strings are returned unchanged
//   - anything else goes through fmt.Sprint
//
// Parameters:
//   - v: Cell value
//
// Returns:
//   - string: Text representation used for matching and column widths
func CellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case time.Time:
		if val.Nanosecond() != 0 {
			return val.Format("2006-01-02 15:04:05.000000")
		}
		return val.Format(time.DateTime)
	default:
		return fmt.Sprint(val)
	}
}
