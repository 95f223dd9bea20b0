package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// WorkbookBuilder provides a fluent API for building .xlsx fixtures.
//
// The first row written is the header. Rows are written to the first sheet
// exactly as given; nil values leave the cell blank.
//
// Example:
//
//	testutil.NewWorkbook("Name", "Status").
//	    Row("Ann", "active").
//	    Row("Bob", "cancelled").
//	    Save(t, filepath.Join(dir, "orders.xlsx"))
type WorkbookBuilder struct {
	sheet  string
	header []any
	rows   [][]any
	extra  []string
}

// NewWorkbook creates a builder with the given header row.
//
// Parameters:
//   - header: Header cells in column order
//
// Returns:
//   - *WorkbookBuilder: New builder instance ready for method chaining
func NewWorkbook(header ...any) *WorkbookBuilder {
	return &WorkbookBuilder{header: header}
}

// WithSheetName renames the first sheet.
//
// Parameters:
//   - name: Sheet name
//
// Returns:
//   - *WorkbookBuilder: Self for method chaining
func (b *WorkbookBuilder) WithSheetName(name string) *WorkbookBuilder {
	b.sheet = name
	return b
}

// WithExtraSheet appends another, empty sheet after the first one.
//
// Parameters:
//   - name: Name of the additional sheet
//
// Returns:
//   - *WorkbookBuilder: Self for method chaining
func (b *WorkbookBuilder) WithExtraSheet(name string) *WorkbookBuilder {
	b.extra = append(b.extra, name)
	return b
}

// Row appends a data row.
//
// Parameters:
//   - values: Cell values in column order
//
// Returns:
//   - *WorkbookBuilder: Self for method chaining
func (b *WorkbookBuilder) Row(values ...any) *WorkbookBuilder {
	b.rows = append(b.rows, values)
	return b
}

// Save writes the workbook to path, failing the test on error.
//
// Parameters:
//   - t: Testing instance for helper marking and failure reporting
//   - path: Destination file path
//
// Returns:
//   - string: path, for convenient chaining in test setup
func (b *WorkbookBuilder) Save(t *testing.T, path string) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := f.GetSheetName(0)
	if b.sheet != "" {
		require.NoError(t, f.SetSheetName(name, b.sheet))
		name = b.sheet
	}

	all := append([][]any{b.header}, b.rows...)
	for ri, row := range all {
		for ci, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}

	for _, extra := range b.extra {
		_, err := f.NewSheet(extra)
		require.NoError(t, err)
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.SaveAs(path))
	return path
}

// ReadRows returns the displayed rows of the first sheet of a workbook.
//
// Parameters:
//   - t: Testing instance for helper marking and failure reporting
//   - path: Workbook path
//
// Returns:
//   - [][]string: Rows as excelize reports them (trailing blanks trimmed)
func ReadRows(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	return rows
}

// OpenWorkbook opens a workbook for inspection and closes it when the test ends.
//
// Parameters:
//   - t: Testing instance for helper marking and cleanup registration
//   - path: Workbook path
//
// Returns:
//   - *excelize.File: Open workbook
func OpenWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}
