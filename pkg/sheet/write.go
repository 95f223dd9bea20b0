package sheet

import (
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ajxudir/sheetfilter/pkg/utils"
)

const (
	// DefaultTableName is the name of the table region in written workbooks.
	DefaultTableName = "Table1"

	// DefaultTableStyle is the built-in Excel style applied to the table region.
	DefaultTableStyle = "TableStyleMedium9"

	// ColumnPadding is added to the widest cell of a column.
	ColumnPadding = 2

	// DateFormat is the number format of date cells without a time of day.
	DateFormat = "yyyy-mm-dd"

	// DateTimeFormat is the number format of date cells with a time of day.
	DateTimeFormat = "yyyy-mm-dd hh:mm:ss"

	// maxColumnWidth is the largest column width Excel accepts.
	maxColumnWidth = 255
)

// ErrTableRegion marks a workbook that was saved without its table region.
// The data is intact; only the named table could not be added.
var ErrTableRegion = errors.New("table region not added")

// WriteOptions controls the formatting of written workbooks.
//
// Fields:
//   - TableName: Name of the table region (must be a valid Excel table name)
//   - TableStyle: Built-in table style name
type WriteOptions struct {
	TableName  string
	TableStyle string
}

// DefaultWriteOptions returns the options used when none are configured.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		TableName:  DefaultTableName,
		TableStyle: DefaultTableStyle,
	}
}

// withDefaults fills empty fields from DefaultWriteOptions.
func (o WriteOptions) withDefaults() WriteOptions {
	def := DefaultWriteOptions()
	if o.TableName == "" {
		o.TableName = def.TableName
	}
	if o.TableStyle == "" {
		o.TableStyle = def.TableStyle
	}
	return o
}

// Write saves a Table as a new formatted workbook.
//
// It performs the following operations:
//   - Step 1: Writes the header row and all rows in order to the first sheet,
//     keeping numbers, booleans and dates as typed cells
//   - Step 2: Sizes every column to its widest rendered cell plus padding
//   - Step 3: Wraps the used range in one named, row-banded table region
//   - Step 4: Saves the workbook to path
//
// If the table region cannot be added the workbook is still saved and an
// error wrapping ErrTableRegion is returned.
//
// Parameters:
//   - path: Destination file
//   - t: Table to write; must have at least one column
//   - opts: Table region options
//
// Returns:
//   - error: When writing or saving fails
func Write(path string, t *Table, opts WriteOptions) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("cannot write %s: table has no columns", path)
	}
	opts = opts.withDefaults()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	name := f.GetSheetName(0)

	if err := writeCells(f, name, t); err != nil {
		return fmt.Errorf("failed to write cells to %s: %w", path, err)
	}

	for ci, width := range ColumnWidths(t) {
		col, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, float64(width)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	tableErr := addTable(f, name, t, opts)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if tableErr != nil {
		return fmt.Errorf("%w: %v", ErrTableRegion, tableErr)
	}
	return nil
}

// cellWriter writes typed values to one sheet and owns its date styles.
type cellWriter struct {
	f      *excelize.File
	sheet  string
	styles map[string]int
}

// set writes v to cell.
//
// Strings are always written as text so that values such as "007" keep
// their form. Dates get DateFormat or DateTimeFormat.
func (w *cellWriter) set(cell string, v any) error {
	switch val := v.(type) {
	case string:
		return w.f.SetCellStr(w.sheet, cell, val)
	case time.Time:
		if err := w.f.SetCellValue(w.sheet, cell, val); err != nil {
			return err
		}
		format := DateTimeFormat
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			format = DateFormat
		}
		style, err := w.style(format)
		if err != nil {
			return err
		}
		return w.f.SetCellStyle(w.sheet, cell, cell, style)
	default:
		return w.f.SetCellValue(w.sheet, cell, val)
	}
}

// style returns the style index for a custom number format, creating it once.
func (w *cellWriter) style(format string) (int, error) {
	if idx, ok := w.styles[format]; ok {
		return idx, nil
	}
	idx, err := w.f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return 0, err
	}
	w.styles[format] = idx
	return idx, nil
}

// writeCells writes the header and data rows starting at A1.
// Missing values leave the cell empty.
func writeCells(f *excelize.File, sheetName string, t *Table) error {
	w := &cellWriter{f: f, sheet: sheetName, styles: make(map[string]int)}

	for ci, column := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(ci+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, column); err != nil {
			return err
		}
	}

	for ri, row := range t.Rows {
		for ci, column := range t.Columns {
			v := Value(row, column)
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return err
			}
			if err := w.set(cell, v); err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// addTable wraps the header and data rows in a named table region.
func addTable(f *excelize.File, sheetName string, t *Table, opts WriteOptions) error {
	end, err := excelize.CoordinatesToCellName(len(t.Columns), len(t.Rows)+1)
	if err != nil {
		return err
	}
	showRowStripes := true
	return f.AddTable(sheetName, &excelize.Table{
		Range:             "A1:" + end,
		Name:              opts.TableName,
		StyleName:         opts.TableStyle,
		ShowRowStripes:    &showRowStripes,
		ShowColumnStripes: true,
	})
}

// ColumnWidths returns the display width of each column of t.
//
// Each width is the widest rendered value in the column, header included,
// plus ColumnPadding, capped at Excel's maximum of 255. Widths are computed
// independently per column.
//
// Parameters:
//   - t: Table to measure
//
// Returns:
//   - []int: One width per column, in column order
func ColumnWidths(t *Table) []int {
	widths := make([]int, len(t.Columns))
	values := make([]string, 0, len(t.Rows)+1)
	for ci, column := range t.Columns {
		values = append(values[:0], column)
		for _, row := range t.Rows {
			values = append(values, CellString(Value(row, column)))
		}
		widths[ci] = min(utils.MaxDisplayWidth(values...)+ColumnPadding, maxColumnWidth)
	}
	return widths
}
