package sheet

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"

	"github.com/ajxudir/sheetfilter/pkg/verbose"
)

// Load reads the first sheet of an .xlsx workbook into a Table.
//
// It performs the following operations:
//   - Step 1: Opens the workbook and picks the first sheet in workbook order
//   - Step 2: Reads displayed and raw cell values
//   - Step 3: Turns row 1 into unique column names
//   - Step 4: Builds one Row per non-blank data row, typing each cell from
//     its stored type and number format (see cellReader.value)
//
// A workbook without sheets or with an empty first sheet yields a Table with
// no columns and no rows.
//
// Parameters:
//   - path: Path to the workbook
//
// Returns:
//   - *Table: Loaded table
//   - error: When the file cannot be opened or the sheet cannot be read
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	name := sheets[0]

	formatted, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", name, path, err)
	}
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read raw values of sheet %q of %s: %w", name, path, err)
	}

	if len(formatted) == 0 {
		return &Table{}, nil
	}

	cells := newCellReader(f, name)
	t := &Table{Columns: headerNames(formatted[0])}
	for i := 1; i < len(formatted); i++ {
		if isBlankRow(formatted[i]) {
			continue
		}
		var rawRow []string
		if i < len(raw) {
			rawRow = raw[i]
		}
		t.Rows = append(t.Rows, cells.row(t.Columns, i+1, formatted[i], rawRow))
	}

	verbose.Printf("Loaded sheet %q from %s: %d column(s), %d row(s)", name, path, len(t.Columns), len(t.Rows))
	return t, nil
}

// headerNames turns the header row into unique column names.
//
// Blank headers become "Unnamed: <index>" (zero-based). Repeated names get
// ".1", ".2", ... suffixes in order of appearance.
//
// Parameters:
//   - header: Header row cells
//
// Returns:
//   - []string: Unique column names, one per header cell
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, cell := range header {
		name := cell
		if strings.TrimSpace(name) == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if seen[name] {
			base := name
			for n := 1; seen[name]; n++ {
				name = base + "." + strconv.Itoa(n)
			}
		}
		seen[name] = true
		names[i] = name
	}
	return names
}

// builtinDateFormats are the built-in number format IDs that display a date
// or a time of day.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

var (
	// numFmtLiteral matches quoted text and bracketed sections ([Red], [$-409]).
	numFmtLiteral = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]`)

	// numFmtDateToken matches an unescaped date or time placeholder.
	numFmtDateToken = regexp.MustCompile(`(^|[^_\\])[dmhysDMHYS]`)
)

// isDateFormat reports whether a custom number format code displays a date
// or time. Only the first section (positive numbers) is inspected.
func isDateFormat(code string) bool {
	section, _, _ := strings.Cut(code, ";")
	return numFmtDateToken.MatchString(numFmtLiteral.ReplaceAllString(section, ""))
}

// isoDateLayouts are the layouts accepted for ISO 8601 ("d" type) cells.
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// cellReader types the cells of one sheet.
//
// Fields:
//   - f: Open workbook
//   - sheet: Sheet name
//   - date1904: Whether serial dates count from 1904
//   - dateStyles: Cache of style index to "displays a date"
type cellReader struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

// newCellReader creates a cellReader for a sheet of f.
func newCellReader(f *excelize.File, sheet string) *cellReader {
	r := &cellReader{f: f, sheet: sheet, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r
}

// row creates a Row for the given columns from one sheet row.
//
// Parameters:
//   - columns: Column names in order
//   - sheetRow: One-based row number in the sheet
//   - formatted: Cell text as displayed
//   - raw: Cell values as stored
//
// Returns:
//   - Row: Typed row, nil for blank cells
func (r *cellReader) row(columns []string, sheetRow int, formatted, raw []string) Row {
	row := orderedmap.New()
	for ci, column := range columns {
		var value any
		if ci < len(formatted) {
			rawCell := formatted[ci]
			if ci < len(raw) {
				rawCell = raw[ci]
			}
			value = r.value(ci+1, sheetRow, formatted[ci], rawCell)
		}
		row.Set(column, value)
	}
	return row
}

// value types a single cell.
//
// It performs the following conversions:
//   - blank cells become nil
//   - boolean cells become bool
//   - numeric cells with a date or time format become time.Time
//   - other numeric cells become float64, whatever their display format
//   - ISO 8601 date cells become time.Time
//   - text, error and anything unreadable stay strings
//
// Parameters:
//   - col, sheetRow: One-based cell coordinates
//   - formatted: Cell text as displayed
//   - raw: Cell value as stored
//
// Returns:
//   - any: nil, bool, float64, time.Time or string
func (r *cellReader) value(col, sheetRow int, formatted, raw string) any {
	if formatted == "" && raw == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, sheetRow)
	if err != nil {
		return formatted
	}
	typ, err := r.f.GetCellType(r.sheet, cell)
	if err != nil {
		return formatted
	}

	switch typ {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeDate:
		for _, layout := range isoDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
		return formatted
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return formatted
		}
		if r.isDateCell(cell) {
			if t, err := excelize.ExcelDateToTime(n, r.date1904); err == nil {
				return t
			}
		}
		return n
	default:
		if raw == "" {
			return formatted
		}
		return raw
	}
}

// isDateCell reports whether the number format of cell displays a date.
func (r *cellReader) isDateCell(cell string) bool {
	idx, err := r.f.GetCellStyle(r.sheet, cell)
	if err != nil || idx == 0 {
		return false
	}
	if isDate, ok := r.dateStyles[idx]; ok {
		return isDate
	}

	isDate := false
	if style, err := r.f.GetStyle(idx); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormat(*style.CustomNumFmt)
		} else {
			isDate = builtinDateFormats[style.NumFmt]
		}
	}
	r.dateStyles[idx] = isDate
	return isDate
}

// isBlankRow reports whether every cell of a row is empty.
func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
