package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajxudir/sheetfilter/pkg/constants"
)

// WriteRunResult writes run results in the specified format.
//
// FormatTable prints the aligned per-file table followed by a summary line;
// the other formats write a single document.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format
//   - result: Run result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteRunResult(w io.Writer, format Format, result *RunResult) error {
	if format == FormatTable {
		printRunTable(w, result)
		return nil
	}
	return writeStructured(w, format, result)
}

// printRunTable prints the per-file table and summary line of a run.
//
// Parameters:
//   - w: Destination writer
//   - result: Run result data
func printRunTable(w io.Writer, result *RunResult) {
	if len(result.Files) == 0 {
		_, _ = fmt.Fprintf(w, "No spreadsheets found in %s\n", result.Summary.InputDir)
		return
	}

	hasErrors := false
	rows := make([][]string, 0, len(result.Files))
	for _, f := range result.Files {
		note := f.Error
		if note == "" {
			note = f.Warning
		}
		hasErrors = hasErrors || note != ""
		rows = append(rows, []string{
			StatusIcon(f.Status) + " " + f.Status,
			f.File,
			strconv.Itoa(f.InputRows),
			strconv.Itoa(f.FormulaRows),
			strconv.Itoa(f.ExcludedRows),
			strconv.Itoa(f.NotIncludedRows),
			strconv.Itoa(f.OutputRows),
			note,
		})
	}

	table := NewTable().
		AddColumn("STATUS").
		AddColumn("FILE").
		AddColumn("ROWS").
		AddColumn("FORMULA").
		AddColumn("EXCLUDED").
		AddColumn("NOT INCLUDED").
		AddColumn("KEPT").
		AddConditionalColumn("NOTE", hasErrors)
	table.Render(w, rows)

	s := result.Summary
	_, _ = fmt.Fprintf(w, "\n%d file(s): %d written, %d empty, %d failed; %d of %d rows kept\n",
		s.TotalFiles, s.WrittenFiles, s.EmptyFiles, s.FailedFiles, s.OutputRows, s.InputRows)
	_, _ = fmt.Fprintf(w, "Exclusion: %s, inclusion: %s\n",
		filterState(s.ExcludeEnabled, s.ExcludeColumns), filterState(s.IncludeEnabled, s.IncludeColumns))
	for _, warning := range result.Warnings {
		_, _ = fmt.Fprintf(w, "%s  %s\n", constants.IconWarn, warning)
	}
}

// filterState describes a pattern set for the summary line.
func filterState(enabled bool, columns int) string {
	if !enabled {
		return "off"
	}
	return fmt.Sprintf("on (%d column(s))", columns)
}

// WriteListsResult writes init-lists results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format
//   - result: init-lists result data to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteListsResult(w io.Writer, format Format, result *ListsResult) error {
	if format == FormatTable {
		printListsTable(w, result)
		return nil
	}
	return writeStructured(w, format, result)
}

// printListsTable prints one line per pattern file and a summary line.
func printListsTable(w io.Writer, result *ListsResult) {
	if result.Summary.Source == "" {
		_, _ = fmt.Fprintln(w, "No spreadsheets found; no list files created")
		return
	}

	rows := make([][]string, 0, len(result.Entries))
	for _, e := range result.Entries {
		rows = append(rows, []string{StatusIcon(e.Status) + " " + e.Status, e.Set, e.Column, e.File})
	}
	if len(rows) > 0 {
		NewTable().
			AddColumn("STATUS").
			AddColumn("SET").
			AddColumn("COLUMN").
			AddColumn("FILE").
			Render(w, rows)
		_, _ = fmt.Fprintln(w)
	}

	s := result.Summary
	_, _ = fmt.Fprintf(w, "Columns from %s: %d; %d created, %d existing, %d skipped\n",
		s.Source, s.Columns, s.Created, s.Existing, s.Skipped)
}

// StatusIcon returns the display icon for a file or list status.
//
// Parameters:
//   - status: One of the constants.Status* values
//
// Returns:
//   - string: The matching icon, or constants.IconInfo for unknown statuses
func StatusIcon(status string) string {
	switch status {
	case constants.StatusWritten, constants.StatusCreated:
		return constants.IconSuccess
	case constants.StatusEmpty, constants.StatusSkipped:
		return constants.IconWarning
	case constants.StatusExists:
		return constants.IconNotConfigured
	case constants.StatusFailed:
		return constants.IconError
	default:
		return constants.IconInfo
	}
}
