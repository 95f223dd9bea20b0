package output

import (
	"encoding/xml"
	"strconv"
)

// RunResult represents the output data for the run command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the run
//   - Files: One entry per input spreadsheet, in processing order
//   - Warnings: Warning messages generated during the run (omitted if empty)
type RunResult struct {
	XMLName  xml.Name    `json:"-" xml:"runResult"`
	Summary  RunSummary  `json:"summary" xml:"summary"`
	Files    []FileEntry `json:"files" xml:"files>file"`
	Warnings []string    `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// RunSummary holds summary statistics for run results.
//
// Fields:
//   - InputDir: Directory the spreadsheets were read from
//   - OutputDir: Directory filtered spreadsheets were written to
//   - ExcludeEnabled: Whether exclusion patterns were applied
//   - IncludeEnabled: Whether inclusion patterns were applied
//   - ExcludeColumns: Number of columns with exclusion patterns
//   - IncludeColumns: Number of columns with inclusion patterns
//   - TotalFiles: Number of spreadsheets found
//   - WrittenFiles: Number of filtered spreadsheets written
//   - EmptyFiles: Number of spreadsheets with no rows left
//   - FailedFiles: Number of spreadsheets that failed
//   - InputRows: Data rows read across all files
//   - OutputRows: Data rows written across all files
type RunSummary struct {
	InputDir       string `json:"input_dir" xml:"inputDir"`
	OutputDir      string `json:"output_dir" xml:"outputDir"`
	ExcludeEnabled bool   `json:"exclude_enabled" xml:"excludeEnabled"`
	IncludeEnabled bool   `json:"include_enabled" xml:"includeEnabled"`
	ExcludeColumns int    `json:"exclude_columns" xml:"excludeColumns"`
	IncludeColumns int    `json:"include_columns" xml:"includeColumns"`
	TotalFiles     int    `json:"total_files" xml:"totalFiles"`
	WrittenFiles   int    `json:"written_files" xml:"writtenFiles"`
	EmptyFiles     int    `json:"empty_files" xml:"emptyFiles"`
	FailedFiles    int    `json:"failed_files" xml:"failedFiles"`
	InputRows      int    `json:"input_rows" xml:"inputRows"`
	OutputRows     int    `json:"output_rows" xml:"outputRows"`
}

// FileEntry represents one processed spreadsheet.
//
// Fields:
//   - File: Input file name
//   - Status: Written, Empty or Failed
//   - InputRows: Data rows read
//   - FormulaRows: Rows dropped because a cell held a formula
//   - ExcludedRows: Rows dropped by exclusion patterns
//   - NotIncludedRows: Rows dropped by inclusion patterns
//   - OutputRows: Data rows written
//   - Output: Output file path (omitted if nothing was written)
//   - Warning: Non-fatal problem, such as a missing table region (omitted if empty)
//   - Error: Error message if the file failed (omitted if empty)
type FileEntry struct {
	File            string `json:"file" xml:"file"`
	Status          string `json:"status" xml:"status"`
	InputRows       int    `json:"input_rows" xml:"inputRows"`
	FormulaRows     int    `json:"formula_rows" xml:"formulaRows"`
	ExcludedRows    int    `json:"excluded_rows" xml:"excludedRows"`
	NotIncludedRows int    `json:"not_included_rows" xml:"notIncludedRows"`
	OutputRows      int    `json:"output_rows" xml:"outputRows"`
	Output          string `json:"output,omitempty" xml:"output,omitempty"`
	Warning         string `json:"warning,omitempty" xml:"warning,omitempty"`
	Error           string `json:"error,omitempty" xml:"error,omitempty"`
}

func (r *RunResult) csvHeaders() []string {
	return []string{"FILE", "STATUS", "INPUT_ROWS", "FORMULA_ROWS", "EXCLUDED_ROWS", "NOT_INCLUDED_ROWS", "OUTPUT_ROWS", "OUTPUT", "WARNING", "ERROR"}
}

func (r *RunResult) csvRows() [][]string {
	rows := make([][]string, 0, len(r.Files))
	for _, f := range r.Files {
		rows = append(rows, []string{
			f.File,
			f.Status,
			strconv.Itoa(f.InputRows),
			strconv.Itoa(f.FormulaRows),
			strconv.Itoa(f.ExcludedRows),
			strconv.Itoa(f.NotIncludedRows),
			strconv.Itoa(f.OutputRows),
			f.Output,
			f.Warning,
			f.Error,
		})
	}
	return rows
}

// ListsResult represents the output data for the init-lists command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics
//   - Entries: One entry per pattern file considered
type ListsResult struct {
	XMLName xml.Name     `json:"-" xml:"listsResult"`
	Summary ListsSummary `json:"summary" xml:"summary"`
	Entries []ListEntry  `json:"entries" xml:"entries>entry"`
}

// ListsSummary holds summary statistics for init-lists results.
//
// Fields:
//   - Source: Spreadsheet whose header supplied the column names
//   - Columns: Number of columns in that header
//   - Created: Pattern files created
//   - Existing: Pattern files left untouched
//   - Skipped: Columns whose names cannot be used as file names
type ListsSummary struct {
	Source   string `json:"source" xml:"source"`
	Columns  int    `json:"columns" xml:"columns"`
	Created  int    `json:"created" xml:"created"`
	Existing int    `json:"existing" xml:"existing"`
	Skipped  int    `json:"skipped" xml:"skipped"`
}

// ListEntry represents one pattern file.
//
// Fields:
//   - Set: "exclude" or "include"
//   - Column: Column name
//   - File: Pattern file path
//   - Status: Created, Exists or Skipped
type ListEntry struct {
	Set    string `json:"set" xml:"set"`
	Column string `json:"column" xml:"column"`
	File   string `json:"file" xml:"file"`
	Status string `json:"status" xml:"status"`
}

func (r *ListsResult) csvHeaders() []string {
	return []string{"SET", "COLUMN", "FILE", "STATUS"}
}

func (r *ListsResult) csvRows() [][]string {
	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{e.Set, e.Column, e.File, e.Status})
	}
	return rows
}
