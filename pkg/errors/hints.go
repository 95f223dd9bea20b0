package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "not a valid zip file",
		Hint:       "Not a valid .xlsx workbook",
		Resolution: "Re-save the file as Excel Workbook (.xlsx); legacy .xls files are not supported",
	},
	{
		Pattern:    "workbook has no sheets",
		Hint:       "Workbook contains no worksheet",
		Resolution: "Add a worksheet with a header row",
	},
	{
		Pattern:    "failed to list input directory",
		Hint:       "Input directory is not readable",
		Resolution: "Create the directory or pass --input, or set directories.input in the settings file",
	},
	{
		Pattern:    "failed to list pattern directory",
		Hint:       "Pattern directory is not readable",
		Resolution: "Create it, run 'sheetfilter init-lists', or disable the filter with --no-exclude/--no-include",
	},
	{
		Pattern:    "settings validation failed",
		Hint:       "Settings file is invalid",
		Resolution: "Run 'sheetfilter config --validate' for details or 'sheetfilter config --init' to create a fresh one",
	},
	{
		Pattern:    "failed to parse settings",
		Hint:       "Settings file is not valid YAML",
		Resolution: "Run 'sheetfilter config --validate' to locate the error",
	},
	{
		Pattern:    "table region",
		Hint:       "Output was saved without a table region",
		Resolution: "Check output.table_name and output.table_style in the settings file",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions; close the workbook if it is open in a spreadsheet application",
	},
	{
		Pattern:    "being used by another process",
		Hint:       "File is locked",
		Resolution: "Close the workbook in your spreadsheet application and run again",
	},
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}
	if h, ok := findHint(err); ok {
		return err.Error() + "\n  \U0001F4A1 " + h.Hint + ": " + h.Resolution
	}
	return err.Error()
}

// findHint returns the first hint whose pattern occurs in err's message.
func findHint(err error) (ErrorHint, bool) {
	if err == nil {
		return ErrorHint{}, false
	}
	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint, true
		}
	}
	return ErrorHint{}, false
}
