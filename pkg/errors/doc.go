// Package errors provides the error types and exit codes of sheetfilter.
//
//   - ExitError: Command exit with specific exit code
//   - PartialSuccessError: Some spreadsheets were written, some failed
//
// Error Display:
//
// The package provides consistent error formatting with actionable hints:
//
//	errors.PrintErrorWithHints(os.Stderr, errs, verbose)
//
// Exit code lookup unwraps wrapped errors:
//
//	os.Exit(errors.GetExitCode(err))
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): Every spreadsheet was processed
//   - ExitPartialFailure (1): Some spreadsheets failed
//   - ExitFailure (2): All spreadsheets failed or critical error
//   - ExitConfigError (3): Invalid settings or unreadable directory
package errors
