package engine

import (
	stderrors "errors"
	"fmt"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/constants"
	"github.com/ajxudir/sheetfilter/pkg/errors"
)

// FileResult is the outcome of processing one spreadsheet.
//
// Fields:
//   - Name: Input file base name
//   - Path: Input file path
//   - Status: constants.StatusWritten, StatusEmpty or StatusFailed
//   - Stats: Row counts through the pipeline
//   - OutputPath: Written file path; empty unless Status is Written
//   - Warning: Non-fatal problem recorded for a written file
//   - Err: Failure cause when Status is Failed
type FileResult struct {
	Name       string
	Path       string
	Status     string
	Stats      Stats
	OutputPath string
	Warning    string
	Err        error
}

// Failed reports whether the file could not be processed.
func (r FileResult) Failed() bool {
	return r.Status == constants.StatusFailed
}

// Report summarizes a run.
//
// Fields:
//   - Config: Configuration the run used
//   - ExcludeColumns: Columns with exclusion patterns (empty when disabled)
//   - IncludeColumns: Columns with inclusion patterns (empty when disabled)
//   - Files: Per-file outcomes in processing order
type Report struct {
	Config         config.RunConfig
	ExcludeColumns []string
	IncludeColumns []string
	Files          []FileResult
}

// Count returns the number of files with the given status.
func (r *Report) Count(status string) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Written returns the number of files written.
func (r *Report) Written() int { return r.Count(constants.StatusWritten) }

// Empty returns the number of files with no surviving rows.
func (r *Report) Empty() int { return r.Count(constants.StatusEmpty) }

// FailedCount returns the number of failed files.
func (r *Report) FailedCount() int { return r.Count(constants.StatusFailed) }

// Rows returns the total input and output row counts.
//
// Returns:
//   - int: Rows read across all files
//   - int: Rows kept across all files
func (r *Report) Rows() (int, int) {
	in, out := 0, 0
	for _, f := range r.Files {
		in += f.Stats.InputRows
		out += f.Stats.OutputRows
	}
	return in, out
}

// Warnings returns the per-file warnings, prefixed with the file name.
func (r *Report) Warnings() []string {
	var warnings []string
	for _, f := range r.Files {
		if f.Warning != "" {
			warnings = append(warnings, fmt.Sprintf("%s: %s", f.Name, f.Warning))
		}
	}
	return warnings
}

// Err converts failed files into an error for exit code handling.
//
// Returns:
//   - error: nil when no file failed; an *errors.ExitError with
//     ExitPartialFailure wrapping a *errors.PartialSuccessError when only some
//     files failed; an *errors.ExitError with ExitFailure when every file failed
func (r *Report) Err() error {
	var errs []error
	for _, f := range r.Files {
		if f.Failed() {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, f.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	succeeded := len(r.Files) - len(errs)
	if succeeded == 0 {
		return errors.NewExitError(errors.ExitFailure,
			fmt.Errorf("all %d spreadsheet(s) failed: %w", len(errs), stderrors.Join(errs...)))
	}
	return errors.NewExitError(errors.ExitPartialFailure, errors.NewPartialSuccessError(succeeded, len(errs), errs))
}
