// Package lists creates empty pattern list files for sheetfilter.
//
// The generator reads the header of the first qualifying spreadsheet and
// creates an empty <column>.txt in both the exclusion and the inclusion
// directory for every column. Existing files are never touched, so the
// generator is safe to run repeatedly.
package lists

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ajxudir/sheetfilter/pkg/constants"
	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/filtering"
	"github.com/ajxudir/sheetfilter/pkg/patterns"
	"github.com/ajxudir/sheetfilter/pkg/sheet"
)

// Entry records what happened to one list file.
//
// Fields:
//   - Set: constants.SetExclude or constants.SetInclude
//   - Column: Column name
//   - Path: List file path; empty when the column was skipped
//   - Status: constants.StatusCreated, StatusExists or StatusSkipped
type Entry struct {
	Set    string
	Column string
	Path   string
	Status string
}

// Result is the outcome of Generate.
//
// Fields:
//   - Source: Spreadsheet the columns were read from; empty when none was found
//   - Columns: Header columns of Source in sheet order
//   - Entries: One entry per column and set, exclusion entries first
type Result struct {
	Source  string
	Columns []string
	Entries []Entry
}

// Count returns the number of entries with the given status.
func (r *Result) Count(status string) int {
	n := 0
	for _, e := range r.Entries {
		if e.Status == status {
			n++
		}
	}
	return n
}

// Generate creates empty list files for the columns of the first spreadsheet.
//
// It performs the following operations:
//   - Step 1: Lists qualifying spreadsheets of inputDir in name order
//   - Step 2: Returns an empty Result when there are none
//   - Step 3: Loads the header of the first file
//   - Step 4: Creates excludeDir and includeDir when missing
//   - Step 5: Creates an empty <column>.txt per column in each directory,
//     leaving existing files alone and skipping columns that cannot be file names
//
// Parameters:
//   - inputDir: Spreadsheet directory
//   - excludeDir: Exclusion list directory
//   - includeDir: Inclusion list directory
//   - filter: Input file name filter (see filtering.ParseFileFilterPatterns)
//   - logger: Event logger
//
// Returns:
//   - *Result: Outcome per column and set
//   - error: *errors.ExitError with ExitConfigError when a directory is
//     unusable, ExitFailure when the spreadsheet or a list file fails
func Generate(inputDir, excludeDir, includeDir, filter string, logger zerolog.Logger) (*Result, error) {
	files, err := filtering.ListSpreadsheets(inputDir, filter)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	result := &Result{}
	if len(files) == 0 {
		logger.Info().Str("dir", inputDir).Msg("No spreadsheet files found")
		return result, nil
	}

	result.Source = files[0]
	table, err := sheet.Load(files[0])
	if err != nil {
		return nil, errors.NewExitError(errors.ExitFailure, err)
	}
	result.Columns = append([]string(nil), table.Columns...)
	logger.Info().Str("file", filepath.Base(files[0])).Int("columns", len(table.Columns)).
		Msgf("Reading columns from %s", filepath.Base(files[0]))

	targets := []struct {
		set string
		dir string
	}{
		{constants.SetExclude, excludeDir},
		{constants.SetInclude, includeDir},
	}
	for _, target := range targets {
		if err := os.MkdirAll(target.dir, 0o755); err != nil {
			return nil, errors.NewExitError(errors.ExitConfigError,
				fmt.Errorf("failed to create %s list directory %s: %w", target.set, target.dir, err))
		}
		for _, column := range table.Columns {
			entry, err := createList(target.set, target.dir, column, logger)
			if err != nil {
				return nil, errors.NewExitError(errors.ExitFailure, err)
			}
			result.Entries = append(result.Entries, entry)
		}
	}

	logger.Info().
		Int("created", result.Count(constants.StatusCreated)).
		Int("existing", result.Count(constants.StatusExists)).
		Int("skipped", result.Count(constants.StatusSkipped)).
		Msg("Empty list files created where they did not exist")
	return result, nil
}

// createList creates one empty list file without overwriting.
//
// Parameters:
//   - set: Pattern set name for reporting
//   - dir: Target directory
//   - column: Column name
//   - logger: Event logger
//
// Returns:
//   - Entry: What happened to the file
//   - error: When the file cannot be created for a reason other than existing
func createList(set, dir, column string, logger zerolog.Logger) (Entry, error) {
	entry := Entry{Set: set, Column: column}
	if !ValidColumnFileName(column) {
		logger.Warn().Str("column", column).Msgf("Column %q cannot be used as a file name, skipping", column)
		entry.Status = constants.StatusSkipped
		return entry, nil
	}

	entry.Path = filepath.Join(dir, column+patterns.FileExtension)
	f, err := os.OpenFile(entry.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if stderrors.Is(err, fs.ErrExist) {
			logger.Info().Str("column", column).Msgf("%s list for column %s already exists, skipping creation", set, column)
			entry.Status = constants.StatusExists
			return entry, nil
		}
		return entry, fmt.Errorf("failed to create list file %s: %w", entry.Path, err)
	}
	if err := f.Close(); err != nil {
		return entry, fmt.Errorf("failed to create list file %s: %w", entry.Path, err)
	}

	logger.Debug().Str("path", entry.Path).Msg("Created empty list file")
	entry.Status = constants.StatusCreated
	return entry, nil
}

// ValidColumnFileName reports whether a column name can be used as a list
// file name.
//
// Names that are empty, "." or "..", or contain a path separator or NUL are
// rejected.
func ValidColumnFileName(column string) bool {
	if column == "" || column == "." || column == ".." {
		return false
	}
	return !strings.ContainsAny(column, "/\\\x00")
}
