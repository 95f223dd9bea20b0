package engine

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/filtering"
	"github.com/ajxudir/sheetfilter/pkg/patterns"
)

// Options carries the collaborators of a run.
//
// Fields:
//   - Logger: Run event logger; the zero value discards events
//   - Progress: Called after each file with the processed and total counts;
//     may be nil
type Options struct {
	Logger   zerolog.Logger
	Progress func(processed, total int)
}

// Run filters every qualifying spreadsheet of cfg.InputDir.
//
// It performs the following operations:
//   - Step 1: Validates cfg
//   - Step 2: Loads the pattern sets of the enabled filters; a disabled
//     filter's directory is never read
//   - Step 3: Lists the qualifying spreadsheets in name order
//   - Step 4: Creates cfg.OutputDir when missing
//   - Step 5: Processes every file with ProcessFile, reporting progress
//
// Per-file failures do not stop the run; they are recorded in the report
// and surface through Report.Err.
//
// Parameters:
//   - cfg: Run configuration
//   - opts: Logger and progress callback
//
// Returns:
//   - *Report: Outcome of the run, nil on error
//   - error: *errors.ExitError with ExitConfigError when the configuration,
//     a pattern directory or the input directory is unusable, or when the
//     output directory cannot be created
func Run(cfg config.RunConfig, opts Options) (*Report, error) {
	logger := opts.Logger

	if res := cfg.Validate(); res.HasErrors() {
		return nil, errors.NewExitError(errors.ExitConfigError, res.Err())
	}

	excl, incl, err := loadPatternSets(cfg, logger)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	report := &Report{
		Config:         cfg,
		ExcludeColumns: excl.Columns(),
		IncludeColumns: incl.Columns(),
	}

	files, err := filtering.ListSpreadsheets(cfg.InputDir, cfg.FileFilter)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}
	if len(files) == 0 {
		logger.Info().Str("dir", cfg.InputDir).Msg("No spreadsheets found")
		return report, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.NewExitError(errors.ExitConfigError,
			fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err))
	}

	logger.Info().Int("files", len(files)).Msgf("Processing %d spreadsheet(s)", len(files))
	for i, path := range files {
		report.Files = append(report.Files, ProcessFile(path, cfg, excl, incl, logger))
		if opts.Progress != nil {
			opts.Progress(i+1, len(files))
		}
	}

	in, out := report.Rows()
	logger.Info().
		Int("written", report.Written()).
		Int("empty", report.Empty()).
		Int("failed", report.FailedCount()).
		Int("input_rows", in).
		Int("output_rows", out).
		Msg("Processing complete")
	return report, nil
}

// loadPatternSets loads the exclusion and inclusion sets of the enabled filters.
//
// Parameters:
//   - cfg: Run configuration
//   - logger: Run logger
//
// Returns:
//   - patterns.Set: Exclusion set, empty when exclusion is disabled
//   - patterns.Set: Inclusion set, empty when inclusion is disabled
//   - error: When an enabled set's directory cannot be read
func loadPatternSets(cfg config.RunConfig, logger zerolog.Logger) (patterns.Set, patterns.Set, error) {
	var excl, incl patterns.Set
	var err error

	if cfg.ExcludeEnabled {
		if excl, err = patterns.LoadDir(cfg.ExcludeDir); err != nil {
			return patterns.Set{}, patterns.Set{}, err
		}
		logger.Info().Strs("columns", excl.Columns()).Msgf("Loaded exclusion lists for %d column(s)", excl.Len())
	}

	if cfg.IncludeEnabled {
		if incl, err = patterns.LoadDir(cfg.IncludeDir); err != nil {
			return patterns.Set{}, patterns.Set{}, err
		}
		logger.Info().Strs("columns", incl.Columns()).Msgf("Loaded inclusion lists for %d column(s)", incl.Len())
	}

	return excl, incl, nil
}
