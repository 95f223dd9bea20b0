package engine

import (
	stderrors "errors"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/constants"
	"github.com/ajxudir/sheetfilter/pkg/patterns"
	"github.com/ajxudir/sheetfilter/pkg/sheet"
	"github.com/ajxudir/sheetfilter/pkg/verbose"
)

// ProcessFile filters one spreadsheet and writes the result.
//
// It performs the following operations:
//   - Step 1: Loads the first worksheet of path
//   - Step 2: Runs FilterTable with the enabled pattern sets
//   - Step 3: Stops with StatusEmpty when no row survives; nothing is written
//   - Step 4: Writes the surviving rows to cfg.OutputPath(path)
//
// A workbook written without its table region still counts as written; the
// problem is kept in FileResult.Warning. Every other failure yields
// StatusFailed and the error in FileResult.Err.
//
// Parameters:
//   - path: Input spreadsheet path
//   - cfg: Run configuration
//   - excl: Exclusion pattern set
//   - incl: Inclusion pattern set
//   - logger: Run logger; a "file" field is added
//
// Returns:
//   - FileResult: Outcome of this file
func ProcessFile(path string, cfg config.RunConfig, excl, incl patterns.Set, logger zerolog.Logger) FileResult {
	name := filepath.Base(path)
	result := FileResult{Name: name, Path: path}
	log := logger.With().Str("file", name).Logger()

	log.Info().Msgf("Found file %s, reading now", name)
	table, err := sheet.Load(path)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read spreadsheet")
		result.Status = constants.StatusFailed
		result.Err = err
		return result
	}
	verbose.Printf("Loaded %s: %d column(s), %d row(s)", name, len(table.Columns), table.Len())

	flags := Flags{Exclude: cfg.ExcludeEnabled, Include: cfg.IncludeEnabled}
	result.Stats = FilterTable(table, excl, incl, flags, log)

	if table.Len() == 0 {
		log.Info().Msg("No rows remaining after filtering")
		result.Status = constants.StatusEmpty
		return result
	}

	out := cfg.OutputPath(path)
	log.Info().Str("output", out).Msg("Writing filtered data to workbook")
	opts := sheet.WriteOptions{TableName: cfg.TableName, TableStyle: cfg.TableStyle}
	if err := sheet.Write(out, table, opts); err != nil {
		if !stderrors.Is(err, sheet.ErrTableRegion) {
			log.Error().Err(err).Msg("Failed to write spreadsheet")
			result.Status = constants.StatusFailed
			result.Err = err
			return result
		}
		log.Warn().Err(err).Msg("Workbook written without table region")
		result.Warning = err.Error()
	}

	result.Status = constants.StatusWritten
	result.OutputPath = out
	return result
}
