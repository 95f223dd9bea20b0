package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/engine"
	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/logging"
	"github.com/ajxudir/sheetfilter/pkg/output"
	"github.com/ajxudir/sheetfilter/pkg/verbose"
	"github.com/ajxudir/sheetfilter/pkg/warnings"
)

var (
	runInputFlag        string
	runOutputFlag       string
	runExcludeDirFlag   string
	runIncludeDirFlag   string
	runExcludeFlag      bool
	runNoExcludeFlag    bool
	runIncludeFlag      bool
	runNoIncludeFlag    bool
	runFilesFlag        string
	runPrefixFlag       string
	runOutputFormatFlag string
	runNoProgressFlag   bool
	runSaveFlag         bool
)

// runEngineFunc is replaceable in tests.
var runEngineFunc = engine.Run

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Filter every spreadsheet of the input directory",
	Long: `Filter every .xlsx file of the input directory.

Rows with formula-looking text are always dropped. With exclusion enabled,
rows whose value in a listed column matches any pattern of <column>.txt in
the exclusion directory are dropped. With inclusion enabled, only rows whose
value matches at least one pattern of the inclusion list are kept. Surviving
rows are written to filtered_<name> in the output directory.

Flags not given fall back to the persisted settings.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInputFlag, "input", "", "Directory containing the spreadsheets")
	runCmd.Flags().StringVar(&runOutputFlag, "output", "", "Directory for filtered spreadsheets")
	runCmd.Flags().StringVar(&runExcludeDirFlag, "exclude-dir", "", "Directory of exclusion lists (<column>.txt)")
	runCmd.Flags().StringVar(&runIncludeDirFlag, "include-dir", "", "Directory of inclusion lists (<column>.txt)")
	runCmd.Flags().BoolVar(&runExcludeFlag, "exclude", false, "Apply exclusion lists")
	runCmd.Flags().BoolVar(&runNoExcludeFlag, "no-exclude", false, "Do not apply exclusion lists")
	runCmd.Flags().BoolVar(&runIncludeFlag, "include", false, "Apply inclusion lists")
	runCmd.Flags().BoolVar(&runNoIncludeFlag, "no-include", false, "Do not apply inclusion lists")
	runCmd.Flags().StringVar(&runFilesFlag, "files", "", "Comma-separated file name globs, !glob to skip (default from settings: !~$*)")
	runCmd.Flags().StringVar(&runPrefixFlag, "prefix", "", "Output file name prefix (default from settings: filtered_)")
	runCmd.Flags().StringVarP(&runOutputFormatFlag, "output-format", "o", string(output.FormatTable), "Report format: table, json, csv, xml")
	runCmd.Flags().BoolVar(&runNoProgressFlag, "no-progress", false, "Do not show the progress line")
	runCmd.Flags().BoolVar(&runSaveFlag, "save", false, "Persist the effective filter switches and directories")

	runCmd.MarkFlagsMutuallyExclusive("exclude", "no-exclude")
	runCmd.MarkFlagsMutuallyExclusive("include", "no-include")
}

// runRun executes the run command.
//
// It performs the following operations:
//   - Step 1: Loads settings and applies the command line flags on top
//   - Step 2: Validates the run configuration and prints its warnings
//   - Step 3: Persists the effective settings when --save is given
//   - Step 4: Runs the engine with a progress line on stderr
//   - Step 5: Prints the report to stdout
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: ExitConfigError for unusable settings or directories; the
//     report's error when some or all spreadsheets failed
func runRun(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(runOutputFormatFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	settings, settingsPath := loadSettings()
	cfg := settings.RunConfig()
	applyRunFlags(cmd, &cfg)

	result := cfg.Validate()
	if result.HasErrors() {
		msg := result.ErrorMessages()
		if verbose.IsEnabled() {
			msg = result.VerboseErrorMessages()
		}
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("%s", msg))
	}
	warnings.ValidationWarnings(result.Warnings)

	if runSaveFlag {
		settings.Apply(cfg)
		if err := config.SaveSettings(settingsPath, settings); err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}
		logger.Info().Str("path", settingsPath).Msg("Settings saved")
	}

	progress := output.NewProgress(stderr, 0, "Filtering spreadsheets")
	progress.SetEnabled(!runNoProgressFlag && !output.IsStructuredFormat(format))
	opts := engine.Options{
		Logger:   logging.Component(logger, "engine"),
		Progress: progress.Update,
	}

	done := logging.LogOperationStart(logger, "run")
	report, err := runEngineFunc(cfg, opts)
	done()
	if err != nil {
		progress.Clear()
		return err
	}
	progress.Done()

	if err := output.WriteRunResult(cmd.OutOrStdout(), format, buildRunResult(report)); err != nil {
		return err
	}
	return report.Err()
}

// applyRunFlags overrides cfg with the flags given on the command line.
//
// Parameters:
//   - cmd: Cobra command whose flags were parsed
//   - cfg: Configuration loaded from settings, modified in place
func applyRunFlags(cmd *cobra.Command, cfg *config.RunConfig) {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputDir = runInputFlag
	}
	if flags.Changed("output") {
		cfg.OutputDir = runOutputFlag
	}
	if flags.Changed("exclude-dir") {
		cfg.ExcludeDir = runExcludeDirFlag
	}
	if flags.Changed("include-dir") {
		cfg.IncludeDir = runIncludeDirFlag
	}
	if flags.Changed("exclude") {
		cfg.ExcludeEnabled = runExcludeFlag
	}
	if flags.Changed("no-exclude") {
		cfg.ExcludeEnabled = !runNoExcludeFlag
	}
	if flags.Changed("include") {
		cfg.IncludeEnabled = runIncludeFlag
	}
	if flags.Changed("no-include") {
		cfg.IncludeEnabled = !runNoIncludeFlag
	}
	if flags.Changed("files") {
		cfg.FileFilter = runFilesFlag
	}
	if flags.Changed("prefix") {
		cfg.OutputPrefix = runPrefixFlag
	}
}

// buildRunResult converts an engine report into the output model.
//
// Parameters:
//   - report: Engine report
//
// Returns:
//   - *output.RunResult: Report ready for WriteRunResult
func buildRunResult(report *engine.Report) *output.RunResult {
	in, out := report.Rows()
	result := &output.RunResult{
		Summary: output.RunSummary{
			InputDir:       report.Config.InputDir,
			OutputDir:      report.Config.OutputDir,
			ExcludeEnabled: report.Config.ExcludeEnabled,
			IncludeEnabled: report.Config.IncludeEnabled,
			ExcludeColumns: len(report.ExcludeColumns),
			IncludeColumns: len(report.IncludeColumns),
			TotalFiles:     len(report.Files),
			WrittenFiles:   report.Written(),
			EmptyFiles:     report.Empty(),
			FailedFiles:    report.FailedCount(),
			InputRows:      in,
			OutputRows:     out,
		},
		Files:    make([]output.FileEntry, 0, len(report.Files)),
		Warnings: report.Warnings(),
	}

	for _, f := range report.Files {
		entry := output.FileEntry{
			File:            f.Name,
			Status:          f.Status,
			InputRows:       f.Stats.InputRows,
			FormulaRows:     f.Stats.FormulaRows,
			ExcludedRows:    f.Stats.ExcludedRows,
			NotIncludedRows: f.Stats.NotIncludedRows,
			OutputRows:      f.Stats.OutputRows,
			Output:          f.OutputPath,
			Warning:         f.Warning,
		}
		if f.Err != nil {
			entry.Error = f.Err.Error()
		}
		result.Files = append(result.Files, entry)
	}
	return result
}
