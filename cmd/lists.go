package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/sheetfilter/pkg/constants"
	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/lists"
	"github.com/ajxudir/sheetfilter/pkg/logging"
	"github.com/ajxudir/sheetfilter/pkg/output"
)

var (
	listsInputFlag        string
	listsExcludeDirFlag   string
	listsIncludeDirFlag   string
	listsFilesFlag        string
	listsOutputFormatFlag string
)

var listsCmd = &cobra.Command{
	Use:   "init-lists",
	Short: "Create empty pattern lists from the first spreadsheet's columns",
	Long: `Read the header of the first spreadsheet in the input directory and
create an empty <column>.txt for every column in both the exclusion and the
inclusion directory. Existing list files are never overwritten.`,
	RunE: runLists,
}

func init() {
	listsCmd.Flags().StringVar(&listsInputFlag, "input", "", "Directory containing the spreadsheets")
	listsCmd.Flags().StringVar(&listsExcludeDirFlag, "exclude-dir", "", "Directory of exclusion lists")
	listsCmd.Flags().StringVar(&listsIncludeDirFlag, "include-dir", "", "Directory of inclusion lists")
	listsCmd.Flags().StringVar(&listsFilesFlag, "files", "", "Comma-separated file name globs, !glob to skip")
	listsCmd.Flags().StringVarP(&listsOutputFormatFlag, "output-format", "o", string(output.FormatTable), "Report format: table, json, csv, xml")
}

// runLists executes the init-lists command.
//
// Directories not given on the command line come from the settings.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: ExitConfigError for an unknown format or unusable directory;
//     ExitFailure when the spreadsheet or a list file fails
func runLists(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(listsOutputFormatFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	settings, _ := loadSettings()
	cfg := settings.RunConfig()
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputDir = listsInputFlag
	}
	if flags.Changed("exclude-dir") {
		cfg.ExcludeDir = listsExcludeDirFlag
	}
	if flags.Changed("include-dir") {
		cfg.IncludeDir = listsIncludeDirFlag
	}
	if flags.Changed("files") {
		cfg.FileFilter = listsFilesFlag
	}

	result, err := lists.Generate(cfg.InputDir, cfg.ExcludeDir, cfg.IncludeDir, cfg.FileFilter,
		logging.Component(logger, "lists"))
	if err != nil {
		return err
	}
	return output.WriteListsResult(cmd.OutOrStdout(), format, buildListsResult(result))
}

// buildListsResult converts a generator result into the output model.
func buildListsResult(result *lists.Result) *output.ListsResult {
	out := &output.ListsResult{
		Summary: output.ListsSummary{
			Source:   result.Source,
			Columns:  len(result.Columns),
			Created:  result.Count(constants.StatusCreated),
			Existing: result.Count(constants.StatusExists),
			Skipped:  result.Count(constants.StatusSkipped),
		},
		Entries: make([]output.ListEntry, 0, len(result.Entries)),
	}
	for _, e := range result.Entries {
		out.Entries = append(out.Entries, output.ListEntry{
			Set:    e.Set,
			Column: e.Column,
			File:   e.Path,
			Status: e.Status,
		})
	}
	return out
}
