// Package cmd implements the command-line interface for sheetfilter.
// It provides commands for filtering spreadsheets, creating empty pattern
// lists and managing the persisted settings.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/logging"
	"github.com/ajxudir/sheetfilter/pkg/verbose"
	"github.com/ajxudir/sheetfilter/pkg/warnings"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool
var settingsFlag string
var logFormatFlag string
var logFileFlag string
var noColorFlag bool

// stderr receives the event log, progress and errors. Tests replace it.
var stderr io.Writer = os.Stderr

// logger is the event logger built in PersistentPreRunE.
var logger = zerolog.Nop()

// logFile is the open --log-file, closed by Execute.
var logFile *os.File

var rootCmd = &cobra.Command{
	Use:   "sheetfilter",
	Short: "Filter spreadsheet rows with per-column wildcard lists",
	Long: `Filter rows out of .xlsx spreadsheets using per-column exclusion and
inclusion lists of shell-style wildcards, and write the surviving rows as
formatted filtered_<name> workbooks.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verboseFlag {
			verbose.Enable()
		} else {
			verbose.Disable()
		}
		// Debug traces and warnings share the event log's stream.
		verbose.SetWriter(stderr)
		_ = warnings.SetWarningWriter(stderr)
		if err := setupLogger(); err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}
		// Dev and prerelease warnings go above every command's output
		if !skipBuildChecksFlag {
			if msg := buildWarnings(); msg != "" {
				fmt.Fprint(stderr, msg)
				fmt.Fprintln(stderr)
			}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			writeVersion(cmd.OutOrStdout())
			return
		}
		_ = cmd.Help()
	},
}

// setupLogger builds the event logger from the global flags.
//
// Returns:
//   - error: When the log format is unknown or the log file cannot be opened
func setupLogger() error {
	opts := logging.Options{
		Format:  logFormatFlag,
		Verbose: verboseFlag,
		NoColor: noColorFlag || !isTerminal(stderr),
	}
	if logFileFlag != "" {
		f, err := logging.OpenFile(logFileFlag)
		if err != nil {
			return err
		}
		logFile = f
		opts.File = f
	}

	l, err := logging.New(stderr, opts)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// isTerminal reports whether w is a terminal. Colors are only used there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (some spreadsheets failed)
//   - 2: Complete failure
//   - 3: Configuration error or unusable directory
func Execute() {
	err := rootCmd.Execute()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if err == nil {
		return
	}

	errors.PrintErrorWithHints(stderr, []error{err}, verbose.IsEnabled())

	code := errors.GetExitCode(err)
	if partialErr, ok := errors.IsPartialSuccess(err); ok {
		verbose.Infof("Exit code %d: partial success - %d succeeded, %d failed", code, partialErr.Succeeded, partialErr.Failed)
	} else {
		verbose.Infof("Exit code %d: %v", code, err)
	}
	exitFunc(code)
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "", "Settings file (default ./.sheetfilter.yml or the user config directory)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", logging.FormatConsole, "Event log format: console, json")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Also append events to this file as JSON lines")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colors in the event log")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev and prerelease builds)")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	// Commands ordered logically: info → config → workflow (init-lists → run)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(runCmd)
}
