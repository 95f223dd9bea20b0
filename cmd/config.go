package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/constants"
	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/verbose"
)

var (
	configShowFlag     bool
	configDefaultsFlag bool
	configInitFlag     bool
	configValidateFlag bool
	configPathFlag     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, create or validate settings",
	Long: `Show, create or validate the settings file.

The settings file is --settings when given, else .sheetfilter.yml in the
current directory when present, else settings.yml in the user configuration
directory.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowFlag, "show", false, "Show the effective settings")
	configCmd.Flags().BoolVar(&configDefaultsFlag, "defaults", false, "Show the built-in default settings")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create a commented settings template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate the settings file (rejects unknown fields)")
	configCmd.Flags().BoolVar(&configPathFlag, "path", false, "Print the settings file path")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates the settings template (./.sheetfilter.yml unless --settings is given)
//   - --validate: Validates the settings file for schema errors
//   - --path: Prints the settings file path
//   - --defaults: Displays the built-in default settings
//   - --show: Displays the effective settings
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configInitFlag {
		return createSettingsTemplate(cmd)
	}

	if configValidateFlag {
		return validateSettingsFile(cmd)
	}

	if configPathFlag {
		_, _ = fmt.Fprintln(out, resolveSettingsPath())
		return nil
	}

	if configDefaultsFlag {
		_, _ = fmt.Fprintln(out, "Default settings:")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprint(out, config.GetDefaultSettings())
		return nil
	}

	if configShowFlag {
		settings, path := loadSettings()
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Effective settings (%s):\n\n", path)
		_, _ = fmt.Fprint(out, string(data))
		return nil
	}

	return cmd.Help()
}

// validateSettingsFile validates the resolved settings file.
//
// Reports validation errors and warnings on stdout.
//
// Parameters:
//   - cmd: Cobra command instance
//
// Returns:
//   - error: Returns ExitError with ExitConfigError code on validation failure
func validateSettingsFile(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := resolveSettingsPath()

	result, err := config.ValidateSettingsPath(path)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	if result.HasErrors() {
		_, _ = fmt.Fprintf(out, "%s Settings validation failed for: %s\n\n", constants.IconError, path)

		// Use verbose errors when --verbose flag is set
		for _, e := range result.Errors {
			if verbose.IsEnabled() {
				_, _ = fmt.Fprintf(out, "  ERROR: %s\n", e.VerboseError())
			} else {
				_, _ = fmt.Fprintf(out, "  ERROR: %s\n", e.Error())
			}
		}

		if len(result.Warnings) > 0 {
			_, _ = fmt.Fprintln(out)
			for _, w := range result.Warnings {
				_, _ = fmt.Fprintf(out, "  WARNING: %s\n", w)
			}
		}
		_, _ = fmt.Fprintln(out)
		if !verbose.IsEnabled() {
			_, _ = fmt.Fprintf(out, "%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		verbose.Infof("Exit code %d (config error): settings validation failed for %s", errors.ExitConfigError, path)
		return errors.NewExitErrorf(errors.ExitConfigError, "settings validation failed for %s", path)
	}

	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(out, "%s Settings valid with warnings: %s\n\n", constants.IconWarn, path)
		for _, w := range result.Warnings {
			_, _ = fmt.Fprintf(out, "  WARNING: %s\n", w)
		}
		_, _ = fmt.Fprintln(out)
	} else {
		_, _ = fmt.Fprintf(out, "%s Settings valid: %s\n", constants.IconCheckmarkBox, path)
	}

	return nil
}

// createSettingsTemplate writes the commented settings template.
//
// The template goes to --settings when given, else ./.sheetfilter.yml.
// An existing file is never overwritten.
//
// Parameters:
//   - cmd: Cobra command instance
//
// Returns:
//   - error: Returns error if the file exists or cannot be created
func createSettingsTemplate(cmd *cobra.Command) error {
	path := settingsFlag
	if path == "" {
		path = config.LocalSettingsFile
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created settings template: %s\n", path)
	return nil
}
