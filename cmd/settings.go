package cmd

import (
	"os"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/warnings"
)

// resolveSettingsPath returns the settings file the current command uses.
//
// Returns:
//   - string: --settings, ./.sheetfilter.yml when present, or the XDG path
func resolveSettingsPath() string {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	return config.ResolveSettingsPath(settingsFlag, workDir)
}

// loadSettings loads the persisted settings for a command.
//
// An unreadable or malformed settings file does not stop the command: a
// warning is printed and the built-in defaults are used.
//
// Returns:
//   - *config.Settings: Loaded settings or defaults
//   - string: Settings file path, used by --save
func loadSettings() (*config.Settings, string) {
	path := resolveSettingsPath()
	s, _, err := config.LoadSettings(path)
	if err != nil {
		warnings.SettingsFallback(path, err)
		return config.DefaultSettings(), path
	}
	return s, path
}
