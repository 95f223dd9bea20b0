package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ajxudir/sheetfilter/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// LocalSettingsFile is the settings file looked up in the working directory.
const LocalSettingsFile = ".sheetfilter.yml"

// DefaultMaxSettingsFileSize is the largest settings file that will be read.
const DefaultMaxSettingsFileSize int64 = 1 << 20

// DefaultSettingsPath returns the per-user settings file location.
//
// Returns:
//   - string: $XDG_CONFIG_HOME/sheetfilter/settings.yml
func DefaultSettingsPath() string {
	return filepath.Join(xdg.ConfigHome, "sheetfilter", "settings.yml")
}

// ResolveSettingsPath picks the settings file a command works with.
//
// It performs the following operations:
//   - Returns explicitPath when one was given (--settings)
//   - Returns .sheetfilter.yml in workDir when that file exists
//   - Otherwise returns the per-user XDG settings path
//
// The returned path does not have to exist; LoadSettings falls back to the
// built-in defaults and SaveSettings creates it.
//
// Parameters:
//   - explicitPath: path given on the command line, or empty
//   - workDir: working directory to search for the local settings file
//
// Returns:
//   - string: the settings file path
func ResolveSettingsPath(explicitPath, workDir string) string {
	if explicitPath != "" {
		return explicitPath
	}
	local := filepath.Join(workDir, LocalSettingsFile)
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		verbose.Infof("Found local settings: %s", local)
		return local
	}
	return DefaultSettingsPath()
}

// LoadSettings loads settings from path.
//
// Keys missing from the file keep their default values. A missing file is
// not an error: the built-in defaults are returned and loaded is false.
//
// Parameters:
//   - path: settings file path, or empty to use the defaults
//
// Returns:
//   - *Settings: the loaded settings
//   - bool: true if the settings came from the file
//   - error: error if the file cannot be read or is not valid YAML
func LoadSettings(path string) (*Settings, bool, error) {
	if path == "" {
		verbose.SettingsLoaded("")
		return DefaultSettings(), false, nil
	}

	data, err := readSettingsFile(path)
	if os.IsNotExist(err) {
		verbose.Infof("Settings file %s not found", path)
		verbose.SettingsLoaded("")
		return DefaultSettings(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read settings file: %w", err)
	}

	s, err := loadSettingsData(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	verbose.SettingsLoaded(path)
	return s, true, nil
}

// readSettingsFile reads path after checking it against the size limit.
func readSettingsFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxSettingsFileSize {
		return nil, fmt.Errorf("settings file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxSettingsFileSize)
	}
	return os.ReadFile(path)
}

// loadSettingsData unmarshals data over a copy of the defaults.
//
// Parameters:
//   - data: YAML settings data as bytes
//
// Returns:
//   - *Settings: the parsed settings
//   - error: error if YAML is invalid or malformed
func loadSettingsData(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return s, nil
}

// ValidateSettingsPath reads a settings file and validates it strictly.
//
// Parameters:
//   - path: path to the settings file
//
// Returns:
//   - *ValidationResult: unknown fields, type errors and invalid values
//   - error: error if the file is missing, unreadable or too large
func ValidateSettingsPath(path string) (*ValidationResult, error) {
	data, err := readSettingsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file '%s': %w", path, err)
	}
	return ValidateSettingsFile(data), nil
}

// SaveSettings writes s to path as YAML, creating parent directories.
//
// Parameters:
//   - path: destination settings file
//   - s: settings to write
//
// Returns:
//   - error: error if the directory cannot be created or the file cannot be written
func SaveSettings(path string, s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	verbose.Printf("Settings saved to: %s", path)
	return nil
}

// WriteTemplate writes the commented settings template to path.
//
// The file must not exist yet.
//
// Parameters:
//   - path: destination settings file
//
// Returns:
//   - error: error if the file exists or cannot be written
func WriteTemplate(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("settings file %s already exists", path)
		}
		return fmt.Errorf("failed to create settings file %s: %w", path, err)
	}
	if _, err := f.WriteString(GetTemplateSettings()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return f.Close()
}
