package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultSettingsYAML string

//go:embed template.yml
var templateSettingsYAML string

// DefaultSettings returns the built-in settings.
//
// This unmarshals the embedded default.yml file into a Settings structure.
// If unmarshaling fails, the hard-coded fallback values are returned so the
// tool always has a usable configuration.
//
// Returns:
//   - *Settings: the default settings
func DefaultSettings() *Settings {
	var s Settings
	if err := yaml.Unmarshal([]byte(defaultSettingsYAML), &s); err == nil {
		return &s
	}
	return &Settings{
		Filters:     FiltersCfg{Exclude: true, Include: true},
		Directories: DirectoriesCfg{Input: "input", Output: "output", Exclude: "blacklists", Include: "whitelists"},
		Input:       InputCfg{Files: "!~$*"},
		Output:      OutputCfg{Prefix: "filtered_", TableName: "Table1", TableStyle: "TableStyleMedium9"},
	}
}

// GetDefaultSettings returns the embedded default settings YAML.
//
// Returns:
//   - string: the default settings as YAML
func GetDefaultSettings() string {
	return defaultSettingsYAML
}

// GetTemplateSettings returns the commented settings template written by
// 'config --init'.
//
// Returns:
//   - string: the template settings as YAML
func GetTemplateSettings() string {
	return templateSettingsYAML
}
