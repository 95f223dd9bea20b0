// Package config handles settings loading, validation and persistence for
// sheetfilter, and builds the immutable RunConfig a batch run works from.
package config

import (
	"path/filepath"
)

// Settings is the persisted configuration of sheetfilter.
//
// Settings are read from a YAML file; keys missing from the file keep their
// default values. The enable flags are the values the operator toggles most
// often and are saved back by 'run --save'.
//
// Fields:
//   - Filters: Which pattern sets are applied
//   - Directories: Input, output and pattern directories
//   - Input: Input file selection
//   - Output: Output file naming and formatting
type Settings struct {
	Filters     FiltersCfg     `yaml:"filters"`
	Directories DirectoriesCfg `yaml:"directories"`
	Input       InputCfg       `yaml:"input"`
	Output      OutputCfg      `yaml:"output"`
}

// FiltersCfg holds the two persisted enable flags.
type FiltersCfg struct {
	// Exclude enables exclusion (blacklist) filtering.
	Exclude bool `yaml:"exclude"`

	// Include enables inclusion (whitelist) filtering.
	Include bool `yaml:"include"`
}

// DirectoriesCfg holds the directories a run works with.
//
// Relative paths are resolved against the working directory of the process.
type DirectoriesCfg struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Exclude string `yaml:"exclude"`
	Include string `yaml:"include"`
}

// InputCfg controls which spreadsheets in the input directory are processed.
type InputCfg struct {
	// Files is a comma-separated list of file name globs; "!" marks an exclusion.
	Files string `yaml:"files"`
}

// OutputCfg controls output file naming and the table region.
type OutputCfg struct {
	Prefix     string `yaml:"prefix"`
	TableName  string `yaml:"table_name"`
	TableStyle string `yaml:"table_style"`
}

// RunConfig is the immutable configuration of one batch run.
//
// It is built once, from Settings plus command-line overrides, and passed by
// value into the engine.
//
// Fields:
//   - InputDir: Directory holding the .xlsx files to filter
//   - OutputDir: Directory receiving filtered files
//   - ExcludeDir: Directory of exclusion pattern files
//   - IncludeDir: Directory of inclusion pattern files
//   - ExcludeEnabled: Apply exclusion patterns
//   - IncludeEnabled: Apply inclusion patterns
//   - FileFilter: Comma-separated input file name globs
//   - OutputPrefix: Prefix of output file names
//   - TableName: Name of the table region in output files
//   - TableStyle: Style of the table region in output files
type RunConfig struct {
	InputDir       string
	OutputDir      string
	ExcludeDir     string
	IncludeDir     string
	ExcludeEnabled bool
	IncludeEnabled bool
	FileFilter     string
	OutputPrefix   string
	TableName      string
	TableStyle     string
}

// RunConfig builds the RunConfig described by the settings.
//
// Returns:
//   - RunConfig: Run configuration with every field taken from s
func (s *Settings) RunConfig() RunConfig {
	return RunConfig{
		InputDir:       s.Directories.Input,
		OutputDir:      s.Directories.Output,
		ExcludeDir:     s.Directories.Exclude,
		IncludeDir:     s.Directories.Include,
		ExcludeEnabled: s.Filters.Exclude,
		IncludeEnabled: s.Filters.Include,
		FileFilter:     s.Input.Files,
		OutputPrefix:   s.Output.Prefix,
		TableName:      s.Output.TableName,
		TableStyle:     s.Output.TableStyle,
	}
}

// Apply copies the run's enable flags and directories back into the settings.
//
// This is used by 'run --save' so the next run starts from the same choices.
//
// Parameters:
//   - cfg: Run configuration to persist
func (s *Settings) Apply(cfg RunConfig) {
	s.Filters.Exclude = cfg.ExcludeEnabled
	s.Filters.Include = cfg.IncludeEnabled
	s.Directories.Input = cfg.InputDir
	s.Directories.Output = cfg.OutputDir
	s.Directories.Exclude = cfg.ExcludeDir
	s.Directories.Include = cfg.IncludeDir
}

// OutputPath returns the output file path for an input file.
//
// The output keeps the input's base name with OutputPrefix in front, placed
// in OutputDir: "input/orders.xlsx" → "output/filtered_orders.xlsx".
//
// Parameters:
//   - inputPath: Path of the input spreadsheet
//
// Returns:
//   - string: Path of the filtered output file
func (c RunConfig) OutputPath(inputPath string) string {
	return filepath.Join(c.OutputDir, c.OutputPrefix+filepath.Base(inputPath))
}
