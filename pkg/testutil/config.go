// Package testutil provides shared test fixtures for sheetfilter packages:
// workspaces with pattern lists, run configurations and .xlsx workbooks.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajxudir/sheetfilter/pkg/config"
)

// Workspace is a temporary directory tree laid out like a sheetfilter run.
//
// Fields:
//   - Root: Temporary root directory
//   - Input: Spreadsheet input directory
//   - Output: Filtered output directory (not created)
//   - Exclude: Exclusion list directory
//   - Include: Inclusion list directory
type Workspace struct {
	Root    string
	Input   string
	Output  string
	Exclude string
	Include string
}

// NewWorkspace creates the input and pattern directories under t.TempDir().
//
// The output directory is left missing so runs exercise its creation.
//
// Parameters:
//   - t: Testing instance for helper marking and temp directory creation
//
// Returns:
//   - *Workspace: Workspace with absolute directory paths
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()

	root := t.TempDir()
	ws := &Workspace{
		Root:    root,
		Input:   filepath.Join(root, "input"),
		Output:  filepath.Join(root, "output"),
		Exclude: filepath.Join(root, "blacklists"),
		Include: filepath.Join(root, "whitelists"),
	}
	for _, dir := range []string{ws.Input, ws.Exclude, ws.Include} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	return ws
}

// WritePatterns writes <column>.txt with one pattern per line.
//
// Parameters:
//   - t: Testing instance for helper marking and failure reporting
//   - dir: Pattern directory
//   - column: Column name
//   - lines: Patterns; none writes an empty file
//
// Returns:
//   - string: Path of the written file
func WritePatterns(t *testing.T, dir, column string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, column+".txt")
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ConfigBuilder provides a fluent API for building test run configurations.
//
// Use this builder to construct RunConfig values for testing purposes
// without needing to set all required fields manually.
type ConfigBuilder struct {
	cfg config.RunConfig
}

// NewConfig creates a ConfigBuilder from the built-in default settings.
//
// Returns:
//   - *ConfigBuilder: New builder instance ready for method chaining
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: config.DefaultSettings().RunConfig()}
}

// ForWorkspace points every directory of the configuration at ws.
//
// Parameters:
//   - ws: Workspace created by NewWorkspace
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) ForWorkspace(ws *Workspace) *ConfigBuilder {
	b.cfg.InputDir = ws.Input
	b.cfg.OutputDir = ws.Output
	b.cfg.ExcludeDir = ws.Exclude
	b.cfg.IncludeDir = ws.Include
	return b
}

// WithFilters sets which pattern sets are applied.
//
// Parameters:
//   - exclude: Apply exclusion lists
//   - include: Apply inclusion lists
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithFilters(exclude, include bool) *ConfigBuilder {
	b.cfg.ExcludeEnabled = exclude
	b.cfg.IncludeEnabled = include
	return b
}

// WithFileFilter sets the input file name filter.
func (b *ConfigBuilder) WithFileFilter(filter string) *ConfigBuilder {
	b.cfg.FileFilter = filter
	return b
}

// WithOutputPrefix sets the output file name prefix.
func (b *ConfigBuilder) WithOutputPrefix(prefix string) *ConfigBuilder {
	b.cfg.OutputPrefix = prefix
	return b
}

// WithTable sets the table region name and style.
//
// Parameters:
//   - name: Table name
//   - style: Table style name
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithTable(name, style string) *ConfigBuilder {
	b.cfg.TableName = name
	b.cfg.TableStyle = style
	return b
}

// Build returns the built configuration.
//
// Returns:
//   - config.RunConfig: Copy of the built configuration
func (b *ConfigBuilder) Build() config.RunConfig {
	return b.cfg
}
