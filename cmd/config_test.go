package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/errors"
)

// TestConfigCommand_Init tests template creation.
//
// It verifies:
//   - The template is written to --settings
//   - A second --init fails instead of overwriting
func TestConfigCommand_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")

	out, _, err := executeCmd(t, "--settings", path, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created settings template: "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.GetTemplateSettings(), string(data))

	_, _, err = executeCmd(t, "--settings", path, "config", "--init")
	assert.ErrorContains(t, err, "already exists")
}

// TestConfigCommand_InitLocal tests the default template location.
func TestConfigCommand_InitLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	resetFlags()
	rootCmd.SetArgs([]string{"--skip-build-checks", "config", "--init"})
	defer rootCmd.SetArgs(nil)
	require.NoError(t, ExecuteTest())

	assert.FileExists(t, filepath.Join(dir, config.LocalSettingsFile))
}

// TestConfigCommand_Validate tests settings validation.
//
// It verifies:
//   - A valid file passes
//   - An unknown field fails with ExitConfigError
//   - A missing file fails with ExitConfigError
func TestConfigCommand_Validate(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yml")
	require.NoError(t, os.WriteFile(valid, []byte("filters:\n  exclude: false\n"), 0o644))
	out, _, err := executeCmd(t, "--settings", valid, "config", "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings valid: "+valid)

	typo := filepath.Join(dir, "typo.yml")
	require.NoError(t, os.WriteFile(typo, []byte("filters:\n  blacklist: true\n"), 0o644))
	out, _, err = executeCmd(t, "--settings", typo, "config", "--validate")
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Contains(t, out, "Settings validation failed for: "+typo)
	assert.Contains(t, out, "blacklist")

	_, _, err = executeCmd(t, "--settings", filepath.Join(dir, "missing.yml"), "config", "--validate")
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
}

// TestConfigCommand_Show tests --show, --defaults and --path.
func TestConfigCommand_Show(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	require.NoError(t, os.WriteFile(path, []byte("directories:\n  input: sheets\n"), 0o644))

	out, _, err := executeCmd(t, "--settings", path, "config", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "Effective settings ("+path+")")
	assert.Contains(t, out, "input: sheets")
	assert.Contains(t, out, "output: output")

	out, _, err = executeCmd(t, "--settings", path, "config", "--path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, _, err = executeCmd(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "Default settings:")
	assert.Contains(t, out, "table_style: TableStyleMedium9")
}
