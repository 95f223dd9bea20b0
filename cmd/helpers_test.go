package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/sheetfilter/pkg/verbose"
	"github.com/ajxudir/sheetfilter/pkg/warnings"
)

// resetFlags restores every flag of every command to its default value.
//
// Cobra keeps parsed values and the Changed marker between executions, so
// each test starts from a clean command tree.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range []*cobra.Command{rootCmd, runCmd, listsCmd, configCmd, versionCmd} {
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
	}
}

// executeCmd runs the root command with args and captures its output.
//
// Build checks are skipped and a settings file inside t.TempDir() is used
// unless args name another one.
//
// Parameters:
//   - t: Testing instance
//   - args: Command line arguments
//
// Returns:
//   - string: Command stdout
//   - string: Event log, progress and warnings written to stderr
//   - error: Command error
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	oldStderr := stderr
	stderr = &errOut
	restoreWarnings := warnings.SetWarningWriter(&errOut)
	t.Cleanup(func() {
		stderr = oldStderr
		restoreWarnings()
		verbose.Disable()
		verbose.SetWriter(os.Stderr)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		resetFlags()
	})

	full := append([]string{"--skip-build-checks", "--settings", filepath.Join(t.TempDir(), "settings.yml")}, args...)
	rootCmd.SetArgs(full)
	rootCmd.SetOut(&out)

	err := ExecuteTest()
	return out.String(), errOut.String(), err
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
