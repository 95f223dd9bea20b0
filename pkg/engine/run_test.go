package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/sheetfilter/pkg/config"
	"github.com/ajxudir/sheetfilter/pkg/constants"
	"github.com/ajxudir/sheetfilter/pkg/errors"
	"github.com/ajxudir/sheetfilter/pkg/patterns"
	"github.com/ajxudir/sheetfilter/pkg/testutil"
)

// seedOrders writes a typical input workbook and pattern lists.
func seedOrders(t *testing.T, ws *testutil.Workspace) {
	t.Helper()
	testutil.NewWorkbook("Name", "Status", "Region").
		Row("Ann", "active", "EU").
		Row("Bob", "cancelled", "EU").
		Row("=SUM(A1)", "active", "EU").
		Row("Cid", "active", "US").
		Save(t, filepath.Join(ws.Input, "orders.xlsx"))
	testutil.WritePatterns(t, ws.Exclude, "Status", "cancel*")
	testutil.WritePatterns(t, ws.Include, "Region", "EU")
}

// TestRun tests a complete run over one workbook.
//
// It verifies:
//   - The output directory is created
//   - Only surviving rows are written, header first
//   - The report carries stats and loaded columns
//   - Progress is reported once per file
//   - Events are logged
func TestRun(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	seedOrders(t, ws)
	cfg := testutil.NewConfig().ForWorkspace(ws).Build()

	var progress [][2]int
	var logs bytes.Buffer
	report, err := Run(cfg, Options{
		Logger:   zerolog.New(&logs),
		Progress: func(done, total int) { progress = append(progress, [2]int{done, total}) },
	})
	require.NoError(t, err)
	require.NoError(t, report.Err())

	out := filepath.Join(ws.Output, "filtered_orders.xlsx")
	assert.Equal(t, [][]string{{"Name", "Status", "Region"}, {"Ann", "active", "EU"}}, testutil.ReadRows(t, out))

	require.Len(t, report.Files, 1)
	f := report.Files[0]
	assert.Equal(t, constants.StatusWritten, f.Status)
	assert.Equal(t, out, f.OutputPath)
	assert.Equal(t, Stats{InputRows: 4, FormulaRows: 1, ExcludedRows: 1, NotIncludedRows: 1, OutputRows: 1}, f.Stats)
	assert.Equal(t, []string{"Status"}, report.ExcludeColumns)
	assert.Equal(t, []string{"Region"}, report.IncludeColumns)
	assert.Equal(t, [][2]int{{1, 1}}, progress)

	assert.Contains(t, logs.String(), "Found file orders.xlsx")
	assert.Contains(t, logs.String(), "Processing complete")
}

// TestRun_FiltersDisabled tests that disabled lists leave rows untouched
// and their directories unread.
func TestRun_FiltersDisabled(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	seedOrders(t, ws)
	cfg := testutil.NewConfig().ForWorkspace(ws).WithFilters(false, false).Build()
	cfg.ExcludeDir = filepath.Join(ws.Root, "missing")

	report, err := Run(cfg, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Files[0].Stats.OutputRows)
	assert.Empty(t, report.ExcludeColumns)
	assert.Empty(t, report.IncludeColumns)
}

// TestRun_PerFileIsolation tests that one bad file does not stop the run.
//
// It verifies:
//   - Files are processed in name order
//   - A corrupt file is Failed, an all-filtered file is Empty with no output
//   - Report.Err yields a partial failure
func TestRun_PerFileIsolation(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	seedOrders(t, ws)
	require.NoError(t, os.WriteFile(filepath.Join(ws.Input, "broken.xlsx"), []byte("not a zip"), 0o644))
	testutil.NewWorkbook("Name", "Status").
		Row("Eve", "cancelled").
		Save(t, filepath.Join(ws.Input, "cancelled.xlsx"))
	testutil.NewWorkbook("Name").Row("x").Save(t, filepath.Join(ws.Input, "~$orders.xlsx"))
	require.NoError(t, os.WriteFile(filepath.Join(ws.Input, "notes.txt"), []byte("x"), 0o644))

	cfg := testutil.NewConfig().ForWorkspace(ws).WithFilters(true, false).Build()
	report, err := Run(cfg, Options{})
	require.NoError(t, err)

	require.Len(t, report.Files, 3)
	assert.Equal(t, "broken.xlsx", report.Files[0].Name)
	assert.Equal(t, constants.StatusFailed, report.Files[0].Status)
	assert.Error(t, report.Files[0].Err)
	assert.Equal(t, "cancelled.xlsx", report.Files[1].Name)
	assert.Equal(t, constants.StatusEmpty, report.Files[1].Status)
	assert.Equal(t, constants.StatusWritten, report.Files[2].Status)

	assert.NoFileExists(t, filepath.Join(ws.Output, "filtered_cancelled.xlsx"))
	assert.FileExists(t, filepath.Join(ws.Output, "filtered_orders.xlsx"))

	assert.Equal(t, 1, report.Written())
	assert.Equal(t, 1, report.Empty())
	assert.Equal(t, 1, report.FailedCount())

	runErr := report.Err()
	assert.Equal(t, errors.ExitPartialFailure, errors.GetExitCode(runErr))
	pse, ok := errors.IsPartialSuccess(runErr)
	require.True(t, ok)
	assert.Equal(t, 2, pse.Succeeded)
	assert.Equal(t, 1, pse.Failed)
}

// TestRun_AllFailed tests the exit code when every file fails.
func TestRun_AllFailed(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(ws.Input, "a.xlsx"), []byte("junk"), 0o644))

	report, err := Run(testutil.NewConfig().ForWorkspace(ws).Build(), Options{})
	require.NoError(t, err)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(report.Err()))
}

// TestRun_NoFiles tests an input directory without spreadsheets.
func TestRun_NoFiles(t *testing.T) {
	ws := testutil.NewWorkspace(t)

	report, err := Run(testutil.NewConfig().ForWorkspace(ws).Build(), Options{})
	require.NoError(t, err)
	assert.Empty(t, report.Files)
	assert.NoError(t, report.Err())
}

// TestRun_ConfigErrors tests fatal setup failures.
//
// It verifies:
//   - Missing input or pattern directories abort with ExitConfigError
//   - Invalid configuration aborts before reading anything
func TestRun_ConfigErrors(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	missing := filepath.Join(ws.Root, "missing")

	tests := []struct {
		name   string
		mutate func(cfg *config.RunConfig)
	}{
		{"missing input", func(c *config.RunConfig) { c.InputDir = missing }},
		{"missing exclusion dir", func(c *config.RunConfig) { c.ExcludeDir = missing }},
		{"missing inclusion dir", func(c *config.RunConfig) { c.IncludeDir = missing }},
		{"bad prefix", func(c *config.RunConfig) { c.OutputPrefix = "a/b_" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testutil.NewConfig().ForWorkspace(ws).Build()
			tt.mutate(&cfg)

			report, err := Run(cfg, Options{})
			assert.Nil(t, report)
			assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
		})
	}
}

// TestProcessFile_TableRegionWarning tests that a rejected table region
// still writes the file and records a warning.
func TestProcessFile_TableRegionWarning(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	path := testutil.NewWorkbook("Name").Row("Ann").Save(t, filepath.Join(ws.Input, "a.xlsx"))
	require.NoError(t, os.MkdirAll(ws.Output, 0o755))

	cfg := testutil.NewConfig().ForWorkspace(ws).WithFilters(false, false).Build()
	cfg.TableName = "bad name with spaces"

	f := ProcessFile(path, cfg, patterns.Set{}, patterns.Set{}, zerolog.Nop())
	assert.Equal(t, constants.StatusWritten, f.Status)
	assert.NotEmpty(t, f.Warning)
	assert.FileExists(t, f.OutputPath)

	report := &Report{Files: []FileResult{f}}
	assert.Equal(t, []string{"a.xlsx: " + f.Warning}, report.Warnings())
	assert.NoError(t, report.Err())
}

// TestProcessFile_WriteFailure tests a missing output directory.
func TestProcessFile_WriteFailure(t *testing.T) {
	ws := testutil.NewWorkspace(t)
	path := testutil.NewWorkbook("Name").Row("Ann").Save(t, filepath.Join(ws.Input, "a.xlsx"))

	cfg := testutil.NewConfig().ForWorkspace(ws).WithFilters(false, false).Build()
	cfg.OutputDir = filepath.Join(ws.Root, "missing", "deeper")

	f := ProcessFile(path, cfg, patterns.Set{}, patterns.Set{}, zerolog.Nop())
	assert.Equal(t, constants.StatusFailed, f.Status)
	assert.Error(t, f.Err)
	assert.Empty(t, f.OutputPath)
}
