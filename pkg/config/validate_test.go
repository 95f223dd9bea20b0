package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateSettingsFile tests strict validation of settings data.
func TestValidateSettingsFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantErr   bool
		contains  []string
		wantWarns int
	}{
		{name: "empty document", yaml: ""},
		{name: "defaults", yaml: GetDefaultSettings()},
		{name: "template", yaml: GetTemplateSettings()},
		{
			name:     "unknown top-level field",
			yaml:     "filter:\n  exclude: true\n",
			wantErr:  true,
			contains: []string{"unknown field 'filter'", "line 1", "did you mean 'filters'?"},
		},
		{
			name:     "kebab case",
			yaml:     "output:\n  table-name: T\n",
			wantErr:  true,
			contains: []string{"did you mean 'table_name'?"},
		},
		{
			name:     "type mismatch",
			yaml:     "filters:\n  exclude: [1]\n",
			wantErr:  true,
			contains: []string{"cannot unmarshal"},
		},
		{
			name:     "syntax error",
			yaml:     "filters: [",
			wantErr:  true,
			contains: []string{"YAML syntax error"},
		},
		{
			name:     "empty input dir",
			yaml:     "directories:\n  input: ''\n",
			wantErr:  true,
			contains: []string{"directories.input: directory cannot be empty"},
		},
		{
			name: "empty exclude dir with exclusion disabled",
			yaml: "filters:\n  exclude: false\ndirectories:\n  exclude: ''\n",
		},
		{
			name:     "prefix with separator",
			yaml:     "output:\n  prefix: out/\n",
			wantErr:  true,
			contains: []string{"output.prefix"},
		},
		{
			name:     "same dirs without prefix",
			yaml:     "directories:\n  input: data\n  output: data/\noutput:\n  prefix: ''\n",
			wantErr:  true,
			contains: []string{"prefix cannot be empty"},
		},
		{
			name:      "same dirs with prefix",
			yaml:      "directories:\n  input: data\n  output: data\n",
			wantWarns: 1,
		},
		{
			name:     "invalid table name",
			yaml:     "output:\n  table_name: '1 table'\n",
			wantErr:  true,
			contains: []string{"invalid table name"},
		},
		{
			name:      "unknown table style",
			yaml:      "output:\n  table_style: Fancy\n",
			wantWarns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSettingsFile([]byte(tt.yaml))
			assert.Equal(t, tt.wantErr, result.HasErrors(), result.ErrorMessages())
			for _, c := range tt.contains {
				assert.Contains(t, result.VerboseErrorMessages(), c)
			}
			assert.Len(t, result.Warnings, tt.wantWarns)
		})
	}
}

// TestValidationResultMessages tests message formatting.
func TestValidationResultMessages(t *testing.T) {
	r := &ValidationResult{}
	assert.Empty(t, r.ErrorMessages())
	assert.Empty(t, r.VerboseErrorMessages())
	assert.NoError(t, r.Err())

	r.Errors = append(r.Errors,
		ValidationError{Field: "output.prefix", Message: "bad", Expected: "plain", ValidKeys: "a, b"},
		ValidationError{Message: "plain message"},
	)
	assert.True(t, strings.HasPrefix(r.ErrorMessages(), "Settings validation failed:\n"))
	assert.Contains(t, r.ErrorMessages(), "  - output.prefix: bad")
	assert.Contains(t, r.ErrorMessages(), "  - plain message")
	assert.Contains(t, r.VerboseErrorMessages(), "Expected: plain")
	assert.Contains(t, r.VerboseErrorMessages(), "Valid keys: a, b")
	require.Error(t, r.Err())
}

// TestRunConfigValidate tests validation of command-line built configs.
func TestRunConfigValidate(t *testing.T) {
	cfg := DefaultSettings().RunConfig()
	assert.False(t, cfg.Validate().HasErrors())

	cfg.IncludeDir = " "
	assert.True(t, cfg.Validate().HasErrors())

	cfg.IncludeEnabled = false
	assert.False(t, cfg.Validate().HasErrors())
}

// TestExtractHelpers tests YAML error message parsing helpers.
func TestExtractHelpers(t *testing.T) {
	msg := "yaml: unmarshal errors:\n  line 7: field foo not found in type config.OutputCfg"
	field, typeName := extractFieldAndType(msg)
	assert.Equal(t, "foo", field)
	assert.Equal(t, "OutputCfg", typeName)
	assert.Equal(t, 7, extractLineNumber(msg))
	assert.Equal(t, 0, extractLineNumber("no line here"))
	assert.Equal(t, "bool", extractExpectedType("cannot unmarshal !!seq into bool"))
	assert.Empty(t, extractExpectedType("something else"))
	assert.Empty(t, suggestSimilarField("zzz", "Settings"))
	assert.Equal(t, "include", suggestSimilarField("whitelist", "FiltersCfg"))
}
