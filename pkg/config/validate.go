package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ajxudir/sheetfilter/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a settings validation error.
type ValidationError struct {
	Field     string
	Message   string
	Expected  string // Expected type or value hint
	ValidKeys string // Valid keys for this context
}

// Error returns the error message string.
//
// Returns:
//   - string: formatted error message with field name if available
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError returns a detailed error message with schema hints.
//
// Returns:
//   - string: error message followed by expected type and valid keys
func (e ValidationError) VerboseError() string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}
	if e.ValidKeys != "" {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", e.ValidKeys))
	}
	return sb.String()
}

// ValidationResult holds the results of settings validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Err returns the validation errors as a single error, or nil.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return fmt.Errorf("%s", r.ErrorMessages())
}

// ErrorMessages returns all error messages as a formatted string.
//
// Returns:
//   - string: formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessages() string {
	return r.join(func(e ValidationError) string { return e.Error() })
}

// VerboseErrorMessages returns detailed error messages with schema hints.
//
// Returns:
//   - string: detailed formatted error messages, or empty string if no errors
func (r *ValidationResult) VerboseErrorMessages() string {
	return r.join(func(e ValidationError) string { return e.VerboseError() })
}

func (r *ValidationResult) join(format func(ValidationError) string) string {
	if len(r.Errors) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, "  - "+format(e))
	}
	return "Settings validation failed:\n" + strings.Join(msgs, "\n")
}

type schemaInfo struct {
	fields string
}

// settingsSchema lists the valid keys per settings type.
var settingsSchema = map[string]schemaInfo{
	"Settings":       {fields: "filters, directories, input, output"},
	"FiltersCfg":     {fields: "exclude, include"},
	"DirectoriesCfg": {fields: "input, output, exclude, include"},
	"InputCfg":       {fields: "files"},
	"OutputCfg":      {fields: "prefix, table_name, table_style"},
}

// commonTypos maps frequent mistakes to the correct field names.
var commonTypos = map[string]map[string]string{
	"Settings": {
		"filter":      "filters",
		"directory":   "directories",
		"dirs":        "directories",
		"blacklist":   "filters",
		"whitelist":   "filters",
		"files":       "input",
		"output_file": "output",
	},
	"FiltersCfg": {
		"blacklist":  "exclude",
		"whitelist":  "include",
		"excludes":   "exclude",
		"includes":   "include",
		"exclusion":  "exclude",
		"inclusion":  "include",
		"blacklists": "exclude",
		"whitelists": "include",
	},
	"DirectoriesCfg": {
		"blacklists": "exclude",
		"whitelists": "include",
		"blacklist":  "exclude",
		"whitelist":  "include",
		"in":         "input",
		"out":        "output",
	},
	"InputCfg": {
		"file":    "files",
		"pattern": "files",
	},
	"OutputCfg": {
		"tableName":  "table_name",
		"tableStyle": "table_style",
		"table":      "table_name",
		"style":      "table_style",
	},
}

// tableNamePattern is the shape of a valid workbook table name.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_\\][A-Za-z0-9_.]*$`)

// tableStylePattern matches the built-in table style names.
var tableStylePattern = regexp.MustCompile(`^TableStyle(Light([1-9]|1[0-9]|2[01])|Medium([1-9]|1[0-9]|2[0-8])|Dark([1-9]|1[01]))$`)

// lineNumberPattern extracts "line N:" from YAML errors.
var lineNumberPattern = regexp.MustCompile(`line (\d+):`)

// ValidateSettingsFile validates YAML settings data for syntax errors,
// unknown fields and invalid values.
//
// This performs strict decoding using KnownFields(true) so typos like
// "blacklist:" are reported instead of silently ignored.
//
// Parameters:
//   - data: YAML settings data as bytes
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateSettingsFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	verbose.Printf("Settings validation: starting YAML parsing with strict field checking")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	s := DefaultSettings()
	if err := decoder.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		verbose.Printf("Settings validation FAILED: YAML decode error: %v", err)
		result.Errors = append(result.Errors, decodeError(err.Error()))
		return result
	}

	validateSettings(s, result)

	if result.HasErrors() {
		verbose.Printf("Settings validation FAILED: %d errors found", len(result.Errors))
	} else {
		verbose.Printf("Settings validation PASSED: no errors found")
	}
	return result
}

// decodeError turns a YAML decode error into a ValidationError.
func decodeError(errMsg string) ValidationError {
	switch {
	case strings.Contains(errMsg, "field") && strings.Contains(errMsg, "not found"):
		fieldName, typeName := extractFieldAndType(errMsg)
		verr := ValidationError{Message: fmt.Sprintf("unknown field '%s'", fieldName)}
		if line := extractLineNumber(errMsg); line > 0 {
			verr.Message = fmt.Sprintf("unknown field '%s' (line %d)", fieldName, line)
		}
		if schema, ok := settingsSchema[typeName]; ok {
			verr.ValidKeys = schema.fields
		}
		if suggestion := suggestSimilarField(fieldName, typeName); suggestion != "" {
			verr.Message += fmt.Sprintf(" (did you mean '%s'?)", suggestion)
		}
		return verr
	case strings.Contains(errMsg, "cannot unmarshal"):
		return ValidationError{Message: errMsg, Expected: extractExpectedType(errMsg)}
	case strings.Contains(errMsg, "yaml:"):
		return ValidationError{Message: fmt.Sprintf("YAML syntax error: %s", errMsg)}
	default:
		return ValidationError{Message: errMsg}
	}
}

// Validate validates loaded settings.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (s *Settings) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateSettings(s, result)
	return result
}

// Validate validates a run configuration before any file is touched.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c RunConfig) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateRunConfig(c, result)
	return result
}

func validateSettings(s *Settings, result *ValidationResult) {
	validateRunConfig(s.RunConfig(), result)
}

// validateRunConfig checks directories, output naming and the table region.
//
// It performs the following operations:
//   - Requires input and output directories, and pattern directories for
//     enabled pattern sets
//   - Rejects an output prefix containing a path separator
//   - Rejects configurations where an output file would replace its input
//   - Checks the table name shape and warns on unknown table styles
//
// Parameters:
//   - c: the run configuration to validate
//   - result: validation result to append errors and warnings to
func validateRunConfig(c RunConfig, result *ValidationResult) {
	required := []struct {
		field string
		value string
		need  bool
	}{
		{"directories.input", c.InputDir, true},
		{"directories.output", c.OutputDir, true},
		{"directories.exclude", c.ExcludeDir, c.ExcludeEnabled},
		{"directories.include", c.IncludeDir, c.IncludeEnabled},
	}
	for _, r := range required {
		if r.need && strings.TrimSpace(r.value) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   r.field,
				Message: "directory cannot be empty",
			})
		}
	}

	if strings.ContainsAny(c.OutputPrefix, `/\`) {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "output.prefix",
			Message:  fmt.Sprintf("prefix %q must not contain a path separator", c.OutputPrefix),
			Expected: "plain file name prefix such as filtered_",
		})
	}

	sameDir := c.InputDir != "" && filepath.Clean(c.InputDir) == filepath.Clean(c.OutputDir)
	if sameDir && c.OutputPrefix == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.prefix",
			Message: "prefix cannot be empty when input and output directories are the same",
		})
	} else if sameDir {
		result.Warnings = append(result.Warnings,
			"input and output directories are the same; filtered files will be picked up by the next run")
	}

	if c.TableName != "" && (len(c.TableName) > 255 || !tableNamePattern.MatchString(c.TableName)) {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "output.table_name",
			Message:  fmt.Sprintf("invalid table name %q", c.TableName),
			Expected: "letter or underscore followed by letters, digits, '_' or '.'",
		})
	}
	if c.TableStyle != "" && !tableStylePattern.MatchString(c.TableStyle) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("output.table_style: %q is not a built-in table style", c.TableStyle))
	}
}

// extractFieldAndType extracts the field name and type from a YAML unknown
// field error such as "line 3: field foo not found in type config.FiltersCfg".
func extractFieldAndType(errMsg string) (field, typeName string) {
	parts := strings.Split(errMsg, "field ")
	if len(parts) >= 2 {
		fieldPart := parts[1]
		if spaceIdx := strings.Index(fieldPart, " "); spaceIdx > 0 {
			field = fieldPart[:spaceIdx]
		} else {
			field = fieldPart
		}
	}

	if idx := strings.Index(errMsg, "in type config."); idx >= 0 {
		typePart := errMsg[idx+len("in type config."):]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			typeName = typePart[:endIdx]
		} else {
			typeName = typePart
		}
	}

	return field, typeName
}

// extractLineNumber extracts the line number from a YAML error message.
//
// Returns:
//   - int: the line number, or 0 if not found
func extractLineNumber(errMsg string) int {
	matches := lineNumberPattern.FindStringSubmatch(errMsg)
	if len(matches) >= 2 {
		var lineNum int
		_, _ = fmt.Sscanf(matches[1], "%d", &lineNum)
		return lineNum
	}
	return 0
}

// extractExpectedType extracts Y from "cannot unmarshal X into Y".
func extractExpectedType(errMsg string) string {
	if idx := strings.Index(errMsg, "into "); idx >= 0 {
		typePart := errMsg[idx+5:]
		if endIdx := strings.IndexAny(typePart, " \n"); endIdx > 0 {
			return typePart[:endIdx]
		}
		return typePart
	}
	return ""
}

// suggestSimilarField returns a suggested field name if the input looks like a typo.
//
// Parameters:
//   - field: the unknown field name
//   - typeName: the type name where the field was found
//
// Returns:
//   - string: suggested correct field name, or empty string if no suggestion
func suggestSimilarField(field, typeName string) string {
	if typos, ok := commonTypos[typeName]; ok {
		if suggestion, found := typos[field]; found {
			return suggestion
		}
	}

	if strings.Contains(field, "-") {
		snakeCase := strings.ReplaceAll(field, "-", "_")
		if schema, ok := settingsSchema[typeName]; ok {
			for _, f := range strings.Split(schema.fields, ", ") {
				if f == snakeCase {
					return snakeCase
				}
			}
		}
	}

	return ""
}
