package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStatusConstants tests the behavior of status constants.
//
// It verifies:
//   - Status constants have the expected string values
//   - Prevents accidental changes to status constant values
func TestStatusConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"StatusWritten", StatusWritten, "Written"},
		{"StatusEmpty", StatusEmpty, "Empty"},
		{"StatusFailed", StatusFailed, "Failed"},
		{"StatusCreated", StatusCreated, "Created"},
		{"StatusExists", StatusExists, "Exists"},
		{"StatusSkipped", StatusSkipped, "Skipped"},
		{"SetExclude", SetExclude, "exclude"},
		{"SetInclude", SetInclude, "include"},
		{"PlaceholderNA", PlaceholderNA, "#N/A"},
		{"PlaceholderNone", PlaceholderNone, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant, "constant %s has unexpected value", tt.name)
		})
	}
}

// TestValidationConstants tests the behavior of validation status constants.
func TestValidationConstants(t *testing.T) {
	assert.Contains(t, ValidationValid, "valid")
	assert.Contains(t, ValidationInvalid, "invalid")
}

// TestIconsAreDistinct tests the behavior of icon uniqueness.
//
// It verifies:
//   - All status icons have distinct values
//   - No two icons share the same visual representation
func TestIconsAreDistinct(t *testing.T) {
	icons := map[string]string{
		"IconSuccess":       IconSuccess,
		"IconWarning":       IconWarning,
		"IconError":         IconError,
		"IconInfo":          IconInfo,
		"IconNotConfigured": IconNotConfigured,
		"IconIgnored":       IconIgnored,
	}

	seen := make(map[string]string)
	for name, icon := range icons {
		assert.NotEmpty(t, icon, "icon %s should not be empty", name)
		if existingName, exists := seen[icon]; exists {
			t.Errorf("Icon %s has same value as %s: %s", name, existingName, icon)
		}
		seen[icon] = name
	}
}
