// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// File status constants represent the outcome of processing one spreadsheet.
const (
	// StatusWritten indicates the filtered workbook was written.
	StatusWritten = "Written"

	// StatusEmpty indicates no rows remained after filtering and no file was written.
	StatusEmpty = "Empty"

	// StatusFailed indicates the spreadsheet could not be read or written.
	StatusFailed = "Failed"
)

// List status constants represent the outcome of creating one pattern file.
const (
	// StatusCreated indicates an empty pattern file was created.
	StatusCreated = "Created"

	// StatusExists indicates the pattern file already existed and was left untouched.
	StatusExists = "Exists"

	// StatusSkipped indicates the column name cannot be used as a file name.
	StatusSkipped = "Skipped"
)

// Pattern set names used in reports and logs.
const (
	// SetExclude names the exclusion (blacklist) pattern set.
	SetExclude = "exclude"

	// SetInclude names the inclusion (whitelist) pattern set.
	SetInclude = "include"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a value is not available.
	PlaceholderNA = "#N/A"

	// PlaceholderNone is used for empty lists in table output.
	PlaceholderNone = "-"
)

// Icon constants for status display.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconWarning indicates a warning or caution state (orange circle).
	IconWarning = "🟠"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconInfo indicates informational or neutral state (blue circle).
	IconInfo = "🔵"

	// IconNotConfigured indicates unconfigured state (white circle).
	IconNotConfigured = "⚪"

	// IconIgnored indicates an item excluded from processing (no entry).
	IconIgnored = "🚫"

	// IconCheckmark indicates a passed check (checkmark).
	IconCheckmark = "✓"

	// IconCross indicates a failed check (cross).
	IconCross = "✗"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconCheckmarkBox indicates successful validation (checkmark in box).
	IconCheckmarkBox = "✅"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)

// Validation status constants for settings validation.
const (
	// ValidationValid indicates a valid file.
	ValidationValid = "🟢 valid"

	// ValidationInvalid indicates an invalid file.
	ValidationInvalid = "❌ invalid"
)
