package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAppendRowAndValue tests row construction and lookups.
func TestAppendRowAndValue(t *testing.T) {
	tbl := NewTable("Name", "Status")
	row := tbl.AppendRow("Ann", "active", "ignored")
	tbl.AppendRow("Bob")

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"Name", "Status"}, row.Keys())
	assert.Equal(t, "Ann", Value(row, "Name"))
	assert.Nil(t, Value(tbl.Rows[1], "Status"))
	assert.Nil(t, Value(row, "Missing"))
	assert.True(t, tbl.HasColumn("Status"))
	assert.False(t, tbl.HasColumn("status"))
}

// TestFilter tests in-place removal with order preserved.
func TestFilter(t *testing.T) {
	tbl := NewTable("N")
	for _, v := range []float64{1, 2, 3, 4, 5} {
		tbl.AppendRow(v)
	}

	removed := tbl.Filter(func(r Row) bool {
		return int(Value(r, "N").(float64))%2 == 1
	})

	assert.Equal(t, 2, removed)
	var got []any
	for _, r := range tbl.Rows {
		got = append(got, Value(r, "N"))
	}
	assert.Equal(t, []any{1.0, 3.0, 5.0}, got)

	removed = tbl.Filter(func(Row) bool { return false })
	assert.Equal(t, 3, removed)
	assert.Equal(t, 0, tbl.Len())
}

// TestFillMissing tests nil replacement in one column.
func TestFillMissing(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.AppendRow(nil, nil)
	tbl.AppendRow("x", nil)

	assert.Equal(t, 1, tbl.FillMissing("A", ""))
	assert.Equal(t, "", Value(tbl.Rows[0], "A"))
	assert.Equal(t, "x", Value(tbl.Rows[1], "A"))
	assert.Nil(t, Value(tbl.Rows[0], "B"))
}

// TestCellString tests text rendering of cell values.
func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "=SUM(A1)", "=SUM(A1)"},
		{"integer float", 3.0, "3"},
		{"fraction", 2.5, "2.5"},
		{"negative", -0.125, "-0.125"},
		{"large", 1234567890.0, "1234567890"},
		{"int", 7, "7"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"date", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2024-01-15 00:00:00"},
		{"date time", time.Date(2024, 1, 15, 9, 30, 5, 0, time.UTC), "2024-01-15 09:30:05"},
		{"microseconds", time.Date(2024, 1, 15, 9, 30, 5, 500000000, time.UTC), "2024-01-15 09:30:05.500000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellString(tt.value))
		})
	}
}

// TestIsDateFormat tests date detection for custom number formats.
func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"dd/mm/yyyy hh:mm", true},
		{"[$-409]mmmm d, yyyy", true},
		{"h:mm AM/PM", true},
		{"General", false},
		{"#,##0.00", false},
		{"0%", false},
		{"0.00E+00", false},
		{`0 "days"`, false},
		{`_($* #,##0.00_);[Red]dd`, false},
		{`\d0`, false},
		{"[Red]#,##0", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormat(tt.code))
		})
	}
}
