package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalFloat(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"6.5", ptr(6.5)},
		{" 40 ", ptr(40)},
		{"0", ptr(0)},
		{"-3", ptr(-3)},
		{"", nil},
		{"   ", nil},
		{"abc", nil},
		{"NaN", nil},
		{"Inf", nil},
		{"6.5 pH", nil},
		{"12abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseOptionalFloat(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestGenerateReportID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, err := GenerateReportID()
		require.NoError(t, err)
		assert.True(t, ValidateReportID(id), "generated id %q should validate", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}

	assert.False(t, ValidateReportID("short"))
	assert.False(t, ValidateReportID("abc-def_ghij"))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "soil-analysis-abc.json", ExportFileName("soil-analysis", "abc", "json"))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}

func ptr(v float64) *float64 {
	return &v
}
