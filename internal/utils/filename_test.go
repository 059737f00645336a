package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes invalid characters",
			input:    `file<>:"/\|?*name`,
			expected: "filename",
		},
		{
			name:     "normalizes whitespace",
			input:    "Ursula\tK.\n  Le   Guin",
			expected: "Ursula K. Le Guin",
		},
		{
			name:     "trims dots and spaces",
			input:    " .hidden. ",
			expected: "hidden",
		},
		{
			name:     "keeps unicode",
			input:    "Фёдор Достоевский",
			expected: "Фёдор Достоевский",
		},
		{
			name:     "empty becomes untitled",
			input:    `???`,
			expected: "untitled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilename_LongName(t *testing.T) {
	got := SanitizeFilename(strings.Repeat("й", 150))

	assert.LessOrEqual(t, len(got), maxFilenameLen)
	assert.True(t, utf8.ValidString(got))
}

func TestRecordFilename(t *testing.T) {
	assert.Equal(t, "7 Frank Herbert.yaml", RecordFilename(7, "Frank Herbert", ".yaml"))
	assert.Equal(t, "3 ACDC.yaml", RecordFilename(3, "AC/DC", ".yaml"))
	assert.Equal(t, "3 AC DC.yaml", RecordFilename(3, "AC / DC", ".yaml"))
}
