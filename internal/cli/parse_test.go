package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readkeeper/internal/entities"
)

func TestParseID(t *testing.T) {
	id, err := parseID("id", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := parseID("id", bad)
		assert.True(t, entities.IsValidation(err), "input %q", bad)
	}
}

func TestParseYear(t *testing.T) {
	year, err := parseYear("1965")
	require.NoError(t, err)
	assert.Equal(t, 1965, year)

	_, err = parseYear("MCMLXV")
	assert.True(t, entities.IsValidation(err))
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		in   string
		want []uint
	}{
		{"", []uint{}},
		{"  ", []uint{}},
		{"1", []uint{1}},
		{"1, 2,3", []uint{1, 2, 3}},
		{"3,3,1", []uint{3, 1}},
		{"1,,2,", []uint{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseIDList("genre id", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseIDList("genre id", "1,two")
	assert.EqualError(t, err, `invalid genre id: "two" is not a positive whole number`)
}
