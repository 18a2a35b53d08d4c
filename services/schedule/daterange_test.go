package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"single day", "2024-07-04", "2024-07-04", []string{"2024-07-04"}},
		{
			"spans a month boundary",
			"2024-06-29", "2024-07-02",
			[]string{"2024-06-29", "2024-06-30", "2024-07-01", "2024-07-02"},
		},
		{"inverted range is empty", "2024-07-04", "2024-07-01", nil},
		{
			"date-time strings are truncated to the date",
			"2024-07-01T18:30", "2024-07-02T09:00",
			[]string{"2024-07-01", "2024-07-02"},
		},
		{"malformed start is empty", "July 4th", "2024-07-04", nil},
		{"malformed end is empty", "2024-07-04", "soon", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandDateRange(tt.start, tt.end))
		})
	}
}

func TestRangeLength(t *testing.T) {
	days, err := rangeLength("2024-07-01", "2024-07-03")
	assert.NoError(t, err)
	assert.Equal(t, 3, days)

	days, err = rangeLength("2024-07-03", "2024-07-01")
	assert.NoError(t, err)
	assert.Equal(t, 0, days)

	_, err = rangeLength("bad", "2024-07-01")
	assert.Error(t, err)
}
