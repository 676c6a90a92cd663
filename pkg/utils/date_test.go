package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalNoonDate(t *testing.T) {
	date, err := ParseLocalNoonDate("2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, 12, date.Hour())
	assert.Equal(t, time.Local, date.Location())
	assert.Equal(t, "2024-03-10", FormatDate(date))

	_, err = ParseLocalNoonDate("10/03/2024")
	assert.Error(t, err)
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"09:15", 9, false},
		{"20:00", 20, false},
		{" 7:30", 7, false},
		{"24:00", 0, true},
		{"", 0, true},
		{"dez:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hour, err := ParseHour(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, hour)
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	date := time.Date(2024, time.January, 31, 12, 0, 0, 0, time.Local)

	assert.Equal(t, 1, FirstDayOfMonth(date).Day())
	assert.Equal(t, 29, LastDayOfMonth(time.Date(2024, time.February, 10, 12, 0, 0, 0, time.Local)).Day())
	assert.Equal(t, "01-2024", MonthPeriod(date))
	assert.Equal(t, time.February, FirstDayOfMonth(date).AddDate(0, 1, 0).Month())
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Equal(t, 0.0, SafeDivide(5, 0))
}
