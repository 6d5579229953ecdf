package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODateDateOnly(t *testing.T) {
	parsed, err := ParseISODate("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 4, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
}

func TestParseISODateNormalizesToMidnight(t *testing.T) {
	parsed, err := ParseISODate("2024-03-04T15:30:00")
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())
	assert.Equal(t, 4, parsed.Day())
}

func TestParseISODateRFC3339(t *testing.T) {
	parsed, err := ParseISODate("2024-03-04T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 4, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
}

func TestParseISODateInvalid(t *testing.T) {
	for _, value := range []string{"not-a-date", "04/03/2024", "2024-13-40"} {
		_, err := ParseISODate(value)
		require.Error(t, err, value)
		assert.ErrorIs(t, err, ErrInvalidDate)
	}
}

func TestParseISODateMissing(t *testing.T) {
	_, err := ParseISODate("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingWeekStart)
}

func TestWeekEnd(t *testing.T) {
	weekStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local), WeekEnd(weekStart))
}

func TestMidnight(t *testing.T) {
	v := time.Date(2024, 3, 4, 18, 45, 12, 999, time.Local)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local), Midnight(v))
}
