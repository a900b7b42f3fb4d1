package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 678_000_000, time.FixedZone("X", 3600))
	assert.Equal(t, "2025-01-02T02:04:05.678Z", FormatTimestamp(ts))
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2025-01-02T02:04:05.678Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 2, 4, 5, 678_000_000, time.UTC), got)

	got, err = ParseTimestamp("2025-01-02T03:04:05+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 2, 4, 5, 0, time.UTC), got)

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestTimestampOrdering(t *testing.T) {
	earlier := FormatTimestamp(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
	later := FormatTimestamp(time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
}

func TestSameBizDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 12, 0, 0, 0, Location())
	assert.True(t, SameBizDay(day, day.Add(time.Hour)))
	assert.False(t, SameBizDay(day, day.Add(24*time.Hour)))
	assert.Equal(t, StartOfDayUTC(day), StartOfDayUTC(EndOfDayUTC(day)))
}
