package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	start, end, err := MonthWindow("2026-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindowYearRollover(t *testing.T) {
	start, end, err := MonthWindow("2026-12")
	require.NoError(t, err)
	assert.Equal(t, time.December, start.Month())
	assert.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthWindowRejectsBadFormats(t *testing.T) {
	for _, month := range []string{"", "2026", "2026-13", "2026-00", "03-2026", "2026-3", "2026-03-01"} {
		_, _, err := MonthWindow(month)
		assert.Error(t, err, "month %q", month)
	}
}

func TestMonthKeyRoundTrips(t *testing.T) {
	at := time.Date(2026, time.August, 29, 14, 30, 0, 0, time.UTC)
	key := MonthKey(at)
	assert.Equal(t, "2026-08", key)

	start, end, err := MonthWindow(key)
	require.NoError(t, err)
	assert.True(t, !at.Before(start) && at.Before(end))
}
