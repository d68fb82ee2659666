package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-12")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2026-2-12", "12.02.2026", "2026-02-30", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestWeekday_IndependentOfLocation(t *testing.T) {
	// 2026-02-09 is a Monday
	d, err := ParseDate("2026-02-09")
	require.NoError(t, err)
	assert.Equal(t, 1, Weekday(d))

	// a late-evening instant west of UTC keeps its own calendar date
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	evening := time.Date(2026, 2, 9, 23, 30, 0, 0, la)
	assert.Equal(t, 1, Weekday(evening))

	// early morning east of UTC as well
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	morning := time.Date(2026, 2, 8, 0, 30, 0, 0, tokyo)
	assert.Equal(t, 0, Weekday(morning))
}

func TestSameDateAndFormat(t *testing.T) {
	a := time.Date(2026, 2, 12, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 2, 12, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(b, c))
	assert.Equal(t, "2026-02-12", FormatDate(b))
}

func TestDateOnly_UsesWallClockOfOwnLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2026-02-12 20:00 UTC это уже 13 февраля в Токио
	instant := time.Date(2026, 2, 12, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC), DateOnly(instant))
	assert.Equal(t, time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), DateOnly(instant.In(tokyo)))
}

func TestAtTimeOfDay(t *testing.T) {
	date := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

	got, err := AtTimeOfDay(date, "18:00", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 11, 18, 0, 0, 0, time.UTC), got)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	got, err = AtTimeOfDay(date, "09:15:30", ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 11, 9, 15, 30, 0, ny), got)

	_, err = AtTimeOfDay(date, "bad", nil)
	assert.ErrorIs(t, err, ErrInvalidTime)
}
