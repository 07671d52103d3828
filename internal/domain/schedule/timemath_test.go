//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, hour, minute int) alarm.TimeOfDay {
	t.Helper()
	tod, err := alarm.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func mustRepeatDays(t *testing.T, days []int) alarm.RepeatDays {
	t.Helper()
	rd, err := alarm.NewRepeatDays(days)
	require.NoError(t, err)
	return rd
}

func TestNextOccurrence_OneShot(t *testing.T) {
	tuning := schedule.DefaultTuning()
	// 2026-09-01 is a Tuesday.
	now := time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC)
	empty := mustRepeatDays(t, nil)

	t.Run("target still ahead today fires today", func(t *testing.T) {
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), empty, now, tuning)
		assert.Equal(t, time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC), got)
	})

	t.Run("target well in the past defers to tomorrow", func(t *testing.T) {
		got := schedule.NextOccurrence(mustTimeOfDay(t, 5, 0), empty, now, tuning)
		assert.Equal(t, time.Date(2026, 9, 2, 5, 0, 0, 0, time.UTC), got)
	})

	t.Run("target just missed inside grace window fires almost immediately", func(t *testing.T) {
		at := time.Date(2026, 9, 1, 7, 0, 30, 0, time.UTC) // 30s past 07:00
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), empty, at, tuning)
		assert.Equal(t, at.Add(tuning.ImmediateDelay), got)
	})

	t.Run("target exactly one grace window in the past defers a day", func(t *testing.T) {
		at := time.Date(2026, 9, 1, 7, 1, 0, 0, time.UTC) // 60s past 07:00
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), empty, at, tuning)
		assert.Equal(t, time.Date(2026, 9, 2, 7, 0, 0, 0, time.UTC), got)
	})

	t.Run("target exactly now counts as today", func(t *testing.T) {
		at := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), empty, at, tuning)
		assert.Equal(t, at, got)
	})
}

func TestNextOccurrence_Repeating(t *testing.T) {
	tuning := schedule.DefaultTuning()
	// Tuesday morning.
	now := time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC)

	t.Run("same day still ahead wins", func(t *testing.T) {
		weekdays := mustRepeatDays(t, []int{1, 2, 3, 4, 5})
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), weekdays, now, tuning)
		assert.Equal(t, time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC), got)
		assert.Equal(t, time.Tuesday, got.Weekday())
	})

	t.Run("same day already passed skips to next matching weekday", func(t *testing.T) {
		weekdays := mustRepeatDays(t, []int{1, 2, 3, 4, 5})
		at := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), weekdays, at, tuning)
		assert.Equal(t, time.Date(2026, 9, 2, 7, 0, 0, 0, time.UTC), got)
		assert.Equal(t, time.Wednesday, got.Weekday())
	})

	t.Run("no grace window for repeating alarms", func(t *testing.T) {
		// 30s past would fire immediately for a one-shot; a repeating alarm
		// waits for the next matching day instead.
		tuesdayOnly := mustRepeatDays(t, []int{2})
		at := time.Date(2026, 9, 1, 7, 0, 30, 0, time.UTC)
		got := schedule.NextOccurrence(mustTimeOfDay(t, 7, 0), tuesdayOnly, at, tuning)
		assert.Equal(t, time.Date(2026, 9, 8, 7, 0, 0, 0, time.UTC), got)
	})

	t.Run("single weekday a week out", func(t *testing.T) {
		sundayOnly := mustRepeatDays(t, []int{0})
		got := schedule.NextOccurrence(mustTimeOfDay(t, 9, 0), sundayOnly, now, tuning)
		assert.Equal(t, time.Date(2026, 9, 6, 9, 0, 0, 0, time.UTC), got)
		assert.Equal(t, time.Sunday, got.Weekday())
	})

	t.Run("result is always strictly after now", func(t *testing.T) {
		weekdaySets := [][]int{{0}, {3}, {6}, {0, 6}, {1, 2, 3, 4, 5}, {0, 1, 2, 3, 4, 5, 6}}
		for _, days := range weekdaySets {
			repeat := mustRepeatDays(t, days)
			for hour := 0; hour < 24; hour += 5 {
				got := schedule.NextOccurrence(mustTimeOfDay(t, hour, 0), repeat, now, tuning)
				assert.True(t, got.After(now), "days=%v hour=%d got=%v", days, hour, got)
				assert.True(t, repeat.Contains(got.Weekday()), "days=%v hour=%d got=%v", days, hour, got)
			}
		}
	})

	t.Run("result is within eight days", func(t *testing.T) {
		repeat := mustRepeatDays(t, []int{2})
		got := schedule.NextOccurrence(mustTimeOfDay(t, 0, 0), repeat, now, tuning)
		assert.True(t, got.Sub(now) <= 8*24*time.Hour)
	})
}
