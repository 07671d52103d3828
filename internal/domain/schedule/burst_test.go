//go:build unit

package schedule_test

import (
	"fmt"
	"testing"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerID(t *testing.T) {
	alarmID := uuid.MustParse("a0e24ccd-6bb2-4f85-9a12-9edc8a0034e3")
	assert.Equal(t, "a0e24ccd-6bb2-4f85-9a12-9edc8a0034e3_seq_0", schedule.TriggerID(alarmID, 0))
	assert.Equal(t, "a0e24ccd-6bb2-4f85-9a12-9edc8a0034e3_seq_49", schedule.TriggerID(alarmID, 49))
}

func TestPlannerInterval(t *testing.T) {
	p := schedule.NewPlanner(schedule.DefaultPlannerConfig())

	longSounds := []string{"Classic", "MorningClock", "Facility", "SpaceShooter", "CitySiren", "SecurityBreach", "VintageWarning"}
	for _, s := range longSounds {
		assert.Equal(t, 3*time.Second, p.Interval(alarm.Sound(s)), s)
	}

	shortSounds := []string{"Chime", "Beep", "unknown-key"}
	for _, s := range shortSounds {
		assert.Equal(t, 2*time.Second, p.Interval(alarm.Sound(s)), s)
	}
}

func TestPlannerPlan(t *testing.T) {
	alarmID := uuid.New()
	anchor := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	evalTime := anchor.Add(-time.Minute)

	t.Run("burst is capped at the configured maximum", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.DefaultPlannerConfig())

		// 300s at 3s spacing would be 100 items; the cap wins.
		long, err := p.Plan(alarmID, anchor, "Classic", evalTime)
		require.NoError(t, err)
		assert.Len(t, long.Items, 50)

		// 300s at 2s spacing would be 150 items; same cap.
		short, err := p.Plan(alarmID, anchor, "Chime", evalTime)
		require.NoError(t, err)
		assert.Len(t, short.Items, 50)
	})

	t.Run("items are spaced by the sound interval from the anchor", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.PlannerConfig{
			BurstDuration:      12 * time.Second,
			LongSoundInterval:  3 * time.Second,
			ShortSoundInterval: 2 * time.Second,
			MaxItems:           50,
		})

		burst, err := p.Plan(alarmID, anchor, "Classic", evalTime)
		require.NoError(t, err)
		require.Len(t, burst.Items, 4)
		for i, item := range burst.Items {
			assert.Equal(t, i, item.Index)
			assert.Equal(t, anchor.Add(time.Duration(i)*3*time.Second), item.FireAt)
		}
	})

	t.Run("count rounds up when the duration is not a multiple of the interval", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.PlannerConfig{
			BurstDuration:      10 * time.Second,
			LongSoundInterval:  3 * time.Second,
			ShortSoundInterval: 2 * time.Second,
			MaxItems:           50,
		})

		burst, err := p.Plan(alarmID, anchor, "Classic", evalTime)
		require.NoError(t, err)
		assert.Len(t, burst.Items, 4) // ceil(10/3)
	})

	t.Run("first item is primary and the rest are continuations", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.DefaultPlannerConfig())
		burst, err := p.Plan(alarmID, anchor, "Classic", evalTime)
		require.NoError(t, err)

		assert.Equal(t, schedule.RolePrimary, burst.Items[0].Role)
		for _, item := range burst.Items[1:] {
			assert.Equal(t, schedule.RoleContinuation, item.Role, "item %d", item.Index)
		}
	})

	t.Run("stale anchor falls back to a monotonic near-future sequence", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.DefaultPlannerConfig())
		eval := anchor.Add(10 * time.Minute) // the whole burst is in the past

		burst, err := p.Plan(alarmID, anchor, "Classic", eval)
		require.NoError(t, err)

		prev := eval
		for _, item := range burst.Items {
			assert.True(t, item.FireAt.After(eval), "item %d not in the future", item.Index)
			assert.True(t, item.FireAt.After(prev), "item %d not monotonic", item.Index)
			prev = item.FireAt
		}
		assert.Equal(t, eval.Add(time.Second), burst.Items[0].FireAt)
	})

	t.Run("trigger ids cover the full index range", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.DefaultPlannerConfig())
		burst, err := p.Plan(alarmID, anchor, "Classic", evalTime)
		require.NoError(t, err)

		for _, item := range burst.Items {
			assert.Equal(t, fmt.Sprintf("%s_seq_%d", alarmID, item.Index), schedule.TriggerID(alarmID, item.Index))
		}
	})

	t.Run("invalid inputs are rejected", func(t *testing.T) {
		p := schedule.NewPlanner(schedule.DefaultPlannerConfig())
		_, err := p.Plan(alarmID, time.Time{}, "Classic", evalTime)
		assert.ErrorIs(t, err, schedule.ErrInvalidAnchor)

		zeroInterval := schedule.NewPlanner(schedule.PlannerConfig{
			BurstDuration: 300 * time.Second,
			MaxItems:      50,
		})
		_, err = zeroInterval.Plan(alarmID, anchor, "Classic", evalTime)
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)

		zeroCap := schedule.NewPlanner(schedule.PlannerConfig{
			BurstDuration:      300 * time.Second,
			LongSoundInterval:  3 * time.Second,
			ShortSoundInterval: 2 * time.Second,
		})
		_, err = zeroCap.Plan(alarmID, anchor, "Classic", evalTime)
		assert.ErrorIs(t, err, schedule.ErrInvalidCap)
	})
}
