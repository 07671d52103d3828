//go:build unit

package alarm_test

import (
	"strings"
	"testing"

	"snoozetax/internal/domain/alarm"
	"snoozetax/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AlarmBuilder)
	errIs  error
}

func TestAlarm(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAlarmBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsOneShot())
		assert.Equal(t, 7, actual.TimeOfDay().Hour())
		assert.Equal(t, int64(500), actual.Penalty().Cents())
		assert.Equal(t, "Morning run", actual.Label().String())
	})

	t.Run("time of day validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "midnight", mutate: func(b *builder.AlarmBuilder) { b.WithTime(0, 0) }},
			{name: "last minute of day", mutate: func(b *builder.AlarmBuilder) { b.WithTime(23, 59) }},
			{name: "hour too large", mutate: func(b *builder.AlarmBuilder) { b.WithTime(24, 0) }, errIs: alarm.ErrInvalidTimeOfDay},
			{name: "negative hour", mutate: func(b *builder.AlarmBuilder) { b.WithTime(-1, 0) }, errIs: alarm.ErrInvalidTimeOfDay},
			{name: "minute too large", mutate: func(b *builder.AlarmBuilder) { b.WithTime(7, 60) }, errIs: alarm.ErrInvalidTimeOfDay},
		})
	})

	t.Run("repeat days validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty set is a one-shot", mutate: func(b *builder.AlarmBuilder) { b.WithOneShot() }},
			{name: "all seven days", mutate: func(b *builder.AlarmBuilder) { b.WithRepeatDays([]int{0, 1, 2, 3, 4, 5, 6}) }},
			{name: "day above saturday", mutate: func(b *builder.AlarmBuilder) { b.WithRepeatDays([]int{7}) }, errIs: alarm.ErrInvalidRepeatDay},
			{name: "negative day", mutate: func(b *builder.AlarmBuilder) { b.WithRepeatDays([]int{-1}) }, errIs: alarm.ErrInvalidRepeatDay},
			{name: "duplicate day", mutate: func(b *builder.AlarmBuilder) { b.WithRepeatDays([]int{1, 1}) }, errIs: alarm.ErrDuplicateRepeat},
		})
	})

	t.Run("penalty validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero penalty allowed", mutate: func(b *builder.AlarmBuilder) { b.WithPenaltyCents(0) }},
			{name: "negative penalty", mutate: func(b *builder.AlarmBuilder) { b.WithPenaltyCents(-1) }, errIs: alarm.ErrNegativePenalty},
		})
	})

	t.Run("label validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty label allowed", mutate: func(b *builder.AlarmBuilder) { b.WithLabel("") }},
			{name: "max length label", mutate: func(b *builder.AlarmBuilder) { b.WithLabel(strings.Repeat("a", alarm.MaxLabelLength)) }},
			{name: "label too long", mutate: func(b *builder.AlarmBuilder) { b.WithLabel(strings.Repeat("a", alarm.MaxLabelLength+1)) }, errIs: alarm.ErrLabelTooLong},
		})
	})

	t.Run("one-shot detection follows the repeat set", func(t *testing.T) {
		oneShot := builder.NewAlarmBuilder().WithOneShot().MustBuildDomain()
		assert.True(t, oneShot.IsOneShot())

		repeating := builder.NewAlarmBuilder().WithRepeatDays([]int{6}).MustBuildDomain()
		assert.False(t, repeating.IsOneShot())
	})

	t.Run("sound defaults when blank", func(t *testing.T) {
		assert.Equal(t, alarm.DefaultSound, alarm.NewSound(""))
		assert.Equal(t, alarm.DefaultSound, alarm.NewSound("   "))
		assert.Equal(t, alarm.Sound("Chime"), alarm.NewSound("Chime"))
	})

	t.Run("activate and deactivate", func(t *testing.T) {
		a := builder.NewAlarmBuilder().MustBuildDomain()
		a.Deactivate()
		assert.False(t, a.IsActive())
		a.Activate()
		assert.True(t, a.IsActive())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAlarmBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
