package builder

import (
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/usecase"

	"github.com/google/uuid"
)

// AlarmBuilder assembles alarm inputs and entities for tests. Defaults are a
// valid weekday 07:00 alarm with a $5.00 penalty.
type AlarmBuilder struct {
	id           uuid.UUID
	userID       uuid.UUID
	hour         int
	minute       int
	repeatDays   []int
	isActive     bool
	penaltyCents int64
	sound        string
	label        string
	tierID       string
	snoozedUntil *time.Time
}

func NewAlarmBuilder() *AlarmBuilder {
	return &AlarmBuilder{
		id:           uuid.New(),
		userID:       uuid.New(),
		hour:         7,
		minute:       0,
		repeatDays:   []int{1, 2, 3, 4, 5},
		isActive:     true,
		penaltyCents: 500,
		sound:        "Classic",
		label:        "Morning run",
	}
}

func (b *AlarmBuilder) With(mutate func(*AlarmBuilder)) *AlarmBuilder {
	mutate(b)
	return b
}

func (b *AlarmBuilder) WithUserID(id uuid.UUID) *AlarmBuilder      { b.userID = id; return b }
func (b *AlarmBuilder) WithTime(h, m int) *AlarmBuilder            { b.hour, b.minute = h, m; return b }
func (b *AlarmBuilder) WithRepeatDays(days []int) *AlarmBuilder    { b.repeatDays = days; return b }
func (b *AlarmBuilder) WithOneShot() *AlarmBuilder                 { b.repeatDays = nil; return b }
func (b *AlarmBuilder) WithActive(active bool) *AlarmBuilder       { b.isActive = active; return b }
func (b *AlarmBuilder) WithPenaltyCents(cents int64) *AlarmBuilder { b.penaltyCents = cents; return b }
func (b *AlarmBuilder) WithSound(sound string) *AlarmBuilder       { b.sound = sound; return b }
func (b *AlarmBuilder) WithLabel(label string) *AlarmBuilder       { b.label = label; return b }

func (b *AlarmBuilder) WithSnoozedUntil(t time.Time) *AlarmBuilder {
	b.snoozedUntil = &t
	return b
}

func (b *AlarmBuilder) BuildInput() usecase.AlarmInput {
	return usecase.AlarmInput{
		Hour:         b.hour,
		Minute:       b.minute,
		RepeatDays:   b.repeatDays,
		PenaltyCents: b.penaltyCents,
		Sound:        b.sound,
		Label:        b.label,
		TierID:       b.tierID,
	}
}

func (b *AlarmBuilder) BuildDomain() (*alarm.Alarm, error) {
	tod, err := alarm.NewTimeOfDay(b.hour, b.minute)
	if err != nil {
		return nil, err
	}
	repeat, err := alarm.NewRepeatDays(b.repeatDays)
	if err != nil {
		return nil, err
	}
	penalty, err := alarm.NewPenalty(b.penaltyCents)
	if err != nil {
		return nil, err
	}
	label, err := alarm.NewLabel(b.label)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return alarm.ReconstructAlarm(
		b.id, b.userID, tod, repeat, b.isActive, penalty,
		alarm.NewSound(b.sound), label, b.tierID, b.snoozedUntil, now, now,
	), nil
}

// MustBuildDomain panics on invalid defaults; intended for tests that only
// need a valid alarm, not validation coverage.
func (b *AlarmBuilder) MustBuildDomain() *alarm.Alarm {
	a, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return a
}
