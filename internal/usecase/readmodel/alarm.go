package readmodel

import (
	"time"

	"snoozetax/internal/domain/alarm"

	"github.com/google/uuid"
)

type AlarmRM struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Hour         int
	Minute       int
	RepeatDays   []int
	IsActive     bool
	PenaltyCents int64
	Sound        string
	Label        string
	TierID       string
	SnoozedUntil *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewAlarmRM(a *alarm.Alarm) *AlarmRM {
	return &AlarmRM{
		ID:           a.ID(),
		UserID:       a.UserID(),
		Hour:         a.TimeOfDay().Hour(),
		Minute:       a.TimeOfDay().Minute(),
		RepeatDays:   a.RepeatDays().Days(),
		IsActive:     a.IsActive(),
		PenaltyCents: a.Penalty().Cents(),
		Sound:        a.Sound().String(),
		Label:        a.Label().String(),
		TierID:       a.TierID(),
		SnoozedUntil: a.SnoozedUntil(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func NewAlarmRMs(alarms []*alarm.Alarm) []*AlarmRM {
	out := make([]*AlarmRM, len(alarms))
	for i, a := range alarms {
		out[i] = NewAlarmRM(a)
	}
	return out
}
