package alarm

import (
	"time"

	"github.com/google/uuid"
)

// Alarm is the schedulable entity. The repeat pattern and time-of-day are the
// persisted configuration; the concrete next fire moment is always derived
// from them at scheduling time, never stored.
type Alarm struct {
	id           uuid.UUID
	userID       uuid.UUID
	timeOfDay    TimeOfDay
	repeatDays   RepeatDays
	isActive     bool
	penalty      Penalty
	sound        Sound
	label        Label
	tierID       string
	snoozedUntil *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAlarm(
	userID uuid.UUID,
	timeOfDay TimeOfDay,
	repeatDays RepeatDays,
	penalty Penalty,
	sound Sound,
	label Label,
	tierID string,
) *Alarm {
	return &Alarm{
		id:         uuid.New(),
		userID:     userID,
		timeOfDay:  timeOfDay,
		repeatDays: repeatDays,
		isActive:   true,
		penalty:    penalty,
		sound:      sound,
		label:      label,
		tierID:     tierID,
	}
}

func ReconstructAlarm(
	id, userID uuid.UUID,
	timeOfDay TimeOfDay,
	repeatDays RepeatDays,
	isActive bool,
	penalty Penalty,
	sound Sound,
	label Label,
	tierID string,
	snoozedUntil *time.Time,
	createdAt, updatedAt time.Time,
) *Alarm {
	return &Alarm{
		id:           id,
		userID:       userID,
		timeOfDay:    timeOfDay,
		repeatDays:   repeatDays,
		isActive:     isActive,
		penalty:      penalty,
		sound:        sound,
		label:        label,
		tierID:       tierID,
		snoozedUntil: snoozedUntil,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// IsOneShot reports whether the alarm should deactivate after firing once.
func (a *Alarm) IsOneShot() bool {
	return a.repeatDays.IsEmpty()
}

func (a *Alarm) Activate()   { a.isActive = true }
func (a *Alarm) Deactivate() { a.isActive = false }

func (a *Alarm) ID() uuid.UUID            { return a.id }
func (a *Alarm) UserID() uuid.UUID        { return a.userID }
func (a *Alarm) TimeOfDay() TimeOfDay     { return a.timeOfDay }
func (a *Alarm) RepeatDays() RepeatDays   { return a.repeatDays }
func (a *Alarm) IsActive() bool           { return a.isActive }
func (a *Alarm) Penalty() Penalty         { return a.penalty }
func (a *Alarm) Sound() Sound             { return a.sound }
func (a *Alarm) Label() Label             { return a.label }
func (a *Alarm) TierID() string           { return a.tierID }
func (a *Alarm) SnoozedUntil() *time.Time { return a.snoozedUntil }
func (a *Alarm) CreatedAt() time.Time     { return a.createdAt }
func (a *Alarm) UpdatedAt() time.Time     { return a.updatedAt }
