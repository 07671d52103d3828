package request

import (
	"snoozetax/internal/usecase"
)

type CreateAlarmRequest struct {
	Hour         int    `json:"hour" binding:"min=0,max=23"`
	Minute       int    `json:"minute" binding:"min=0,max=59"`
	RepeatDays   []int  `json:"repeat_days"`
	PenaltyCents int64  `json:"penalty_cents" binding:"min=0"`
	Sound        string `json:"sound"`
	Label        string `json:"label" binding:"max=100"`
	TierID       string `json:"tier_id"`
}

func (r CreateAlarmRequest) ToInput() usecase.AlarmInput {
	return usecase.AlarmInput{
		Hour:         r.Hour,
		Minute:       r.Minute,
		RepeatDays:   r.RepeatDays,
		PenaltyCents: r.PenaltyCents,
		Sound:        r.Sound,
		Label:        r.Label,
		TierID:       r.TierID,
	}
}

type UpdateAlarmRequest = CreateAlarmRequest

type ToggleAlarmRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type SnoozeRequest struct {
	// OffsetMinutes overrides the account default when set.
	OffsetMinutes int `json:"offset_minutes" binding:"omitempty,min=1,max=60"`
}
