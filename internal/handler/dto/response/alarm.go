package response

import (
	"time"

	"snoozetax/internal/usecase"
	"snoozetax/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AlarmResponse struct {
	ID           uuid.UUID  `json:"id"`
	Hour         int        `json:"hour"`
	Minute       int        `json:"minute"`
	RepeatDays   []int      `json:"repeat_days"`
	IsActive     bool       `json:"is_active"`
	PenaltyCents int64      `json:"penalty_cents"`
	Sound        string     `json:"sound"`
	Label        string     `json:"label"`
	TierID       string     `json:"tier_id,omitempty"`
	SnoozedUntil *time.Time `json:"snoozed_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Scheduling reports whether the trigger burst for this alarm was fully
	// armed after the write. Empty on read-only endpoints.
	Scheduling string `json:"scheduling,omitempty"`
}

func FromAlarmRM(rm *readmodel.AlarmRM, status usecase.SchedulingStatus) *AlarmResponse {
	var resp AlarmResponse
	_ = copier.Copy(&resp, rm)
	resp.Scheduling = string(status)
	return &resp
}

func FromAlarmRMs(rms []*readmodel.AlarmRM) []*AlarmResponse {
	out := make([]*AlarmResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAlarmRM(rm, "")
	}
	return out
}

type SnoozeResponse struct {
	SnoozedUntil    time.Time `json:"snoozed_until"`
	PenaltyCents    int64     `json:"penalty_cents"`
	TotalSnoozes    int       `json:"total_snoozes"`
	TotalLostCents  int64     `json:"total_lost_cents"`
	DisciplineScore int       `json:"discipline_score"`
	Scheduling      string    `json:"scheduling"`
}

type DismissResponse struct {
	Deactivated     bool   `json:"deactivated"`
	DisciplineScore int    `json:"discipline_score"`
	Scheduling      string `json:"scheduling"`
}
