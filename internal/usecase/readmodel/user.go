package readmodel

import (
	"time"

	"snoozetax/internal/domain/user"

	"github.com/google/uuid"
)

type UserRM struct {
	ID              uuid.UUID
	Email           string
	DisplayName     string
	Currency        string
	SnoozeMinutes   int
	TotalSnoozes    int
	TotalLostCents  int64
	DisciplineScore int
	IsActive        bool
	CreatedAt       time.Time
}

func NewUserRM(u *user.User) *UserRM {
	return &UserRM{
		ID:              u.ID(),
		Email:           u.Email().String(),
		DisplayName:     u.DisplayName(),
		Currency:        u.Settings().Currency(),
		SnoozeMinutes:   u.Settings().SnoozeMinutes(),
		TotalSnoozes:    u.Stats().TotalSnoozes(),
		TotalLostCents:  u.Stats().TotalLostCents(),
		DisciplineScore: u.Stats().DisciplineScore(),
		IsActive:        u.IsActive(),
		CreatedAt:       u.CreatedAt(),
	}
}
