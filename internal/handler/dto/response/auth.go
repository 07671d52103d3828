package response

import (
	"time"

	"snoozetax/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	Currency        string    `json:"currency"`
	SnoozeMinutes   int       `json:"snooze_minutes"`
	TotalSnoozes    int       `json:"total_snoozes"`
	TotalLostCents  int64     `json:"total_lost_cents"`
	DisciplineScore int       `json:"discipline_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
