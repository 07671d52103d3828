package request

import (
	"snoozetax/internal/usecase"
)

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=50"`
}

func (r SignUpRequest) ToInput() usecase.SignUpInput {
	return usecase.SignUpInput{
		Email:       r.Email,
		Password:    r.Password,
		DisplayName: r.DisplayName,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateSettingsRequest struct {
	Currency      string `json:"currency" binding:"required,len=3"`
	SnoozeMinutes int    `json:"snooze_minutes" binding:"required,min=1,max=60"`
}

func (r UpdateSettingsRequest) ToInput() usecase.SettingsInput {
	return usecase.SettingsInput{
		Currency:      r.Currency,
		SnoozeMinutes: r.SnoozeMinutes,
	}
}
