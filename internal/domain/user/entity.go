package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  string
	settings     Settings
	stats        Stats
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, displayName string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		settings:     DefaultSettings(),
		stats:        InitialStats(),
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	displayName string,
	settings Settings,
	stats Stats,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		settings:     settings,
		stats:        stats,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) RecordSnooze(penaltyCents int64) {
	u.stats = u.stats.AfterSnooze(penaltyCents)
}

func (u *User) RecordWakeUp() {
	u.stats = u.stats.AfterWakeUp()
}

func (u *User) ApplySettings(s Settings) {
	u.settings = s
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) Settings() Settings   { return u.settings }
func (u *User) Stats() Stats         { return u.stats }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
