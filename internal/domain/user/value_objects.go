package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidSnooze   = errors.New("default snooze must be positive")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

// Settings are the per-user preferences the snooze flow reads: the currency
// penalties are denominated in and the default snooze offset.
type Settings struct {
	currency      string
	snoozeMinutes int
}

const (
	DefaultCurrency      = "USD"
	DefaultSnoozeMinutes = 9
)

func NewSettings(currency string, snoozeMinutes int) (Settings, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(currency))
	if len(trimmed) != 3 {
		return Settings{}, ErrInvalidCurrency
	}
	if snoozeMinutes <= 0 {
		return Settings{}, ErrInvalidSnooze
	}
	return Settings{currency: trimmed, snoozeMinutes: snoozeMinutes}, nil
}

func DefaultSettings() Settings {
	return Settings{currency: DefaultCurrency, snoozeMinutes: DefaultSnoozeMinutes}
}

func (s Settings) Currency() string   { return s.currency }
func (s Settings) SnoozeMinutes() int { return s.snoozeMinutes }

// Stats aggregate a user's snooze history. The discipline score moves down on
// snoozes and up on clean wake-ups, clamped to [0, 100].
type Stats struct {
	totalSnoozes    int
	totalLostCents  int64
	disciplineScore int
}

const (
	MaxDisciplineScore = 100
	snoozeScorePenalty = 5
	wakeUpScoreReward  = 2
)

func NewStats(totalSnoozes int, totalLostCents int64, disciplineScore int) Stats {
	if disciplineScore < 0 {
		disciplineScore = 0
	}
	if disciplineScore > MaxDisciplineScore {
		disciplineScore = MaxDisciplineScore
	}
	return Stats{
		totalSnoozes:    totalSnoozes,
		totalLostCents:  totalLostCents,
		disciplineScore: disciplineScore,
	}
}

func InitialStats() Stats {
	return Stats{disciplineScore: MaxDisciplineScore}
}

func (s Stats) TotalSnoozes() int     { return s.totalSnoozes }
func (s Stats) TotalLostCents() int64 { return s.totalLostCents }
func (s Stats) DisciplineScore() int  { return s.disciplineScore }

func (s Stats) AfterSnooze(penaltyCents int64) Stats {
	score := s.disciplineScore - snoozeScorePenalty
	if score < 0 {
		score = 0
	}
	return Stats{
		totalSnoozes:    s.totalSnoozes + 1,
		totalLostCents:  s.totalLostCents + penaltyCents,
		disciplineScore: score,
	}
}

func (s Stats) AfterWakeUp() Stats {
	score := s.disciplineScore + wakeUpScoreReward
	if score > MaxDisciplineScore {
		score = MaxDisciplineScore
	}
	return Stats{
		totalSnoozes:    s.totalSnoozes,
		totalLostCents:  s.totalLostCents,
		disciplineScore: score,
	}
}
