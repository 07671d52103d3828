//go:build unit

package user_test

import (
	"testing"

	"snoozetax/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  Sleeper@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "sleeper@example.com", email.String())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, s := range []string{"", "not-an-email", "@example.com", "a b@example.com"} {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, s)
		}
	})
}

func TestSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := user.DefaultSettings()
		assert.Equal(t, "USD", s.Currency())
		assert.Equal(t, 9, s.SnoozeMinutes())
	})

	t.Run("currency must be a three letter code", func(t *testing.T) {
		s, err := user.NewSettings(" eur ", 5)
		require.NoError(t, err)
		assert.Equal(t, "EUR", s.Currency())

		_, err = user.NewSettings("EURO", 5)
		assert.ErrorIs(t, err, user.ErrInvalidCurrency)
	})

	t.Run("snooze minutes must be positive", func(t *testing.T) {
		_, err := user.NewSettings("USD", 0)
		assert.ErrorIs(t, err, user.ErrInvalidSnooze)
	})
}

func TestStats(t *testing.T) {
	t.Run("initial score is the maximum", func(t *testing.T) {
		assert.Equal(t, user.MaxDisciplineScore, user.InitialStats().DisciplineScore())
	})

	t.Run("snooze charges the penalty and docks the score", func(t *testing.T) {
		after := user.InitialStats().AfterSnooze(500)
		assert.Equal(t, 1, after.TotalSnoozes())
		assert.Equal(t, int64(500), after.TotalLostCents())
		assert.Equal(t, 95, after.DisciplineScore())
	})

	t.Run("score never drops below zero", func(t *testing.T) {
		stats := user.NewStats(10, 5000, 3)
		after := stats.AfterSnooze(100)
		assert.Equal(t, 0, after.DisciplineScore())
		assert.Equal(t, 11, after.TotalSnoozes())
		assert.Equal(t, int64(5100), after.TotalLostCents())
	})

	t.Run("zero penalty snooze still counts", func(t *testing.T) {
		after := user.InitialStats().AfterSnooze(0)
		assert.Equal(t, 1, after.TotalSnoozes())
		assert.Equal(t, int64(0), after.TotalLostCents())
	})

	t.Run("wake up rewards the score, capped at the maximum", func(t *testing.T) {
		after := user.NewStats(0, 0, 97).AfterWakeUp()
		assert.Equal(t, 99, after.DisciplineScore())

		capped := user.NewStats(0, 0, 99).AfterWakeUp()
		assert.Equal(t, user.MaxDisciplineScore, capped.DisciplineScore())
	})

	t.Run("reconstruction clamps out of range scores", func(t *testing.T) {
		assert.Equal(t, 0, user.NewStats(0, 0, -5).DisciplineScore())
		assert.Equal(t, user.MaxDisciplineScore, user.NewStats(0, 0, 150).DisciplineScore())
	})
}

func TestUserEntity(t *testing.T) {
	t.Run("new user starts with defaults", func(t *testing.T) {
		email, err := user.NewEmail("fresh@example.com")
		require.NoError(t, err)

		u := user.NewUser(email, "hash", "Fresh")
		assert.True(t, u.IsActive())
		assert.Equal(t, user.MaxDisciplineScore, u.Stats().DisciplineScore())
		assert.Equal(t, 9, u.Settings().SnoozeMinutes())
	})

	t.Run("record snooze and wake up mutate stats", func(t *testing.T) {
		email, err := user.NewEmail("mutate@example.com")
		require.NoError(t, err)

		u := user.NewUser(email, "hash", "Mutate")
		u.RecordSnooze(300)
		assert.Equal(t, 1, u.Stats().TotalSnoozes())
		assert.Equal(t, 95, u.Stats().DisciplineScore())

		u.RecordWakeUp()
		assert.Equal(t, 97, u.Stats().DisciplineScore())
	})
}
