package builder

import (
	"time"

	"snoozetax/internal/domain/user"

	"github.com/google/uuid"
)

type UserBuilder struct {
	id              uuid.UUID
	email           string
	passwordHash    string
	displayName     string
	currency        string
	snoozeMinutes   int
	totalSnoozes    int
	totalLostCents  int64
	disciplineScore int
	isActive        bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		id:              uuid.New(),
		email:           "sleeper@example.com",
		passwordHash:    "$2a$10$testhashtesthashtesthash",
		displayName:     "Heavy Sleeper",
		currency:        "USD",
		snoozeMinutes:   9,
		disciplineScore: 100,
		isActive:        true,
	}
}

func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder           { b.id = id; return b }
func (b *UserBuilder) WithEmail(email string) *UserBuilder        { b.email = email; return b }
func (b *UserBuilder) WithSnoozeMinutes(m int) *UserBuilder       { b.snoozeMinutes = m; return b }
func (b *UserBuilder) WithDisciplineScore(score int) *UserBuilder { b.disciplineScore = score; return b }
func (b *UserBuilder) WithStats(snoozes int, lostCents int64) *UserBuilder {
	b.totalSnoozes = snoozes
	b.totalLostCents = lostCents
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.email)
	if err != nil {
		return nil, err
	}
	settings, err := user.NewSettings(b.currency, b.snoozeMinutes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return user.ReconstructUser(
		b.id, email, b.passwordHash, b.displayName, settings,
		user.NewStats(b.totalSnoozes, b.totalLostCents, b.disciplineScore),
		b.isActive, now, now,
	), nil
}

func (b *UserBuilder) MustBuildDomain() *user.User {
	u, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return u
}
