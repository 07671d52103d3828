package repository

import (
	"context"
	"time"

	"snoozetax/internal/domain/user"
	"snoozetax/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `
	id, email, password_hash, display_name, currency, snooze_minutes,
	total_snoozes, total_lost_cents, discipline_score, is_active, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, tx infra.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, display_name, currency, snooze_minutes,
			total_snoozes, total_lost_cents, discipline_score, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		u.ID(), u.Email().String(), u.PasswordHash(), u.DisplayName(),
		u.Settings().Currency(), u.Settings().SnoozeMinutes(),
		u.Stats().TotalSnoozes(), u.Stats().TotalLostCents(), u.Stats().DisciplineScore(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapDBErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+userColumns+` FROM users WHERE email = $1`, email.String())
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.WrapDBErr("failed to find user by email", err)
	}
	return u, nil
}

// UpdateStats persists only the stats counters; settings and credentials have
// their own paths.
func (r *UserRepository) UpdateStats(ctx context.Context, tx infra.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET total_snoozes = $2, total_lost_cents = $3, discipline_score = $4, updated_at = now()
		WHERE id = $1`,
		u.ID(), u.Stats().TotalSnoozes(), u.Stats().TotalLostCents(), u.Stats().DisciplineScore(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to update user stats", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func (r *UserRepository) UpdateSettings(ctx context.Context, tx infra.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users SET currency = $2, snooze_minutes = $3, updated_at = now() WHERE id = $1`,
		u.ID(), u.Settings().Currency(), u.Settings().SnoozeMinutes(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to update user settings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
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
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(&id, &email, &passwordHash, &displayName, &currency, &snoozeMinutes,
		&totalSnoozes, &totalLostCents, &disciplineScore, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}
	settings, err := user.NewSettings(currency, snoozeMinutes)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		id, emailVO, passwordHash, displayName, settings,
		user.NewStats(totalSnoozes, totalLostCents, disciplineScore),
		isActive, createdAt, updatedAt,
	), nil
}
