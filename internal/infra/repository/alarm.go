package repository

import (
	"context"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlarmRepository struct {
	pool *pgxpool.Pool
}

func NewAlarmRepository(pool *pgxpool.Pool) *AlarmRepository {
	return &AlarmRepository{pool: pool}
}

const alarmColumns = `
	id, user_id, hour, minute, repeat_days, is_active,
	penalty_cents, sound, label, tier_id, snoozed_until, created_at, updated_at`

func (r *AlarmRepository) Create(ctx context.Context, tx infra.DBTX, a *alarm.Alarm) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO alarms (id, user_id, hour, minute, repeat_days, is_active,
			penalty_cents, sound, label, tier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		a.ID(), a.UserID(), a.TimeOfDay().Hour(), a.TimeOfDay().Minute(),
		repeatDaysToInt32(a.RepeatDays()), a.IsActive(),
		a.Penalty().Cents(), a.Sound().String(), a.Label().String(), a.TierID(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to create alarm", err)
	}
	return nil
}

func (r *AlarmRepository) FindByID(ctx context.Context, id uuid.UUID) (*alarm.Alarm, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+alarmColumns+` FROM alarms WHERE id = $1`, id)
	a, err := scanAlarm(row)
	if err != nil {
		return nil, infra.WrapDBErr("failed to find alarm", err)
	}
	return a, nil
}

func (r *AlarmRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*alarm.Alarm, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+alarmColumns+` FROM alarms WHERE user_id = $1 ORDER BY hour, minute`, userID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list alarms", err)
	}
	defer rows.Close()

	var alarms []*alarm.Alarm
	for rows.Next() {
		a, scanErr := scanAlarm(rows)
		if scanErr != nil {
			return nil, infra.WrapDBErr("failed to scan alarm row", scanErr)
		}
		alarms = append(alarms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to read alarm rows", err)
	}
	return alarms, nil
}

func (r *AlarmRepository) Update(ctx context.Context, tx infra.DBTX, a *alarm.Alarm) error {
	tag, err := tx.Exec(ctx, `
		UPDATE alarms
		SET hour = $2, minute = $3, repeat_days = $4, is_active = $5,
			penalty_cents = $6, sound = $7, label = $8, tier_id = $9,
			snoozed_until = $10, updated_at = now()
		WHERE id = $1`,
		a.ID(), a.TimeOfDay().Hour(), a.TimeOfDay().Minute(),
		repeatDaysToInt32(a.RepeatDays()), a.IsActive(),
		a.Penalty().Cents(), a.Sound().String(), a.Label().String(), a.TierID(),
		a.SnoozedUntil(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to update alarm", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "alarm not found", nil)
	}
	return nil
}

func (r *AlarmRepository) SetActive(ctx context.Context, tx infra.DBTX, id uuid.UUID, active bool) error {
	tag, err := tx.Exec(ctx, `
		UPDATE alarms SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return infra.WrapDBErr("failed to toggle alarm", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "alarm not found", nil)
	}
	return nil
}

// SetSnoozedUntil writes the snooze override marker; a nil until clears it.
func (r *AlarmRepository) SetSnoozedUntil(ctx context.Context, tx infra.DBTX, id uuid.UUID, until *time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE alarms SET snoozed_until = $2, updated_at = now() WHERE id = $1`, id, until)
	if err != nil {
		return infra.WrapDBErr("failed to record snooze time", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "alarm not found", nil)
	}
	return nil
}

func (r *AlarmRepository) Delete(ctx context.Context, tx infra.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM alarms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapDBErr("failed to delete alarm", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "alarm not found", nil)
	}
	return nil
}

func scanAlarm(row pgx.Row) (*alarm.Alarm, error) {
	var (
		id, userID   uuid.UUID
		hour, minute int
		repeatDays   []int32
		isActive     bool
		penaltyCents int64
		sound        string
		label        string
		tierID       string
		snoozedUntil *time.Time
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &userID, &hour, &minute, &repeatDays, &isActive,
		&penaltyCents, &sound, &label, &tierID, &snoozedUntil, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	tod, err := alarm.NewTimeOfDay(hour, minute)
	if err != nil {
		return nil, err
	}
	days := make([]int, len(repeatDays))
	for i, d := range repeatDays {
		days[i] = int(d)
	}
	repeat, err := alarm.NewRepeatDays(days)
	if err != nil {
		return nil, err
	}
	penalty, err := alarm.NewPenalty(penaltyCents)
	if err != nil {
		return nil, err
	}
	lbl, err := alarm.NewLabel(label)
	if err != nil {
		return nil, err
	}

	return alarm.ReconstructAlarm(
		id, userID, tod, repeat, isActive, penalty,
		alarm.NewSound(sound), lbl, tierID, snoozedUntil, createdAt, updatedAt,
	), nil
}

func repeatDaysToInt32(r alarm.RepeatDays) []int32 {
	days := r.Days()
	out := make([]int32, len(days))
	for i, d := range days {
		out[i] = int32(d)
	}
	return out
}
