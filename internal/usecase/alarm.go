package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/infra"
	"snoozetax/internal/pkg/errs"
	"snoozetax/internal/scheduling"
	"snoozetax/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAlarmNotFound           = errors.New("alarm not found")
	ErrAlarmNotOwned           = errors.New("alarm not owned by user")
	ErrInvalidAlarmInput       = errors.New("invalid alarm input")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// SchedulingStatus reports whether the live trigger burst matches the alarm
// that was just saved. The persistence write has already succeeded by the time
// this is computed; a bad status means the caller should surface a warning,
// not that the edit was lost.
type SchedulingStatus string

const (
	// SchedulingOK: full burst armed.
	SchedulingOK SchedulingStatus = "ok"
	// SchedulingDegraded: partial burst armed; the alarm will still ring.
	SchedulingDegraded SchedulingStatus = "degraded"
	// SchedulingFailed: nothing armed; the alarm may not ring.
	SchedulingFailed SchedulingStatus = "failed"
	// SchedulingSkipped: alarm is inactive, nothing to arm.
	SchedulingSkipped SchedulingStatus = "skipped"
)

type AlarmRepository interface {
	Create(ctx context.Context, tx infra.DBTX, a *alarm.Alarm) error
	FindByID(ctx context.Context, id uuid.UUID) (*alarm.Alarm, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*alarm.Alarm, error)
	Update(ctx context.Context, tx infra.DBTX, a *alarm.Alarm) error
	SetActive(ctx context.Context, tx infra.DBTX, id uuid.UUID, active bool) error
	SetSnoozedUntil(ctx context.Context, tx infra.DBTX, id uuid.UUID, until *time.Time) error
	Delete(ctx context.Context, tx infra.DBTX, id uuid.UUID) error
}

// AlarmScheduler is the trigger-lifecycle side of the scheduling engine as the
// lifecycle coordinator needs it.
type AlarmScheduler interface {
	Schedule(ctx context.Context, a *alarm.Alarm) (scheduling.Result, error)
	ScheduleAt(ctx context.Context, a *alarm.Alarm, anchor time.Time) (scheduling.Result, error)
	Cancel(ctx context.Context, alarmID uuid.UUID)
	Reschedule(ctx context.Context, a *alarm.Alarm) (scheduling.Result, error)
}

type AlarmInput struct {
	Hour         int
	Minute       int
	RepeatDays   []int
	PenaltyCents int64
	Sound        string
	Label        string
	TierID       string
}

type AlarmUseCase interface {
	CreateAlarm(ctx context.Context, input AlarmInput, userID uuid.UUID) (*readmodel.AlarmRM, SchedulingStatus, error)
	UpdateAlarm(ctx context.Context, id uuid.UUID, input AlarmInput, userID uuid.UUID) (*readmodel.AlarmRM, SchedulingStatus, error)
	ToggleActive(ctx context.Context, id uuid.UUID, active bool, userID uuid.UUID) (SchedulingStatus, error)
	DeleteAlarm(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	GetAlarm(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*readmodel.AlarmRM, error)
	ListAlarms(ctx context.Context, userID uuid.UUID) ([]*readmodel.AlarmRM, error)
}

// alarmUseCaseImpl coordinates the alarm lifecycle: every persistence write
// that changes scheduling-relevant state is followed by a cancel-then-schedule
// pass so at most one live burst exists per alarm. Scheduling runs after the
// write commits and its failure never rolls the write back.
type alarmUseCaseImpl struct {
	alarmRepo AlarmRepository
	scheduler AlarmScheduler
	db        *pgxpool.Pool
	logger    *slog.Logger
}

func NewAlarmUseCase(
	alarmRepo AlarmRepository,
	scheduler AlarmScheduler,
	db *pgxpool.Pool,
	logger *slog.Logger,
) AlarmUseCase {
	return &alarmUseCaseImpl{
		alarmRepo: alarmRepo,
		scheduler: scheduler,
		db:        db,
		logger:    logger,
	}
}

func (u *alarmUseCaseImpl) CreateAlarm(ctx context.Context, input AlarmInput, userID uuid.UUID) (*readmodel.AlarmRM, SchedulingStatus, error) {
	entity, err := input.toDomain(userID)
	if err != nil {
		return nil, SchedulingSkipped, errs.Mark(err, ErrInvalidAlarmInput)
	}

	if err := u.alarmRepo.Create(ctx, u.db, entity); err != nil {
		return nil, SchedulingSkipped, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status := u.applySchedule(ctx, entity)
	return readmodel.NewAlarmRM(entity), status, nil
}

func (u *alarmUseCaseImpl) UpdateAlarm(ctx context.Context, id uuid.UUID, input AlarmInput, userID uuid.UUID) (*readmodel.AlarmRM, SchedulingStatus, error) {
	existing, err := u.findOwned(ctx, id, userID)
	if err != nil {
		return nil, SchedulingSkipped, err
	}

	tod, repeat, penalty, label, derr := input.valueObjects()
	if derr != nil {
		return nil, SchedulingSkipped, errs.Mark(derr, ErrInvalidAlarmInput)
	}

	updated := alarm.ReconstructAlarm(
		existing.ID(), existing.UserID(), tod, repeat, existing.IsActive(),
		penalty, alarm.NewSound(input.Sound), label, input.TierID,
		nil, // an edit clears any pending snooze override
		existing.CreatedAt(), existing.UpdatedAt(),
	)
	if err := u.alarmRepo.Update(ctx, u.db, updated); err != nil {
		return nil, SchedulingSkipped, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status := u.applySchedule(ctx, updated)
	return readmodel.NewAlarmRM(updated), status, nil
}

func (u *alarmUseCaseImpl) ToggleActive(ctx context.Context, id uuid.UUID, active bool, userID uuid.UUID) (SchedulingStatus, error) {
	existing, err := u.findOwned(ctx, id, userID)
	if err != nil {
		return SchedulingSkipped, err
	}

	if err := u.alarmRepo.SetActive(ctx, u.db, id, active); err != nil {
		return SchedulingSkipped, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if active {
		existing.Activate()
		return u.applySchedule(ctx, existing), nil
	}
	existing.Deactivate()
	u.scheduler.Cancel(ctx, id)
	return SchedulingSkipped, nil
}

func (u *alarmUseCaseImpl) DeleteAlarm(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	if _, err := u.findOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := u.alarmRepo.Delete(ctx, u.db, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.scheduler.Cancel(ctx, id)
	return nil
}

func (u *alarmUseCaseImpl) GetAlarm(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*readmodel.AlarmRM, error) {
	entity, err := u.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return readmodel.NewAlarmRM(entity), nil
}

func (u *alarmUseCaseImpl) ListAlarms(ctx context.Context, userID uuid.UUID) ([]*readmodel.AlarmRM, error) {
	alarms, err := u.alarmRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewAlarmRMs(alarms), nil
}

// applySchedule runs the cancel-then-schedule pass for an alarm whose
// persisted state just changed. Failures degrade to a status the handler can
// surface; they never undo the write.
func (u *alarmUseCaseImpl) applySchedule(ctx context.Context, a *alarm.Alarm) SchedulingStatus {
	result, err := u.scheduler.Reschedule(ctx, a)
	switch {
	case err != nil:
		u.logger.Error("failed to schedule alarm; it may not ring",
			"alarm_id", a.ID(), "error", err)
		return SchedulingFailed
	case !a.IsActive():
		return SchedulingSkipped
	case result.Failed > 0:
		u.logger.Warn("partial trigger burst armed",
			"alarm_id", a.ID(), "armed", result.Armed, "failed", result.Failed)
		return SchedulingDegraded
	default:
		return SchedulingOK
	}
}

func (u *alarmUseCaseImpl) findOwned(ctx context.Context, id, userID uuid.UUID) (*alarm.Alarm, error) {
	entity, err := u.alarmRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAlarmNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if entity.UserID() != userID {
		return nil, ErrAlarmNotOwned
	}
	return entity, nil
}

func (in AlarmInput) toDomain(userID uuid.UUID) (*alarm.Alarm, error) {
	tod, repeat, penalty, label, err := in.valueObjects()
	if err != nil {
		return nil, err
	}
	return alarm.NewAlarm(userID, tod, repeat, penalty, alarm.NewSound(in.Sound), label, in.TierID), nil
}

func (in AlarmInput) valueObjects() (alarm.TimeOfDay, alarm.RepeatDays, alarm.Penalty, alarm.Label, error) {
	tod, err := alarm.NewTimeOfDay(in.Hour, in.Minute)
	if err != nil {
		return alarm.TimeOfDay{}, alarm.RepeatDays{}, alarm.Penalty{}, alarm.Label{}, err
	}
	repeat, err := alarm.NewRepeatDays(in.RepeatDays)
	if err != nil {
		return alarm.TimeOfDay{}, alarm.RepeatDays{}, alarm.Penalty{}, alarm.Label{}, err
	}
	penalty, err := alarm.NewPenalty(in.PenaltyCents)
	if err != nil {
		return alarm.TimeOfDay{}, alarm.RepeatDays{}, alarm.Penalty{}, alarm.Label{}, err
	}
	label, err := alarm.NewLabel(in.Label)
	if err != nil {
		return alarm.TimeOfDay{}, alarm.RepeatDays{}, alarm.Penalty{}, alarm.Label{}, err
	}
	return tod, repeat, penalty, label, nil
}
