package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/domain/transaction"
	"snoozetax/internal/domain/user"
	"snoozetax/internal/infra"
	"snoozetax/internal/pkg/clock"
	"snoozetax/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, tx infra.DBTX, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UpdateStats(ctx context.Context, tx infra.DBTX, u *user.User) error
	UpdateSettings(ctx context.Context, tx infra.DBTX, u *user.User) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx infra.DBTX, t *transaction.Transaction) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*transaction.Transaction, error)
}

type SnoozeInput struct {
	AlarmID uuid.UUID
	UserID  uuid.UUID
	// OffsetMinutes overrides the user's configured snooze length when > 0.
	OffsetMinutes int
}

type SnoozeOutcome struct {
	SnoozedUntil time.Time
	PenaltyCents int64
	Stats        user.Stats
	Scheduling   SchedulingStatus
}

type DismissOutcome struct {
	Deactivated bool
	Stats       user.Stats
	Scheduling  SchedulingStatus
}

type SnoozeUseCase interface {
	Snooze(ctx context.Context, input SnoozeInput) (*SnoozeOutcome, error)
	Dismiss(ctx context.Context, alarmID, userID uuid.UUID) (*DismissOutcome, error)
}

// snoozeUseCaseImpl applies the monetary consequences of hitting snooze and
// the reward for waking up. The money, the stats and the alarm's snooze marker
// commit in one database transaction; the trigger burst is re-armed only after
// that commit so a scheduling failure can never charge the user twice.
type snoozeUseCaseImpl struct {
	alarmRepo AlarmRepository
	userRepo  UserRepository
	txRepo    TransactionRepository
	scheduler AlarmScheduler
	uow       UnitOfWork
	clk       clock.Clock
	logger    *slog.Logger
}

func NewSnoozeUseCase(
	alarmRepo AlarmRepository,
	userRepo UserRepository,
	txRepo TransactionRepository,
	scheduler AlarmScheduler,
	uow UnitOfWork,
	clk clock.Clock,
	logger *slog.Logger,
) SnoozeUseCase {
	return &snoozeUseCaseImpl{
		alarmRepo: alarmRepo,
		userRepo:  userRepo,
		txRepo:    txRepo,
		scheduler: scheduler,
		uow:       uow,
		clk:       clk,
		logger:    logger,
	}
}

// Snooze charges the penalty and pushes the alarm's next ring to now plus the
// snooze offset. The anchor is an absolute instant, deliberately independent
// of the alarm's repeat pattern: snoozing a 07:00 alarm at 07:02 must ring at
// 07:11, not tomorrow at 07:00.
func (s *snoozeUseCaseImpl) Snooze(ctx context.Context, input SnoozeInput) (*SnoozeOutcome, error) {
	a, err := s.findOwnedAlarm(ctx, input.AlarmID, input.UserID)
	if err != nil {
		return nil, err
	}
	usr, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	offset := input.OffsetMinutes
	if offset <= 0 {
		offset = usr.Settings().SnoozeMinutes()
	}
	snoozedUntil := s.clk.Now().Add(time.Duration(offset) * time.Minute)

	label := a.Label().String()
	if label == "" {
		label = "alarm"
	}
	penaltyCents := a.Penalty().Cents()
	entry, err := transaction.NewTransaction(
		input.UserID, transaction.TypePenalty, penaltyCents, ptr(a.ID()),
		fmt.Sprintf("Snoozed %q for %d minutes", label, offset),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build penalty entry")
	}
	usr.RecordSnooze(penaltyCents)

	if err := s.commitSnooze(ctx, a.ID(), snoozedUntil, entry, usr); err != nil {
		return nil, err
	}

	s.scheduler.Cancel(ctx, a.ID())
	status := SchedulingOK
	result, err := s.scheduler.ScheduleAt(ctx, a, snoozedUntil)
	switch {
	case err != nil:
		s.logger.Error("failed to arm snoozed burst; alarm may not ring again",
			"alarm_id", a.ID(), "snoozed_until", snoozedUntil, "error", err)
		status = SchedulingFailed
	case result.Failed > 0:
		status = SchedulingDegraded
	}

	return &SnoozeOutcome{
		SnoozedUntil: snoozedUntil,
		PenaltyCents: penaltyCents,
		Stats:        usr.Stats(),
		Scheduling:   status,
	}, nil
}

// Dismiss is the wake-up path. One-shot alarms deactivate; repeating alarms
// re-arm for their next occurrence. Either way the discipline score ticks up.
func (s *snoozeUseCaseImpl) Dismiss(ctx context.Context, alarmID, userID uuid.UUID) (*DismissOutcome, error) {
	a, err := s.findOwnedAlarm(ctx, alarmID, userID)
	if err != nil {
		return nil, err
	}
	usr, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	usr.RecordWakeUp()
	deactivate := a.IsOneShot()

	if err := s.commitDismiss(ctx, a.ID(), deactivate, usr); err != nil {
		return nil, err
	}

	status := SchedulingSkipped
	if deactivate {
		a.Deactivate()
		s.scheduler.Cancel(ctx, a.ID())
	} else {
		result, rerr := s.scheduler.Reschedule(ctx, a)
		switch {
		case rerr != nil:
			s.logger.Error("failed to re-arm repeating alarm after dismiss",
				"alarm_id", a.ID(), "error", rerr)
			status = SchedulingFailed
		case result.Failed > 0:
			status = SchedulingDegraded
		default:
			status = SchedulingOK
		}
	}

	return &DismissOutcome{
		Deactivated: deactivate,
		Stats:       usr.Stats(),
		Scheduling:  status,
	}, nil
}

// commitSnooze writes the penalty entry, the stats bump and the snooze marker
// atomically. Exactly one ledger entry per snooze; a failure anywhere rolls
// back all three.
func (s *snoozeUseCaseImpl) commitSnooze(
	ctx context.Context,
	alarmID uuid.UUID,
	snoozedUntil time.Time,
	entry *transaction.Transaction,
	usr *user.User,
) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		if err := s.txRepo.Create(ctx, tx, entry); err != nil {
			return err
		}
		if err := s.userRepo.UpdateStats(ctx, tx, usr); err != nil {
			return err
		}
		return s.alarmRepo.SetSnoozedUntil(ctx, tx, alarmID, &snoozedUntil)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *snoozeUseCaseImpl) commitDismiss(ctx context.Context, alarmID uuid.UUID, deactivate bool, usr *user.User) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		if err := s.userRepo.UpdateStats(ctx, tx, usr); err != nil {
			return err
		}
		if deactivate {
			if err := s.alarmRepo.SetActive(ctx, tx, alarmID, false); err != nil {
				return err
			}
		}
		// A wake-up consumes any pending snooze override.
		return s.alarmRepo.SetSnoozedUntil(ctx, tx, alarmID, nil)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (s *snoozeUseCaseImpl) findOwnedAlarm(ctx context.Context, alarmID, userID uuid.UUID) (*alarm.Alarm, error) {
	a, err := s.alarmRepo.FindByID(ctx, alarmID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAlarmNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if a.UserID() != userID {
		return nil, ErrAlarmNotOwned
	}
	return a, nil
}

func ptr[T any](v T) *T { return &v }
