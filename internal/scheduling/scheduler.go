package scheduling

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"snoozetax/internal/domain/alarm"
	"snoozetax/internal/domain/schedule"
	"snoozetax/internal/pkg/clock"
	"snoozetax/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrAlarmInactive = errs.New("cannot schedule an inactive alarm")
	ErrAllArmsFailed = errs.New("every burst trigger failed to arm")
)

// disarmConcurrency bounds the parallel fan-out of the cancellation sweep.
const disarmConcurrency = 16

// Result reports how much of a burst actually made it to the dispatcher.
// A partial burst still rings, so partial failure is not an error; the caller
// gets the count and decides whether to warn.
type Result struct {
	Armed  int
	Failed int
}

// Scheduler owns the trigger lifecycle for alarms: it expands an alarm into a
// trigger burst, arms it on the dispatcher, and sweeps the full identifier
// range on cancellation. At most one live burst exists per alarm because every
// path through here cancels before it schedules.
type Scheduler struct {
	dispatcher Dispatcher
	planner    *schedule.Planner
	clk        clock.Clock
	tuning     schedule.Tuning
	logger     *slog.Logger
}

func NewScheduler(
	dispatcher Dispatcher,
	planner *schedule.Planner,
	clk clock.Clock,
	tuning schedule.Tuning,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		planner:    planner,
		clk:        clk,
		tuning:     tuning,
		logger:     logger,
	}
}

// Schedule arms a burst anchored at the alarm's next natural occurrence.
func (s *Scheduler) Schedule(ctx context.Context, a *alarm.Alarm) (Result, error) {
	if !a.IsActive() {
		return Result{}, ErrAlarmInactive
	}
	now := s.clk.Now()
	anchor := schedule.NextOccurrence(a.TimeOfDay(), a.RepeatDays(), now, s.tuning)
	return s.armBurst(ctx, a, anchor, now)
}

// ScheduleAt arms a burst at an explicit anchor, bypassing the repeat pattern.
// This is the snooze path: recomputing NextOccurrence here would jump the
// alarm to the next day instead of a few minutes out.
func (s *Scheduler) ScheduleAt(ctx context.Context, a *alarm.Alarm, anchor time.Time) (Result, error) {
	if !a.IsActive() {
		return Result{}, ErrAlarmInactive
	}
	return s.armBurst(ctx, a, anchor, s.clk.Now())
}

// Cancel sweeps the alarm's entire trigger identifier range, disarming every
// slot up to the planner's cap whether or not it was armed. No bookkeeping of
// which slots were used; a bounded pile of no-op disarms is cheaper than
// tracking. Disarm failures are logged and swallowed: the worst outcome of a
// missed disarm is one stale trigger firing with an outdated payload.
func (s *Scheduler) Cancel(ctx context.Context, alarmID uuid.UUID) {
	g := new(errgroup.Group)
	g.SetLimit(disarmConcurrency)
	for i := 0; i < s.planner.MaxItems(); i++ {
		triggerID := schedule.TriggerID(alarmID, i)
		g.Go(func() error {
			if err := s.dispatcher.Disarm(ctx, triggerID); err != nil {
				s.logger.Warn("failed to disarm trigger",
					"trigger_id", triggerID,
					"alarm_id", alarmID,
					"error", err,
				)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// Reschedule is the single path by which an edit, toggle, or deletion takes
// effect. The cancel phase fully completes before scheduling starts; an
// interleaving could leave a stale trigger alive next to a fresh burst.
func (s *Scheduler) Reschedule(ctx context.Context, a *alarm.Alarm) (Result, error) {
	s.Cancel(ctx, a.ID())
	if !a.IsActive() {
		return Result{}, nil
	}
	return s.Schedule(ctx, a)
}

func (s *Scheduler) armBurst(ctx context.Context, a *alarm.Alarm, anchor, evalTime time.Time) (Result, error) {
	burst, err := s.planner.Plan(a.ID(), anchor, a.Sound(), evalTime)
	if err != nil {
		return Result{}, errs.Wrap(err, "failed to plan trigger burst")
	}

	title := a.Label().String()
	if title == "" {
		title = "Wake up!"
	}
	body := fmt.Sprintf("Snoozing costs %.2f", a.Penalty().Dollars())

	var failed atomic.Int64
	g := new(errgroup.Group)
	for _, item := range burst.Items {
		payload := Payload{
			Title:   title,
			Body:    body,
			Sound:   a.Sound().String(),
			AlarmID: a.ID(),
			Role:    item.Role,
		}
		if item.Role == schedule.RoleContinuation {
			payload.Title = title + " (still ringing)"
		}
		triggerID := schedule.TriggerID(a.ID(), item.Index)
		fireAt := item.FireAt
		g.Go(func() error {
			if armErr := s.dispatcher.Arm(ctx, triggerID, fireAt, payload); armErr != nil {
				// A partial burst still rings; keep arming the rest.
				failed.Add(1)
				s.logger.Warn("failed to arm trigger",
					"trigger_id", triggerID,
					"alarm_id", a.ID(),
					"fire_at", fireAt,
					"error", armErr,
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := Result{
		Armed:  len(burst.Items) - int(failed.Load()),
		Failed: int(failed.Load()),
	}
	if result.Armed == 0 && result.Failed > 0 {
		return result, ErrAllArmsFailed
	}

	s.logger.Info("armed trigger burst",
		"alarm_id", a.ID(),
		"anchor", anchor,
		"armed", result.Armed,
		"failed", result.Failed,
	)
	return result, nil
}
