package schedule

import (
	"time"

	"snoozetax/internal/domain/alarm"
)

// Tuning holds the wall-clock tolerance constants for next-occurrence
// computation. The values are product tuning, so callers inject them from
// configuration instead of relying on hard-coded numbers.
type Tuning struct {
	// GraceWindow is how far in the past a one-shot target may be and still
	// count as "meant for right now" instead of "missed, defer a day".
	GraceWindow time.Duration
	// ImmediateDelay is the offset applied when a target falls inside the
	// grace window.
	ImmediateDelay time.Duration
}

func DefaultTuning() Tuning {
	return Tuning{
		GraceWindow:    60 * time.Second,
		ImmediateDelay: 5 * time.Second,
	}
}

// NextOccurrence computes the next concrete fire moment for a time-of-day and
// weekly repeat pattern, evaluated at now. Pure function of its inputs.
//
// With an empty repeat set the result is today's occurrence if it is still
// ahead (or within the grace window, in which case it fires almost
// immediately), otherwise tomorrow's. With a non-empty set the calendar is
// scanned day by day from now's date inclusive; the first candidate strictly
// after now whose weekday is in the set wins. The scan is bounded at eight
// days, which always yields a result: the worst case is the same weekday one
// week ahead.
func NextOccurrence(tod alarm.TimeOfDay, repeat alarm.RepeatDays, now time.Time, tuning Tuning) time.Time {
	if repeat.IsEmpty() {
		candidate := tod.On(now)
		delta := candidate.Sub(now)
		switch {
		case delta < -tuning.GraceWindow:
			return candidate.AddDate(0, 0, 1)
		case delta < 0:
			return now.Add(tuning.ImmediateDelay)
		default:
			return candidate
		}
	}

	for offset := 0; offset <= 7; offset++ {
		candidate := tod.On(now.AddDate(0, 0, offset))
		if candidate.After(now) && repeat.Contains(candidate.Weekday()) {
			return candidate
		}
	}

	// Unreachable: a non-empty weekday set always matches within 8 days.
	return tod.On(now.AddDate(0, 0, 7))
}
