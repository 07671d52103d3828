package alarm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day out of range")
	ErrInvalidRepeatDay = errors.New("repeat day must be between 0 (Sunday) and 6 (Saturday)")
	ErrDuplicateRepeat  = errors.New("duplicate repeat day")
	ErrNegativePenalty  = errors.New("penalty amount cannot be negative")
	ErrLabelTooLong     = errors.New("label exceeds maximum length")
)

const MaxLabelLength = 100

// TimeOfDay is a time-zone-naive wall-clock hour/minute. It is interpreted in
// local time at evaluation time, not at creation time.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// On anchors the time-of-day onto the calendar date of ref, in ref's location.
func (t TimeOfDay) On(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.hour, t.minute, 0, 0, ref.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// RepeatDays is the weekly repeat pattern: a set of weekdays, Sunday=0.
// An empty set means the alarm fires once and is then deactivated.
type RepeatDays struct {
	days [7]bool
}

func NewRepeatDays(days []int) (RepeatDays, error) {
	var rd RepeatDays
	for _, d := range days {
		if d < 0 || d > 6 {
			return RepeatDays{}, ErrInvalidRepeatDay
		}
		if rd.days[d] {
			return RepeatDays{}, ErrDuplicateRepeat
		}
		rd.days[d] = true
	}
	return rd, nil
}

func (r RepeatDays) IsEmpty() bool {
	for _, set := range r.days {
		if set {
			return false
		}
	}
	return true
}

func (r RepeatDays) Contains(day time.Weekday) bool {
	return r.days[int(day)]
}

func (r RepeatDays) Days() []int {
	out := make([]int, 0, 7)
	for d, set := range r.days {
		if set {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}

// Sound identifies a ringtone asset. The scheduling engine only uses it to
// pick the burst interval; playback belongs to the client.
type Sound string

const DefaultSound Sound = "Classic"

func NewSound(key string) Sound {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return DefaultSound
	}
	return Sound(trimmed)
}

func (s Sound) String() string { return string(s) }

// Penalty is the amount charged per snooze, in cents.
type Penalty struct {
	cents int64
}

func NewPenalty(cents int64) (Penalty, error) {
	if cents < 0 {
		return Penalty{}, ErrNegativePenalty
	}
	return Penalty{cents: cents}, nil
}

func (p Penalty) Cents() int64 { return p.cents }

func (p Penalty) Dollars() float64 {
	return float64(p.cents) / 100.0
}

type Label struct {
	value string
}

func NewLabel(s string) (Label, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > MaxLabelLength {
		return Label{}, ErrLabelTooLong
	}
	return Label{value: trimmed}, nil
}

func (l Label) String() string { return l.value }
