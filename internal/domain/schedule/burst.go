package schedule

import (
	"errors"
	"fmt"
	"time"

	"snoozetax/internal/domain/alarm"

	"github.com/google/uuid"
)

var (
	ErrInvalidAnchor   = errors.New("burst anchor must be a valid timestamp")
	ErrInvalidInterval = errors.New("burst interval must be positive")
	ErrInvalidCap      = errors.New("burst item cap must be positive")
)

// longSounds are the ringtone assets whose clips run long enough that
// back-to-back triggers would overlap playback. Unknown keys are short.
var longSounds = map[alarm.Sound]struct{}{
	"Classic":        {},
	"MorningClock":   {},
	"Facility":       {},
	"SpaceShooter":   {},
	"CitySiren":      {},
	"SecurityBreach": {},
	"VintageWarning": {},
}

type ItemRole string

const (
	// RolePrimary marks the first trigger of a burst; it carries the normal
	// notification title.
	RolePrimary ItemRole = "primary"
	// RoleContinuation marks follow-up triggers that keep the ring going.
	RoleContinuation ItemRole = "continuation"
)

// BurstItem is one discrete trigger inside a burst.
type BurstItem struct {
	Index  int
	FireAt time.Time
	Role   ItemRole
}

// TriggerBurst is the ordered expansion of a single fire moment into discrete
// triggers. It is ephemeral: recomputed from the alarm on every schedule, never
// persisted.
type TriggerBurst struct {
	AlarmID uuid.UUID
	Anchor  time.Time
	Items   []BurstItem
}

// TriggerID derives the dispatcher identifier for one burst slot. The mapping
// is deterministic so cancellation can regenerate the full identifier range
// without bookkeeping; alarm ids are unique, so prefixing keeps the namespace
// collision-free.
func TriggerID(alarmID uuid.UUID, index int) string {
	return fmt.Sprintf("%s_seq_%d", alarmID, index)
}

type PlannerConfig struct {
	// BurstDuration is the total span of simulated continuous ringing.
	BurstDuration time.Duration
	// LongSoundInterval spaces triggers for long clips; ShortSoundInterval
	// for everything else.
	LongSoundInterval  time.Duration
	ShortSoundInterval time.Duration
	// MaxItems bounds the burst. The same value bounds the cancellation
	// sweep in the scheduler; keeping one authoritative constant avoids
	// leaking stale triggers when the cap changes.
	MaxItems int
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		BurstDuration:      300 * time.Second,
		LongSoundInterval:  3 * time.Second,
		ShortSoundInterval: 2 * time.Second,
		MaxItems:           50,
	}
}

type Planner struct {
	cfg PlannerConfig
}

func NewPlanner(cfg PlannerConfig) *Planner {
	return &Planner{cfg: cfg}
}

// Interval returns the spacing between consecutive triggers for a sound.
func (p *Planner) Interval(sound alarm.Sound) time.Duration {
	if _, ok := longSounds[sound]; ok {
		return p.cfg.LongSoundInterval
	}
	return p.cfg.ShortSoundInterval
}

// MaxItems exposes the cap so the cancellation sweep uses the same bound as
// planning.
func (p *Planner) MaxItems() int {
	return p.cfg.MaxItems
}

// Plan expands one anchor moment into a bounded burst of trigger timestamps.
// evalTime is the moment the plan is being made; any item whose computed
// timestamp is not strictly after it gets a monotonic near-future fallback so
// the dispatcher never silently drops it as already-past.
func (p *Planner) Plan(alarmID uuid.UUID, anchor time.Time, sound alarm.Sound, evalTime time.Time) (TriggerBurst, error) {
	if anchor.IsZero() {
		return TriggerBurst{}, ErrInvalidAnchor
	}
	interval := p.Interval(sound)
	if interval <= 0 || p.cfg.BurstDuration <= 0 {
		return TriggerBurst{}, ErrInvalidInterval
	}
	if p.cfg.MaxItems <= 0 {
		return TriggerBurst{}, ErrInvalidCap
	}

	count := int((p.cfg.BurstDuration + interval - 1) / interval)
	if count > p.cfg.MaxItems {
		count = p.cfg.MaxItems
	}

	items := make([]BurstItem, 0, count)
	for i := 0; i < count; i++ {
		fireAt := anchor.Add(time.Duration(i) * interval)
		if !fireAt.After(evalTime) {
			fireAt = evalTime.Add(time.Second + time.Duration(i)*time.Second)
		}
		role := RoleContinuation
		if i == 0 {
			role = RolePrimary
		}
		items = append(items, BurstItem{Index: i, FireAt: fireAt, Role: role})
	}

	return TriggerBurst{AlarmID: alarmID, Anchor: anchor, Items: items}, nil
}
