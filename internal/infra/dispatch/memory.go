package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"snoozetax/internal/scheduling"
)

// MemoryDispatcher is a timer-backed stand-in for the device notification
// surface. Arming a trigger id that is already armed replaces it, which is the
// idempotency the scheduler relies on; disarming an unknown id succeeds.
type MemoryDispatcher struct {
	mu       sync.Mutex
	triggers map[string]*armedTrigger
	logger   *slog.Logger
	sink     DeliverySink
	closed   bool
}

// DeliverySink receives fired payloads. The default sink just logs; tests
// install a recorder.
type DeliverySink func(triggerID string, payload scheduling.Payload)

type armedTrigger struct {
	timer   *time.Timer
	fireAt  time.Time
	payload scheduling.Payload
}

func NewMemoryDispatcher(logger *slog.Logger, sink DeliverySink) *MemoryDispatcher {
	d := &MemoryDispatcher{
		triggers: make(map[string]*armedTrigger),
		logger:   logger,
	}
	if sink == nil {
		sink = d.logDelivery
	}
	d.sink = sink
	return d
}

func (d *MemoryDispatcher) Arm(_ context.Context, triggerID string, fireAt time.Time, payload scheduling.Payload) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return scheduling.ErrDispatcherClosed
	}

	if existing, ok := d.triggers[triggerID]; ok {
		existing.timer.Stop()
	}

	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}
	d.triggers[triggerID] = &armedTrigger{
		fireAt:  fireAt,
		payload: payload,
		timer: time.AfterFunc(delay, func() {
			d.fire(triggerID)
		}),
	}
	return nil
}

func (d *MemoryDispatcher) Disarm(_ context.Context, triggerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.triggers[triggerID]; ok {
		t.timer.Stop()
		delete(d.triggers, triggerID)
	}
	// Unknown trigger ids are fine: cancelling an unarmed slot is a no-op.
	return nil
}

// ArmedCount reports how many triggers are currently pending.
func (d *MemoryDispatcher) ArmedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.triggers)
}

// Close stops every pending timer. Armed triggers are dropped, not fired.
func (d *MemoryDispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	for id, t := range d.triggers {
		t.timer.Stop()
		delete(d.triggers, id)
	}
}

func (d *MemoryDispatcher) fire(triggerID string) {
	d.mu.Lock()
	t, ok := d.triggers[triggerID]
	if ok {
		delete(d.triggers, triggerID)
	}
	d.mu.Unlock()
	if !ok {
		return
	}
	d.sink(triggerID, t.payload)
}

func (d *MemoryDispatcher) logDelivery(triggerID string, payload scheduling.Payload) {
	d.logger.Info("trigger fired",
		"trigger_id", triggerID,
		"alarm_id", payload.AlarmID,
		"role", payload.Role,
		"foreground_presentation", ForegroundPresentation(),
	)
}
