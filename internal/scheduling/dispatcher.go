package scheduling

import (
	"context"
	"time"

	"snoozetax/internal/domain/schedule"
	"snoozetax/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDispatcherClosed = errs.New("dispatcher is closed")

// Payload is the notification content delivered back to the client when a
// trigger fires. AlarmID is the correlation field the client uses to open the
// ringing screen for the right alarm.
type Payload struct {
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Sound   string            `json:"sound"`
	AlarmID uuid.UUID         `json:"alarm_id"`
	Role    schedule.ItemRole `json:"role"`
}

// Dispatcher is the external collaborator that fires device notifications.
// Arm replaces any trigger already registered under the same id, which is what
// makes re-scheduling idempotent. Disarm treats an unknown trigger id as
// success.
type Dispatcher interface {
	Arm(ctx context.Context, triggerID string, fireAt time.Time, payload Payload) error
	Disarm(ctx context.Context, triggerID string) error
}
