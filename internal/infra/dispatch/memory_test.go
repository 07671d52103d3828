//go:build unit

package dispatch_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"snoozetax/internal/infra/dispatch"
	"snoozetax/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("armed trigger fires through the sink", func(t *testing.T) {
		fired := make(chan string, 1)
		d := dispatch.NewMemoryDispatcher(discardLogger(), func(triggerID string, _ scheduling.Payload) {
			fired <- triggerID
		})
		defer d.Close()

		err := d.Arm(ctx, "t_seq_0", time.Now().Add(10*time.Millisecond), scheduling.Payload{AlarmID: uuid.New()})
		require.NoError(t, err)

		select {
		case id := <-fired:
			assert.Equal(t, "t_seq_0", id)
		case <-time.After(time.Second):
			t.Fatal("trigger never fired")
		}
		assert.Equal(t, 0, d.ArmedCount())
	})

	t.Run("re-arming a trigger id replaces the pending one", func(t *testing.T) {
		fired := make(chan scheduling.Payload, 2)
		d := dispatch.NewMemoryDispatcher(discardLogger(), func(_ string, p scheduling.Payload) {
			fired <- p
		})
		defer d.Close()

		require.NoError(t, d.Arm(ctx, "t_seq_0", time.Now().Add(20*time.Millisecond), scheduling.Payload{Title: "old"}))
		require.NoError(t, d.Arm(ctx, "t_seq_0", time.Now().Add(20*time.Millisecond), scheduling.Payload{Title: "new"}))
		assert.Equal(t, 1, d.ArmedCount())

		select {
		case p := <-fired:
			assert.Equal(t, "new", p.Title)
		case <-time.After(time.Second):
			t.Fatal("trigger never fired")
		}

		select {
		case <-fired:
			t.Fatal("replaced trigger fired too")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("disarm stops a pending trigger", func(t *testing.T) {
		fired := make(chan string, 1)
		d := dispatch.NewMemoryDispatcher(discardLogger(), func(triggerID string, _ scheduling.Payload) {
			fired <- triggerID
		})
		defer d.Close()

		require.NoError(t, d.Arm(ctx, "t_seq_0", time.Now().Add(50*time.Millisecond), scheduling.Payload{}))
		require.NoError(t, d.Disarm(ctx, "t_seq_0"))
		assert.Equal(t, 0, d.ArmedCount())

		select {
		case <-fired:
			t.Fatal("disarmed trigger fired")
		case <-time.After(150 * time.Millisecond):
		}
	})

	t.Run("disarming an unknown id succeeds", func(t *testing.T) {
		d := dispatch.NewMemoryDispatcher(discardLogger(), nil)
		defer d.Close()

		assert.NoError(t, d.Disarm(ctx, "never_armed_seq_7"))
	})

	t.Run("closed dispatcher rejects arming", func(t *testing.T) {
		d := dispatch.NewMemoryDispatcher(discardLogger(), nil)
		require.NoError(t, d.Arm(ctx, "t_seq_0", time.Now().Add(time.Hour), scheduling.Payload{}))

		d.Close()
		assert.Equal(t, 0, d.ArmedCount())

		err := d.Arm(ctx, "t_seq_1", time.Now().Add(time.Hour), scheduling.Payload{})
		assert.ErrorIs(t, err, scheduling.ErrDispatcherClosed)
	})
}

func TestForegroundPresentation(t *testing.T) {
	assert.True(t, dispatch.ForegroundPresentation())

	dispatch.SetForegroundPresentation(false)
	assert.False(t, dispatch.ForegroundPresentation())

	dispatch.SetForegroundPresentation(true)
	assert.True(t, dispatch.ForegroundPresentation())
}
