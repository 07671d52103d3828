package dispatch

import "sync/atomic"

// foregroundPresentation controls whether a fired trigger is surfaced while
// the app is in the foreground. It only affects how the dispatcher presents an
// already-armed trigger; the scheduler never reads it.
var foregroundPresentation atomic.Bool

func init() {
	foregroundPresentation.Store(true)
}

func SetForegroundPresentation(enabled bool) {
	foregroundPresentation.Store(enabled)
}

func ForegroundPresentation() bool {
	return foregroundPresentation.Load()
}
