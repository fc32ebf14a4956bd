// Package scheduler provides the timer primitives the page controllers are
// built on: a cancellable repeating task and a cancellable one-shot task,
// both delivered on a single logical thread.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock provides time to the application.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Scheduler runs callbacks after a delay or on a fixed interval. Callbacks
// registered on one Scheduler never run concurrently with each other.
type Scheduler interface {
	Clock
	Every(interval time.Duration, fn func()) *Handle
	After(delay time.Duration, fn func()) *Handle
}

// Handle is the cancellation side of a scheduled task.
type Handle struct {
	cancelled atomic.Bool
	once      sync.Once
	stop      func()
}

func newHandle(stop func()) *Handle {
	return &Handle{stop: stop}
}

// Cancel stops the task. Once Cancel returns the callback will not run
// again. Safe to call more than once and from inside the callback itself.
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled.Store(true)
	h.once.Do(func() {
		if h.stop != nil {
			h.stop()
		}
	})
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	if h == nil {
		return true
	}
	return h.cancelled.Load()
}

func mustPositive(d time.Duration) {
	if d <= 0 {
		panic("scheduler: non-positive interval")
	}
}
