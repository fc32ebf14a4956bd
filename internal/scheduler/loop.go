package scheduler

import (
	"context"
	"sync"
	"time"
)

// Loop is a real-time Scheduler. Timers fire on their own goroutines but
// only enqueue work; every callback runs on the goroutine that called Run.
type Loop struct {
	clock Clock
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop returns a Loop backed by the system clock.
func NewLoop() *Loop {
	return &Loop{
		clock: RealClock{},
		queue: make(chan func()),
		done:  make(chan struct{}),
	}
}

// Now returns the current time.
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// Every runs fn every interval until the returned handle is cancelled.
// Ticks that arrive while the loop is busy are dropped, not queued.
func (l *Loop) Every(interval time.Duration, fn func()) *Handle {
	mustPositive(interval)
	ticker := time.NewTicker(interval)
	quit := make(chan struct{})
	h := newHandle(func() {
		ticker.Stop()
		close(quit)
	})

	go func() {
		for {
			select {
			case <-ticker.C:
				l.enqueue(h, fn)
			case <-quit:
				return
			case <-l.done:
				ticker.Stop()
				return
			}
		}
	}()
	return h
}

// After runs fn once after delay unless the handle is cancelled first.
func (l *Loop) After(delay time.Duration, fn func()) *Handle {
	mustPositive(delay)
	h := newHandle(nil)
	timer := time.AfterFunc(delay, func() {
		l.enqueue(h, fn)
	})
	h.stop = func() { timer.Stop() }
	return h
}

// Post runs fn on the loop goroutine. It is dropped if the loop has stopped.
func (l *Loop) Post(fn func()) {
	l.enqueue(nil, fn)
}

// enqueue hands fn to the loop. The cancellation check happens on the loop
// goroutine, so a task cancelled by an earlier callback never runs.
func (l *Loop) enqueue(h *Handle, fn func()) {
	task := func() {
		if h != nil && h.Cancelled() {
			return
		}
		fn()
	}
	select {
	case l.queue <- task:
	case <-l.done:
	}
}

// Run executes queued callbacks until ctx is done or Stop is called. It
// returns ctx.Err() when the context ended the loop and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case task := <-l.queue:
			select {
			case <-l.done:
				return nil
			default:
				task()
			}
		}
	}
}

// Stop ends Run. Work enqueued afterwards is discarded.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Stopped returns a channel closed once the loop has stopped.
func (l *Loop) Stopped() <-chan struct{} {
	return l.done
}
