package localtime

import (
	"time"

	"github.com/shubham-kumr/portfolio/internal/scheduler"
)

// DefaultInterval is how often the display refreshes.
const DefaultInterval = time.Second

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithInterval overrides the refresh interval.
func WithInterval(d time.Duration) DisplayOption {
	return func(disp *Display) { disp.interval = d }
}

// Display republishes the current reading on a fixed interval while active.
type Display struct {
	sched    scheduler.Scheduler
	format   *Formatter
	publish  func(Reading)
	interval time.Duration

	latest Reading
	ticker *scheduler.Handle

	active      bool
	deactivated bool
}

// NewDisplay returns an inactive Display. publish may be nil.
func NewDisplay(sched scheduler.Scheduler, f *Formatter, publish func(Reading), opts ...DisplayOption) *Display {
	d := &Display{
		sched:    sched,
		format:   f,
		publish:  publish,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Activate publishes the current reading immediately and then once per
// interval. A second call, or a call after Deactivate, does nothing.
func (d *Display) Activate() {
	if d.active || d.deactivated {
		return
	}
	d.active = true
	d.refresh()
	d.ticker = d.sched.Every(d.interval, d.refresh)
}

// Deactivate stops publishing for good.
func (d *Display) Deactivate() {
	if d.deactivated {
		return
	}
	d.deactivated = true
	d.active = false
	d.ticker.Cancel()
}

func (d *Display) refresh() {
	d.latest = d.format.Format(d.sched.Now())
	if d.publish != nil {
		d.publish(d.latest)
	}
}

// Latest returns the most recently published reading.
func (d *Display) Latest() Reading {
	return d.latest
}

// Active reports whether the display is publishing.
func (d *Display) Active() bool {
	return d.active
}
