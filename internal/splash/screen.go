// Package splash hosts the loading view for one viewer: the progress
// counter and the zone clock, followed by the switch to the profile page.
package splash

import (
	"time"

	"github.com/shubham-kumr/portfolio/internal/loading"
	"github.com/shubham-kumr/portfolio/internal/localtime"
	"github.com/shubham-kumr/portfolio/internal/scheduler"
)

// Renderer receives view updates. Calls arrive on the scheduler's callback
// thread, so implementations need no locking of their own.
type Renderer interface {
	Progress(value int)
	Clock(r localtime.Reading)
	Profile()
}

// Timings groups the durations that drive the splash screen.
type Timings struct {
	Tick          time.Duration
	Settle        time.Duration
	ClockInterval time.Duration
}

// DefaultTimings returns 40ms ticks, a 500ms settle and a 1s clock.
func DefaultTimings() Timings {
	return Timings{
		Tick:          loading.DefaultTick,
		Settle:        loading.DefaultSettle,
		ClockInterval: localtime.DefaultInterval,
	}
}

// Screen composes a Sequencer and a Display. The clock only lives inside
// the loading view and is torn down when the profile is shown.
type Screen struct {
	seq      *loading.Sequencer
	clock    *localtime.Display
	renderer Renderer
}

// NewScreen wires a screen onto sched. Nothing runs until Activate.
func NewScreen(sched scheduler.Scheduler, f *localtime.Formatter, r Renderer, t Timings) *Screen {
	s := &Screen{renderer: r}
	s.clock = localtime.NewDisplay(sched, f, r.Clock, localtime.WithInterval(t.ClockInterval))
	s.seq = loading.NewSequencer(sched,
		loading.WithTick(t.Tick),
		loading.WithSettle(t.Settle),
		loading.WithProgressFunc(r.Progress),
		loading.WithViewFunc(s.switchView),
	)
	return s
}

// Activate starts the clock and the progress counter.
func (s *Screen) Activate() {
	s.clock.Activate()
	s.seq.Activate()
}

// Deactivate cancels every timer the screen started.
func (s *Screen) Deactivate() {
	s.seq.Deactivate()
	s.clock.Deactivate()
}

func (s *Screen) switchView(v loading.View) {
	if v != loading.ViewProfile {
		return
	}
	s.clock.Deactivate()
	s.renderer.Profile()
}

// Current returns the view that should be on screen.
func (s *Screen) Current() loading.View {
	if s.seq.Progress() < loading.MaxProgress || s.seq.View() != loading.ViewProfile {
		return loading.ViewLoading
	}
	return loading.ViewProfile
}

// Progress returns the loading counter.
func (s *Screen) Progress() int {
	return s.seq.Progress()
}

// Reading returns the last clock reading shown.
func (s *Screen) Reading() localtime.Reading {
	return s.clock.Latest()
}
