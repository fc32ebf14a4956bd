// Package loading drives the splash progress counter from 0 to 100 and then
// hands off to the profile view.
package loading

import (
	"time"

	"github.com/shubham-kumr/portfolio/internal/scheduler"
)

const (
	// MaxProgress is the value at which loading is complete.
	MaxProgress = 100
	// DefaultTick is the time between progress increments.
	DefaultTick = 40 * time.Millisecond
	// DefaultSettle is how long the counter rests at 100 before the
	// profile view is shown.
	DefaultSettle = 500 * time.Millisecond
)

// View identifies which page the host should render.
type View int

const (
	ViewLoading View = iota
	ViewProfile
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithTick overrides the increment interval.
func WithTick(d time.Duration) Option {
	return func(s *Sequencer) { s.tick = d }
}

// WithSettle overrides the pause between reaching 100 and the view switch.
func WithSettle(d time.Duration) Option {
	return func(s *Sequencer) { s.settle = d }
}

// WithProgressFunc registers a callback invoked with every new progress value.
func WithProgressFunc(fn func(int)) Option {
	return func(s *Sequencer) { s.onProgress = fn }
}

// WithViewFunc registers a callback invoked once when the view changes.
func WithViewFunc(fn func(View)) Option {
	return func(s *Sequencer) { s.onView = fn }
}

// Sequencer owns the progress counter and the view flag. It must only be
// used from the scheduler's callback thread.
type Sequencer struct {
	sched  scheduler.Scheduler
	tick   time.Duration
	settle time.Duration

	onProgress func(int)
	onView     func(View)

	progress int
	view     View

	ticker     *scheduler.Handle
	transition *scheduler.Handle

	active      bool
	deactivated bool
}

// NewSequencer returns an inactive Sequencer at progress 0.
func NewSequencer(sched scheduler.Scheduler, opts ...Option) *Sequencer {
	s := &Sequencer{
		sched:  sched,
		tick:   DefaultTick,
		settle: DefaultSettle,
		view:   ViewLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Activate starts the progress ticker. Calling it again, or after
// Deactivate, does nothing.
func (s *Sequencer) Activate() {
	if s.active || s.deactivated {
		return
	}
	s.active = true
	s.ticker = s.sched.Every(s.tick, s.step)
}

// Deactivate cancels the ticker and any pending view transition.
func (s *Sequencer) Deactivate() {
	if s.deactivated {
		return
	}
	s.deactivated = true
	s.active = false
	s.ticker.Cancel()
	s.transition.Cancel()
}

func (s *Sequencer) step() {
	if s.progress >= MaxProgress {
		s.ticker.Cancel()
		return
	}

	s.progress++
	if s.onProgress != nil {
		s.onProgress(s.progress)
	}

	if s.progress == MaxProgress {
		s.ticker.Cancel()
		s.transition = s.sched.After(s.settle, s.showProfile)
	}
}

func (s *Sequencer) showProfile() {
	if s.view == ViewProfile {
		return
	}
	s.view = ViewProfile
	if s.onView != nil {
		s.onView(s.view)
	}
}

// Progress returns the current counter value in [0, MaxProgress].
func (s *Sequencer) Progress() int { return s.progress }

// View returns the view the host should render.
func (s *Sequencer) View() View { return s.view }

// Done reports whether the profile view has been reached.
func (s *Sequencer) Done() bool { return s.view == ViewProfile }

// Active reports whether the sequencer is between Activate and Deactivate.
func (s *Sequencer) Active() bool { return s.active }
