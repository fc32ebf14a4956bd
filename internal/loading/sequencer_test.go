package loading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham-kumr/portfolio/internal/scheduler"
)

func newTestSequencer(opts ...Option) (*Sequencer, *scheduler.Manual) {
	m := scheduler.NewManual(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	return NewSequencer(m, opts...), m
}

func TestSequencer_StartsAtZero(t *testing.T) {
	s, m := newTestSequencer()
	assert.Equal(t, 0, s.Progress())
	assert.Equal(t, ViewLoading, s.View())
	assert.False(t, s.Active())

	// Nothing moves before activation.
	m.Advance(time.Second)
	assert.Equal(t, 0, s.Progress())
}

func TestSequencer_ProgressEqualsTickCount(t *testing.T) {
	s, m := newTestSequencer()
	s.Activate()

	for n := 1; n < MaxProgress; n++ {
		m.Advance(DefaultTick)
		require.Equal(t, n, s.Progress(), "after %d ticks", n)
		require.Equal(t, ViewLoading, s.View())
	}
}

func TestSequencer_HoldsAtMaxUntilSettleElapses(t *testing.T) {
	s, m := newTestSequencer()
	s.Activate()

	m.Advance(MaxProgress * DefaultTick)
	assert.Equal(t, MaxProgress, s.Progress())
	assert.Equal(t, ViewLoading, s.View())

	m.Advance(DefaultSettle - time.Millisecond)
	assert.Equal(t, ViewLoading, s.View())

	m.Advance(time.Millisecond)
	assert.Equal(t, ViewProfile, s.View())
	assert.True(t, s.Done())
}

func TestSequencer_ProfileIsTerminal(t *testing.T) {
	views := 0
	s, m := newTestSequencer(WithViewFunc(func(v View) {
		views++
		assert.Equal(t, ViewProfile, v)
	}))
	s.Activate()

	m.Advance(MaxProgress*DefaultTick + DefaultSettle)
	require.Equal(t, ViewProfile, s.View())

	m.Advance(time.Hour)
	assert.Equal(t, ViewProfile, s.View())
	assert.Equal(t, MaxProgress, s.Progress())
	assert.Equal(t, 1, views)
	assert.Equal(t, 0, m.Pending())
}

func TestSequencer_ProgressCallbackPerIncrement(t *testing.T) {
	var seen []int
	s, m := newTestSequencer(WithProgressFunc(func(p int) { seen = append(seen, p) }))
	s.Activate()

	m.Advance(time.Minute)
	require.Len(t, seen, MaxProgress)
	for i, p := range seen {
		assert.Equal(t, i+1, p)
	}
}

func TestSequencer_DeactivateBeforeCompletion(t *testing.T) {
	s, m := newTestSequencer()
	s.Activate()

	m.Advance(37 * DefaultTick)
	require.Equal(t, 37, s.Progress())

	s.Deactivate()
	m.Advance(time.Minute)

	assert.Equal(t, 37, s.Progress())
	assert.Equal(t, ViewLoading, s.View())
	assert.False(t, s.Active())
	assert.Equal(t, 0, m.Pending())
}

func TestSequencer_DeactivateDuringSettle(t *testing.T) {
	switched := false
	s, m := newTestSequencer(WithViewFunc(func(View) { switched = true }))
	s.Activate()

	m.Advance(MaxProgress*DefaultTick + DefaultSettle/2)
	require.Equal(t, MaxProgress, s.Progress())
	require.Equal(t, 1, m.Pending(), "only the delayed transition should remain")

	s.Deactivate()
	m.Advance(time.Minute)

	assert.False(t, switched)
	assert.Equal(t, ViewLoading, s.View())
}

func TestSequencer_ActivateIsIdempotent(t *testing.T) {
	s, m := newTestSequencer()
	s.Activate()
	s.Activate()

	m.Advance(10 * DefaultTick)
	assert.Equal(t, 10, s.Progress())
}

func TestSequencer_NoReactivationAfterDeactivate(t *testing.T) {
	s, m := newTestSequencer()
	s.Activate()
	m.Advance(5 * DefaultTick)
	s.Deactivate()
	s.Deactivate()

	s.Activate()
	m.Advance(time.Minute)
	assert.Equal(t, 5, s.Progress())
	assert.False(t, s.Active())
}

func TestSequencer_CustomTimings(t *testing.T) {
	s, m := newTestSequencer(WithTick(time.Millisecond), WithSettle(2*time.Millisecond))
	s.Activate()

	m.Advance(MaxProgress*time.Millisecond + time.Millisecond)
	assert.Equal(t, ViewLoading, s.View())
	m.Advance(time.Millisecond)
	assert.Equal(t, ViewProfile, s.View())
}

func TestView_String(t *testing.T) {
	assert.Equal(t, "loading", ViewLoading.String())
	assert.Equal(t, "profile", ViewProfile.String())
	assert.Equal(t, "unknown", View(9).String())
}
