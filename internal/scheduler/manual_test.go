package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 15, 3, 35, 3, 0, time.UTC)

func TestManual_EveryFiresOncePerInterval(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	m.Every(40*time.Millisecond, func() { count++ })

	m.Advance(39 * time.Millisecond)
	assert.Equal(t, 0, count)

	m.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, count)

	m.Advance(400 * time.Millisecond)
	assert.Equal(t, 11, count)
	assert.Equal(t, epoch.Add(440*time.Millisecond), m.Now())
}

func TestManual_AfterFiresOnce(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	m.After(500*time.Millisecond, func() { count++ })

	m.Advance(499 * time.Millisecond)
	assert.Equal(t, 0, count)
	m.Advance(time.Second)
	assert.Equal(t, 1, count)
	m.Advance(time.Hour)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CancelStopsTask(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	h := m.Every(time.Second, func() { count++ })

	m.Advance(3 * time.Second)
	require.Equal(t, 3, count)

	h.Cancel()
	h.Cancel()
	assert.True(t, h.Cancelled())

	m.Advance(time.Minute)
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_CancelFromInsideCallback(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	var h *Handle
	h = m.Every(10*time.Millisecond, func() {
		count++
		if count == 2 {
			h.Cancel()
		}
	})

	m.Advance(time.Second)
	assert.Equal(t, 2, count)
}

func TestManual_CallbackSchedulesNestedTask(t *testing.T) {
	m := NewManual(epoch)
	var fired []time.Duration
	m.After(100*time.Millisecond, func() {
		m.After(50*time.Millisecond, func() {
			fired = append(fired, m.Now().Sub(epoch))
		})
	})

	m.Advance(time.Second)
	assert.Equal(t, []time.Duration{150 * time.Millisecond}, fired)
	assert.Equal(t, epoch.Add(time.Second), m.Now())
}

func TestManual_TiesRunInRegistrationOrder(t *testing.T) {
	m := NewManual(epoch)
	var order []string
	m.After(time.Second, func() { order = append(order, "a") })
	m.Every(500*time.Millisecond, func() { order = append(order, "b") })
	m.After(time.Second, func() { order = append(order, "c") })

	m.Advance(time.Second)
	assert.Equal(t, []string{"b", "a", "b", "c"}, order)
}

func TestManual_CancelledPeerSkippedAtSameInstant(t *testing.T) {
	m := NewManual(epoch)
	ran := false
	var second *Handle
	m.After(time.Second, func() { second.Cancel() })
	second = m.After(time.Second, func() { ran = true })

	m.Advance(time.Second)
	assert.False(t, ran)
}

func TestManual_NonPositiveIntervalPanics(t *testing.T) {
	m := NewManual(epoch)
	assert.Panics(t, func() { m.Every(0, func() {}) })
	assert.Panics(t, func() { m.After(-time.Second, func() {}) })
}

func TestHandle_NilIsCancelled(t *testing.T) {
	var h *Handle
	assert.NotPanics(t, h.Cancel)
	assert.True(t, h.Cancelled())
}
