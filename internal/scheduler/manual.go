package scheduler

import (
	"sync"
	"time"
)

// Manual is a virtual-time Scheduler. Nothing fires until Advance moves the
// clock forward, which makes timing behaviour reproducible in tests.
type Manual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	handle   *Handle
	due      time.Time
	interval time.Duration // zero for one-shot tasks
	seq      uint64
	fn       func()
}

// NewManual returns a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Every schedules fn every interval starting one interval from now.
func (m *Manual) Every(interval time.Duration, fn func()) *Handle {
	mustPositive(interval)
	return m.add(interval, interval, fn)
}

// After schedules fn once, delay from now.
func (m *Manual) After(delay time.Duration, fn func()) *Handle {
	mustPositive(delay)
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) *Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTask{
		due:      m.now.Add(delay),
		interval: interval,
		seq:      m.seq,
		fn:       fn,
	}
	t.handle = newHandle(nil)
	m.tasks = append(m.tasks, t)
	return t.handle
}

// Advance moves the clock forward by d, running every task that falls due
// on the way in chronological order. Tasks due at the same instant run in
// the order they were scheduled. Tasks scheduled by callbacks during the
// advance run too if they fall due before the target time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.next(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// next pops the earliest due task and moves the clock to its due time.
func (m *Manual) next(target time.Time) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.handle.Cancelled() {
			live = append(live, t)
		}
	}
	m.tasks = live

	idx := -1
	for i, t := range m.tasks {
		if t.due.After(target) {
			continue
		}
		if idx < 0 || t.due.Before(m.tasks[idx].due) ||
			(t.due.Equal(m.tasks[idx].due) && t.seq < m.tasks[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}

	t := m.tasks[idx]
	m.now = t.due
	if t.interval > 0 {
		next := &manualTask{
			handle:   t.handle,
			due:      t.due.Add(t.interval),
			interval: t.interval,
			seq:      t.seq,
			fn:       t.fn,
		}
		m.tasks[idx] = next
	} else {
		m.tasks = append(m.tasks[:idx], m.tasks[idx+1:]...)
	}
	return t
}

// Pending returns the number of live tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if !t.handle.Cancelled() {
			n++
		}
	}
	return n
}
