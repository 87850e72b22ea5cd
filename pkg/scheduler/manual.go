package scheduler

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Scheduler driven by Advance instead of the wall clock.
// Callbacks run synchronously on the goroutine calling Advance.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualEntry
}

type manualEntry struct {
	at   time.Duration
	seq  int
	task *Task
	fn   func()
}

func NewManual() *Manual {
	return &Manual{}
}

type manualStopper struct {
	m     *Manual
	entry *manualEntry
}

func (s manualStopper) Stop() bool {
	return s.m.remove(s.entry)
}

func (m *Manual) After(d time.Duration, fn func()) *Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &Task{}
	e := &manualEntry{at: m.now + d, seq: m.seq, task: t, fn: fn}
	t.timer = manualStopper{m: m, entry: e}
	m.pending = append(m.pending, e)
	return t
}

// Advance moves time forward and runs every task that became due, in due order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	now := m.now
	m.mu.Unlock()

	for {
		e := m.popDue(now)
		if e == nil {
			return
		}
		e.task.run(e.fn)
	}
}

// Pending returns the number of tasks not yet run or cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

func (m *Manual) popDue(now time.Duration) *manualEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at == m.pending[j].at {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at < m.pending[j].at
	})
	if len(m.pending) == 0 || m.pending[0].at > now {
		return nil
	}
	e := m.pending[0]
	m.pending = m.pending[1:]
	return e
}

func (m *Manual) remove(e *manualEntry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.pending {
		if p == e {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return true
		}
	}
	return false
}
