// Package scheduler runs one-shot delayed tasks that can be cancelled by their owner.
package scheduler

import (
	"sync/atomic"
	"time"
)

// Scheduler starts delayed tasks.
type Scheduler interface {
	After(d time.Duration, fn func()) *Task
}

type stopper interface {
	Stop() bool
}

// Task is a scheduled call. Cancel is safe to call any number of times,
// from any goroutine, before or after the task fired.
type Task struct {
	timer    stopper
	canceled atomic.Bool
	fired    atomic.Bool
}

// Cancel prevents a pending task from running. It reports whether the task
// was still pending.
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	if !t.canceled.CompareAndSwap(false, true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return !t.fired.Load()
}

// Canceled reports whether Cancel was called. Callbacks that wait on a lock
// must check it after acquiring the lock: the timer may have fired already.
func (t *Task) Canceled() bool {
	return t != nil && t.canceled.Load()
}

// Fired reports whether the callback was started.
func (t *Task) Fired() bool {
	return t != nil && t.fired.Load()
}

func (t *Task) run(fn func()) {
	if t.canceled.Load() {
		return
	}
	t.fired.Store(true)
	fn()
}

type timeScheduler struct{}

// New returns a Scheduler backed by time.AfterFunc.
func New() Scheduler {
	return timeScheduler{}
}

func (timeScheduler) After(d time.Duration, fn func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(d, func() { t.run(fn) })
	return t
}
