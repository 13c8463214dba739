// Package scheduler runs cancellable one-shot and periodic tasks against a
// logical clock. Time only moves when the owner calls Advance, so every task
// runs on the caller's goroutine.
package scheduler

import (
	"sort"
	"time"
)

// Scheduler schedules callbacks relative to its current time.
type Scheduler interface {
	// After runs fn once, d after now.
	After(d time.Duration, fn func()) Handle

	// Every runs fn every d, starting d after now, until cancelled.
	Every(d time.Duration, fn func()) Handle
}

// Handle cancels a scheduled task. Cancel is idempotent and safe to call
// from inside the task itself.
type Handle interface {
	Cancel()
}

// minPeriod keeps a zero or negative period from spinning forever.
const minPeriod = time.Millisecond

type task struct {
	due       time.Duration
	seq       uint64
	period    time.Duration
	fn        func()
	cancelled bool
}

func (t *task) Cancel() { t.cancelled = true }

// Clock is a logical clock implementing Scheduler. It is not safe for
// concurrent use; the TUI drives it from its single update loop.
type Clock struct {
	now   time.Duration
	seq   uint64
	tasks []*task
}

var _ Scheduler = (*Clock)(nil)

// NewClock returns a clock at time zero with no tasks.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the elapsed logical time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of live (uncancelled) tasks.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

func (c *Clock) After(d time.Duration, fn func()) Handle {
	return c.schedule(max(d, 0), 0, fn)
}

func (c *Clock) Every(d time.Duration, fn func()) Handle {
	d = max(d, minPeriod)
	return c.schedule(d, d, fn)
}

func (c *Clock) schedule(delay, period time.Duration, fn func()) *task {
	c.seq++
	t := &task{due: c.now + delay, seq: c.seq, period: period, fn: fn}
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves the clock forward by d, running every task that falls due in
// order of due time, then schedule order. Tasks scheduled by a running task
// run in the same call if they fall due before the new time.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + max(d, 0)
	for {
		t := c.next(target)
		if t == nil {
			break
		}
		c.now = t.due
		if t.period > 0 {
			c.seq++
			t.due += t.period
			t.seq = c.seq
		} else {
			t.cancelled = true
		}
		t.fn()
	}
	c.now = target
	c.compact()
}

// CancelAll cancels every pending task.
func (c *Clock) CancelAll() {
	for _, t := range c.tasks {
		t.cancelled = true
	}
	c.tasks = nil
}

// next returns the earliest live task due at or before target.
func (c *Clock) next(target time.Duration) *task {
	var best *task
	for _, t := range c.tasks {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (c *Clock) compact() {
	live := c.tasks[:0]
	for _, t := range c.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.tasks); i++ {
		c.tasks[i] = nil
	}
	c.tasks = live
	sort.SliceStable(c.tasks, func(i, j int) bool { return c.tasks[i].due < c.tasks[j].due })
}
