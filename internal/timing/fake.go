package timing

import (
	"sort"
	"sync"
	"time"
)

// FakeClock is a manually advanced clock for deterministic tests. Timers
// fire synchronously inside Advance, in due order.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*fakeTimer
}

type fakeTimer struct {
	clock   *FakeClock
	id      uint64
	due     time.Time
	fn      func()
	stopped bool
}

// NewFakeClock creates a fake clock starting at a fixed epoch
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the fake current time
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules fn to run when the clock is advanced past d
func (c *FakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &fakeTimer{
		clock: c,
		id:    c.seq,
		due:   c.now.Add(d),
		fn:    fn,
	}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward, firing due timers in order. Callbacks may
// schedule further timers; those fire too if they fall within the window.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.mu.Lock()
		if t.due.After(c.now) {
			c.now = t.due
		}
		c.mu.Unlock()
		t.fn()
	}

	c.mu.Lock()
	c.now = target
	c.mu.Unlock()
}

// nextDue pops the earliest unfired timer due at or before target
func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due.Equal(c.pending[j].due) {
			return c.pending[i].id < c.pending[j].id
		}
		return c.pending[i].due.Before(c.pending[j].due)
	})

	for i, t := range c.pending {
		if t.stopped {
			continue
		}
		if t.due.After(target) {
			return nil
		}
		c.pending = append(c.pending[:i], c.pending[i+1:]...)
		return t
	}
	return nil
}

// PendingCount returns the number of unfired timers
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, t := range c.pending {
		if !t.stopped {
			count++
		}
	}
	return count
}

// Stop cancels the fake timer
func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}
