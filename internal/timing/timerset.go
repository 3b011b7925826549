package timing

import (
	"sync"
	"time"
)

// TimerSet tracks every timer scheduled by one owner so they can all be
// cancelled in a single pass. A callback from a previous sequence firing
// after a replay started would mutate state belonging to the new sequence;
// routing every delayed callback through one set prevents that.
type TimerSet struct {
	clock Clock

	mu     sync.Mutex
	seq    uint64
	timers map[uint64]Timer
	gen    uint64 // bumped by CancelAll; stale callbacks check it and bail
}

// NewTimerSet creates a timer set on the given clock
func NewTimerSet(clock Clock) *TimerSet {
	return &TimerSet{
		clock:  clock,
		timers: make(map[uint64]Timer),
	}
}

// Schedule runs fn after d, tracking the timer until it fires or is
// cancelled. Callbacks scheduled before a CancelAll never run after it, even
// if the underlying timer already fired and the callback is waiting.
func (ts *TimerSet) Schedule(d time.Duration, fn func()) {
	ts.mu.Lock()
	ts.seq++
	id := ts.seq
	gen := ts.gen
	ts.mu.Unlock()

	timer := ts.clock.AfterFunc(d, func() {
		ts.mu.Lock()
		stale := ts.gen != gen
		delete(ts.timers, id)
		ts.mu.Unlock()
		if stale {
			return
		}
		fn()
	})

	ts.mu.Lock()
	// CancelAll may have run between scheduling and registering; the
	// generation check in the callback covers that window.
	ts.timers[id] = timer
	ts.mu.Unlock()
}

// CancelAll stops every pending timer and invalidates in-flight callbacks
func (ts *TimerSet) CancelAll() {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.gen++
	for id, timer := range ts.timers {
		timer.Stop()
		delete(ts.timers, id)
	}
}

// Pending returns the number of timers that have not fired or been cancelled
func (ts *TimerSet) Pending() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.timers)
}
