package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerSetSchedulesAndFires(t *testing.T) {
	clock := NewFakeClock()
	ts := NewTimerSet(clock)

	fired := 0
	ts.Schedule(100*time.Millisecond, func() { fired++ })
	ts.Schedule(200*time.Millisecond, func() { fired++ })

	assert.Equal(t, 2, ts.Pending())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, ts.Pending())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, 2, fired)
	assert.Equal(t, 0, ts.Pending())
}

func TestTimerSetCancelAllStopsEverything(t *testing.T) {
	clock := NewFakeClock()
	ts := NewTimerSet(clock)

	fired := false
	ts.Schedule(50*time.Millisecond, func() { fired = true })
	ts.Schedule(150*time.Millisecond, func() { fired = true })

	ts.CancelAll()
	clock.Advance(time.Second)

	assert.False(t, fired, "cancelled callbacks must not run")
	assert.Equal(t, 0, ts.Pending())
}

func TestTimerSetCancelAllInvalidatesOldGeneration(t *testing.T) {
	clock := NewFakeClock()
	ts := NewTimerSet(clock)

	var order []string
	ts.Schedule(100*time.Millisecond, func() { order = append(order, "old") })

	ts.CancelAll()
	ts.Schedule(100*time.Millisecond, func() { order = append(order, "new") })

	clock.Advance(time.Second)
	assert.Equal(t, []string{"new"}, order)
}

func TestTimerSetCallbackCanReschedule(t *testing.T) {
	clock := NewFakeClock()
	ts := NewTimerSet(clock)

	fired := 0
	var tick func()
	tick = func() {
		fired++
		if fired < 3 {
			ts.Schedule(100*time.Millisecond, tick)
		}
	}
	ts.Schedule(100*time.Millisecond, tick)

	clock.Advance(time.Second)
	assert.Equal(t, 3, fired)
}

func TestFakeClockFiresInDueOrder(t *testing.T) {
	clock := NewFakeClock()

	var order []int
	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, 2) })

	clock.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestFakeClockStopPreventsFiring(t *testing.T) {
	clock := NewFakeClock()

	fired := false
	timer := clock.AfterFunc(100*time.Millisecond, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports already stopped")

	clock.Advance(time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, clock.PendingCount())
}

func TestFakeClockAdvancesNowThroughCallbacks(t *testing.T) {
	clock := NewFakeClock()
	start := clock.Now()

	var at time.Time
	clock.AfterFunc(250*time.Millisecond, func() { at = clock.Now() })

	clock.Advance(time.Second)
	assert.Equal(t, start.Add(250*time.Millisecond), at)
	assert.Equal(t, start.Add(time.Second), clock.Now())
}
