package testing

import (
	"sync"
	"time"

	"github.com/Alex-2504834/RandomStudentPicker/types"
)

// ManualClock implements types.Clock on virtual time.
//
// Callbacks never fire on their own: tests advance time explicitly with
// Advance, RunNext, or RunAll, and due callbacks run synchronously on the
// calling goroutine in due order. Callbacks may schedule further
// callbacks; ones that fall inside the advanced window fire in the same
// call.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	nextSeq uint64
	pending []scheduledCall
}

type scheduledCall struct {
	due time.Duration
	seq uint64 // tie-break: equal due times fire in scheduling order
	fn  func()
}

// Compile-time assertion that ManualClock implements Clock.
var _ types.Clock = (*ManualClock)(nil)

// NewManualClock creates a manual clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Schedule queues fn to run once the virtual time reaches now + delay.
func (c *ManualClock) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = append(c.pending, scheduledCall{due: c.now + delay, seq: c.nextSeq, fn: fn})
	c.nextSeq++
}

// Now returns the current virtual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Pending returns the number of queued callbacks.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

// Advance moves virtual time forward by d, firing every callback that
// comes due, in due order.
//
// Returns:
//   - int: Number of callbacks fired
func (c *ManualClock) Advance(d time.Duration) int {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	fired := 0
	for c.fireNextDue(target) {
		fired++
	}

	c.mu.Lock()
	if c.now < target {
		c.now = target
	}
	c.mu.Unlock()

	return fired
}

// RunNext fires the earliest pending callback, advancing virtual time to
// its due time.
//
// Returns:
//   - bool: false when nothing was pending
func (c *ManualClock) RunNext() bool {
	return c.fireNextDue(1<<63 - 1)
}

// RunAll fires callbacks until none remain, advancing virtual time as
// needed. Callbacks that schedule further callbacks keep the loop going,
// so self-perpetuating schedules must terminate on their own.
//
// Returns:
//   - int: Number of callbacks fired
func (c *ManualClock) RunAll() int {
	fired := 0
	for c.RunNext() {
		fired++
	}

	return fired
}

// fireNextDue pops and runs the earliest callback with due <= limit.
// The callback runs without the lock held so it can call Schedule.
func (c *ManualClock) fireNextDue(limit time.Duration) bool {
	c.mu.Lock()

	best := -1
	for i, call := range c.pending {
		if call.due > limit {
			continue
		}
		if best < 0 || call.due < c.pending[best].due ||
			(call.due == c.pending[best].due && call.seq < c.pending[best].seq) {
			best = i
		}
	}

	if best < 0 {
		c.mu.Unlock()
		return false
	}

	call := c.pending[best]
	c.pending = append(c.pending[:best], c.pending[best+1:]...)
	if c.now < call.due {
		c.now = call.due
	}
	c.mu.Unlock()

	call.fn()

	return true
}
