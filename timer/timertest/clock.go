// Package timertest provides a manually advanced timer.Clock for tests.
package timertest

import (
	"sort"
	"sync"
	"time"

	"MenubarCountdown/timer"
)

// Clock is a timer.Clock whose time only moves when Advance is called.
type Clock struct {
	mu      sync.Mutex
	now     time.Time
	pending []*scheduled
	seq     int
}

type scheduled struct {
	clock   *Clock
	at      time.Time
	seq     int
	f       func()
	stopped bool
}

func (s *scheduled) Stop() bool {
	s.clock.mu.Lock()
	defer s.clock.mu.Unlock()
	if s.stopped {
		return false
	}
	s.stopped = true
	return true
}

// NewClock returns a clock starting at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc schedules f to run when the clock is advanced past d from now.
func (c *Clock) AfterFunc(d time.Duration, f func()) timer.Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	s := &scheduled{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.pending = append(c.pending, s)
	return s
}

// Advance moves the clock forward by d, then runs every callback that became
// due, in deadline order, on the calling goroutine. Callbacks observe the new
// time, as a late timer delivery would.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*scheduled
	for s := c.popDue(c.now); s != nil; s = c.popDue(c.now) {
		due = append(due, s)
	}
	c.mu.Unlock()

	for _, s := range due {
		s.f()
	}
}

// Pending returns the number of callbacks that have not run or been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, s := range c.pending {
		if !s.stopped {
			n++
		}
	}
	return n
}

// LastDelay returns the delay of the most recently scheduled live callback
// relative to the current time.
func (c *Clock) LastDelay() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var last *scheduled
	for _, s := range c.pending {
		if !s.stopped && (last == nil || s.seq > last.seq) {
			last = s
		}
	}
	if last == nil {
		return 0, false
	}
	return last.at.Sub(c.now), true
}

func (c *Clock) popDue(target time.Time) *scheduled {
	live := c.pending[:0]
	for _, s := range c.pending {
		if !s.stopped {
			live = append(live, s)
		}
	}
	c.pending = live

	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at.Equal(c.pending[j].at) {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].at.Before(c.pending[j].at)
	})
	if len(c.pending) == 0 || c.pending[0].at.After(target) {
		return nil
	}
	s := c.pending[0]
	c.pending = c.pending[1:]
	return s
}
