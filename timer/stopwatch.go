package timer

import "time"

// Stopwatch measures elapsed time since the last Reset. time.Time carries a
// monotonic reading, so wall clock adjustments do not affect Elapsed.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// NewStopwatch returns a stopwatch reset to the clock's current time.
func NewStopwatch(c Clock) *Stopwatch {
	if c == nil {
		c = SystemClock
	}
	return &Stopwatch{clock: c, start: c.Now()}
}

// Reset restarts the measurement from now.
func (s *Stopwatch) Reset() {
	s.start = s.clock.Now()
}

// Elapsed returns the time since the last Reset.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.clock.Now().Sub(s.start)
}
