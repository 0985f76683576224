// Package timer contains the domain logic of the countdown: the Stopwatch,
// the Countdown state machine and the status display formatter.
//
// Maintenance notes:
//   - Countdown is not safe for concurrent use. The control package owns the
//     only instance and mutates it from its event loop goroutine; everything
//     else reads Snapshots.
//   - Remaining time is always re-derived from the stopwatch, never
//     decremented, so a late or missed tick corrects itself on the next one.
package timer

import (
	"fmt"
	"math"
	"time"
)

// TickResult reports what a tick did.
type TickResult int

const (
	// TickIgnored means the countdown was not running.
	TickIgnored TickResult = iota
	// TickContinue means the countdown is still running and wants another tick.
	TickContinue
	// TickExpired means remaining time reached zero on this tick.
	TickExpired
)

// Countdown represents the countdown's state and transitions.
type Countdown struct {
	stopwatch *Stopwatch

	state     State
	setting   int
	remaining int
	running   bool
	canPause  bool
	canResume bool
}

// Snapshot is a consistent copy of the countdown fields for rendering.
type Snapshot struct {
	State            State
	SettingSeconds   int
	RemainingSeconds int
	Running          bool
	CanPause         bool
	CanResume        bool
}

// Active reports whether a countdown is running, paused or expired, i.e.
// whether the status item should show the time instead of the app name.
func (s Snapshot) Active() bool {
	return s.State != StateStopped
}

// NewCountdown creates a stopped countdown with the default setting.
func NewCountdown(c Clock) *Countdown {
	return &Countdown{
		stopwatch: NewStopwatch(c),
		state:     StateStopped,
		setting:   DefaultSettingSeconds,
	}
}

// Start begins a countdown of settingSeconds from any state.
func (c *Countdown) Start(settingSeconds int) error {
	if settingSeconds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSetting, settingSeconds)
	}
	c.setting = settingSeconds
	c.remaining = settingSeconds
	c.stopwatch.Reset()
	c.setRunning()
	return nil
}

// Pause stops the countdown without losing the remaining time.
func (c *Countdown) Pause() error {
	if c.state != StateRunning {
		return fmt.Errorf("%w: pause while %s", ErrInvalidTransition, c.state)
	}
	c.state = StatePaused
	c.running = false
	c.canPause = false
	c.canResume = true
	return nil
}

// Resume continues a paused countdown. The remaining count becomes the new
// setting and elapsed time is measured again from now.
func (c *Countdown) Resume() error {
	if c.state != StatePaused {
		return fmt.Errorf("%w: resume while %s", ErrInvalidTransition, c.state)
	}
	c.setting = c.remaining
	c.stopwatch.Reset()
	c.setRunning()
	return nil
}

// Stop puts the countdown back into the stopped state.
func (c *Countdown) Stop() {
	c.state = StateStopped
	c.running = false
	c.canPause = false
	c.canResume = false
}

// Tick recomputes the remaining time from the stopwatch. When the countdown
// keeps running, the returned duration is the delay until the next tick.
func (c *Countdown) Tick() (TickResult, time.Duration) {
	if c.state != StateRunning {
		return TickIgnored, 0
	}

	elapsed := c.stopwatch.Elapsed()
	c.remaining = int(math.Round(float64(c.setting) - elapsed.Seconds()))
	if c.remaining <= 0 {
		c.state = StateExpired
		c.canPause = false
		c.canResume = false
		return TickExpired, 0
	}
	return TickContinue, NextTickDelay(elapsed)
}

// NextTickDelay returns the delay from the current elapsed time to the next tick.
func (c *Countdown) NextTickDelay() time.Duration {
	return NextTickDelay(c.stopwatch.Elapsed())
}

// NextTickDelay returns the time from elapsed to the next whole-second boundary
// after it. On an exact boundary the next one is a full second away.
func NextTickDelay(elapsed time.Duration) time.Duration {
	if elapsed < 0 {
		if d := -elapsed % time.Second; d > 0 {
			return d
		}
		return time.Second
	}
	return time.Second - elapsed%time.Second
}

// State returns the current state.
func (c *Countdown) State() State { return c.state }

// RemainingSeconds returns the remaining seconds as of the last transition or tick.
func (c *Countdown) RemainingSeconds() int { return c.remaining }

// Snapshot returns a copy of the countdown fields.
func (c *Countdown) Snapshot() Snapshot {
	return Snapshot{
		State:            c.state,
		SettingSeconds:   c.setting,
		RemainingSeconds: c.remaining,
		Running:          c.running,
		CanPause:         c.canPause,
		CanResume:        c.canResume,
	}
}

func (c *Countdown) setRunning() {
	c.state = StateRunning
	c.running = true
	c.canPause = true
	c.canResume = false
}
