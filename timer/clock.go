package timer

import "time"

// Stopper is a scheduled callback that can be cancelled.
type Stopper interface {
	Stop() bool
}

// Clock provides the time source and one-shot scheduling used by the countdown.
// Tests substitute a manual implementation.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Stopper
}

// SystemClock is the Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}
