package control

import (
	"sync"
	"testing"
	"time"

	"MenubarCountdown/timer"
	"MenubarCountdown/timer/timertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu      sync.Mutex
	changed []timer.Snapshot
	expired []timer.Snapshot
}

func (r *recordingObserver) CountdownChanged(s timer.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed = append(r.changed, s)
}

func (r *recordingObserver) CountdownExpired(s timer.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expired = append(r.expired, s)
}

func (r *recordingObserver) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.changed), len(r.expired)
}

func newTestController(t *testing.T) (*Controller, *timertest.Clock, *recordingObserver) {
	t.Helper()
	clock := timertest.NewClock()
	c := New(clock)
	t.Cleanup(c.Close)
	obs := &recordingObserver{}
	c.Subscribe(obs)
	return c, clock, obs
}

// advance moves the fake clock one step at a time and waits for the loop to
// apply the resulting tick, so the next tick gets scheduled before the clock
// moves again.
func advance(t *testing.T, c *Controller, clock *timertest.Clock, d time.Duration) {
	t.Helper()
	const step = 100 * time.Millisecond
	for moved := time.Duration(0); moved < d; moved += step {
		clock.Advance(step)
		require.NoError(t, c.flush())
	}
}

func TestController_StartPublishesSnapshot(t *testing.T) {
	c, clock, obs := newTestController(t)

	require.NoError(t, c.Start(120))

	s := c.Snapshot()
	assert.Equal(t, timer.StateRunning, s.State)
	assert.Equal(t, 120, s.RemainingSeconds)
	assert.Equal(t, 1, clock.Pending())
	changed, expired := obs.counts()
	assert.Equal(t, 1, changed)
	assert.Equal(t, 0, expired)
}

func TestController_TicksOncePerSecond(t *testing.T) {
	c, clock, obs := newTestController(t)
	require.NoError(t, c.Start(10))

	advance(t, c, clock, 3*time.Second)

	assert.Equal(t, 7, c.Snapshot().RemainingSeconds)
	changed, _ := obs.counts()
	assert.Equal(t, 4, changed) // start + three ticks
	assert.Equal(t, "00:00:07", c.DisplayString(true))
	assert.Equal(t, "00:01", c.DisplayString(false))
}

func TestController_TickTargetsWholeSecondBoundary(t *testing.T) {
	c, clock, _ := newTestController(t)
	require.NoError(t, c.Start(10))

	delay, ok := clock.LastDelay()
	require.True(t, ok)
	assert.Equal(t, time.Second, delay)

	// a tick delivered late reschedules for the next boundary, not a full second later
	clock.Advance(1300 * time.Millisecond)
	require.NoError(t, c.flush())

	delay, ok = clock.LastDelay()
	require.True(t, ok)
	assert.Equal(t, 700*time.Millisecond, delay)
	assert.Equal(t, 9, c.Snapshot().RemainingSeconds)
}

func TestController_ExpiresAndNotifiesOnce(t *testing.T) {
	c, clock, obs := newTestController(t)
	require.NoError(t, c.Start(3))

	advance(t, c, clock, 5*time.Second)

	s := c.Snapshot()
	assert.Equal(t, timer.StateExpired, s.State)
	assert.LessOrEqual(t, s.RemainingSeconds, 0)
	assert.False(t, s.CanPause)
	assert.False(t, s.CanResume)
	_, expired := obs.counts()
	assert.Equal(t, 1, expired)
	assert.Equal(t, 0, clock.Pending())
}

func TestController_PauseStopsTicksAndResumeContinues(t *testing.T) {
	c, clock, _ := newTestController(t)
	require.NoError(t, c.Start(60))
	advance(t, c, clock, 10*time.Second)

	require.NoError(t, c.Pause())
	assert.Equal(t, 0, clock.Pending())
	paused := c.Snapshot()
	assert.Equal(t, 50, paused.RemainingSeconds)
	assert.True(t, paused.CanResume)

	advance(t, c, clock, 30*time.Second)
	assert.Equal(t, 50, c.Snapshot().RemainingSeconds)

	require.NoError(t, c.Resume())
	assert.Equal(t, 50, c.Snapshot().RemainingSeconds)
	advance(t, c, clock, time.Second)
	assert.Equal(t, 49, c.Snapshot().RemainingSeconds)
}

func TestController_InvalidTransitionReturnsError(t *testing.T) {
	c, _, obs := newTestController(t)

	assert.ErrorIs(t, c.Pause(), timer.ErrInvalidTransition)
	assert.ErrorIs(t, c.Resume(), timer.ErrInvalidTransition)
	assert.ErrorIs(t, c.Start(-3), timer.ErrInvalidSetting)
	changed, _ := obs.counts()
	assert.Equal(t, 0, changed)
}

func TestController_StopDropsStaleTicks(t *testing.T) {
	c, clock, obs := newTestController(t)
	require.NoError(t, c.Start(5))
	require.NoError(t, c.Stop())

	advance(t, c, clock, 10*time.Second)

	s := c.Snapshot()
	assert.Equal(t, timer.StateStopped, s.State)
	assert.False(t, s.Running)
	assert.False(t, s.CanPause)
	assert.False(t, s.CanResume)
	_, expired := obs.counts()
	assert.Equal(t, 0, expired)
}

func TestController_RestartReplacesTickChain(t *testing.T) {
	c, clock, _ := newTestController(t)
	require.NoError(t, c.Start(5))
	clock.Advance(500 * time.Millisecond)
	require.NoError(t, c.Start(5))

	assert.Equal(t, 1, clock.Pending())
	advance(t, c, clock, time.Second)
	assert.Equal(t, 4, c.Snapshot().RemainingSeconds)
}

func TestController_ClosedRejectsCommands(t *testing.T) {
	c := New(timertest.NewClock())
	c.Close()

	assert.ErrorIs(t, c.Start(10), ErrClosed)
}
