package alert

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"MenubarCountdown/prefs"
	"MenubarCountdown/timer"
	"MenubarCountdown/timer/timertest"
)

type staticPrefs struct{ p prefs.Prefs }

func (s staticPrefs) Load() prefs.Prefs { return s.p }

type fakeOutputs struct {
	mu        sync.Mutex
	blinking  []bool
	plays     int
	spoken    []string
	windows   int
	soundErr  error
	speechErr error
}

func (f *fakeOutputs) SetBlinking(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blinking = append(f.blinking, on)
}

func (f *fakeOutputs) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.plays++
	return f.soundErr
}

func (f *fakeOutputs) Announce(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	return f.speechErr
}

func (f *fakeOutputs) ShowExpiredAlert() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows++
}

func (f *fakeOutputs) outputs() Outputs {
	return Outputs{Blinker: f, Sound: f, Announcer: f, Window: f}
}

func allEnabled() prefs.Prefs {
	p := prefs.Defaults()
	p.BlinkOnExpiration = true
	p.PlayAlertSoundOnExpiration = true
	p.AnnounceExpiration = true
	p.ShowAlertWindowOnExpiration = true
	return p
}

var (
	expired = timer.Snapshot{State: timer.StateExpired}
	stopped = timer.Snapshot{State: timer.StateStopped}
)

func TestNotifier_AllReactions(t *testing.T) {
	out := &fakeOutputs{}
	p := allEnabled()
	p.AnnouncementText = "Tea is ready"
	n := NewNotifier(staticPrefs{p}, timertest.NewClock(), out.outputs())

	n.CountdownChanged(expired)
	n.CountdownExpired(expired)

	assert.Equal(t, []bool{true}, out.blinking)
	assert.Equal(t, 1, out.plays)
	assert.Equal(t, []string{"Tea is ready"}, out.spoken)
	assert.Equal(t, 1, out.windows)
}

func TestNotifier_DisabledReactionsSkipped(t *testing.T) {
	out := &fakeOutputs{}
	p := prefs.Defaults()
	p.BlinkOnExpiration = false
	p.PlayAlertSoundOnExpiration = false
	p.AnnounceExpiration = false
	p.ShowAlertWindowOnExpiration = true
	n := NewNotifier(staticPrefs{p}, timertest.NewClock(), out.outputs())

	n.CountdownExpired(expired)

	assert.Empty(t, out.blinking)
	assert.Zero(t, out.plays)
	assert.Empty(t, out.spoken)
	assert.Equal(t, 1, out.windows)
}

func TestNotifier_IdempotentPerExpiration(t *testing.T) {
	out := &fakeOutputs{}
	n := NewNotifier(staticPrefs{allEnabled()}, timertest.NewClock(), out.outputs())

	n.CountdownExpired(expired)
	n.CountdownExpired(expired)

	assert.Equal(t, 1, out.plays)
	assert.Len(t, out.spoken, 1)
	assert.Equal(t, 1, out.windows)

	// a new expiration after a restart reacts again
	n.CountdownChanged(timer.Snapshot{State: timer.StateRunning})
	n.CountdownExpired(expired)
	assert.Equal(t, 2, out.plays)
}

func TestNotifier_FailuresDoNotBlockOthers(t *testing.T) {
	out := &fakeOutputs{
		soundErr:  errors.New("speaker unavailable"),
		speechErr: errors.New("speech unavailable"),
	}
	n := NewNotifier(staticPrefs{allEnabled()}, timertest.NewClock(), out.outputs())

	n.CountdownExpired(expired)

	assert.Equal(t, []bool{true}, out.blinking)
	assert.Equal(t, 1, out.plays)
	assert.Len(t, out.spoken, 1)
	assert.Equal(t, 1, out.windows)
}

func TestNotifier_MissingOutputsAreSkipped(t *testing.T) {
	n := NewNotifier(staticPrefs{allEnabled()}, timertest.NewClock(), Outputs{})

	assert.NotPanics(t, func() {
		n.CountdownExpired(expired)
		n.CountdownChanged(stopped)
	})
}

func TestNotifier_DefaultAnnouncement(t *testing.T) {
	p := prefs.Defaults()
	p.AnnouncementText = "   "

	assert.NotEmpty(t, AnnouncementText(p))
	p.AnnouncementText = "Done"
	assert.Equal(t, "Done", AnnouncementText(p))
}

func TestNotifier_RepeatsSoundUntilStopped(t *testing.T) {
	clock := timertest.NewClock()
	out := &fakeOutputs{}
	p := prefs.Defaults()
	p.BlinkOnExpiration = true
	p.PlayAlertSoundOnExpiration = true
	p.RepeatAlertSoundOnExpiration = true
	p.AlertSoundRepeatIntervalSeconds = 3
	n := NewNotifier(staticPrefs{p}, clock, out.outputs())

	n.CountdownExpired(expired)
	assert.Equal(t, 1, out.plays)

	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, out.plays)
	clock.Advance(time.Second)
	assert.Equal(t, 2, out.plays)
	clock.Advance(3 * time.Second)
	assert.Equal(t, 3, out.plays)

	n.CountdownChanged(stopped)
	assert.Equal(t, []bool{true, false}, out.blinking)
	assert.Equal(t, 0, clock.Pending())
	clock.Advance(time.Minute)
	assert.Equal(t, 3, out.plays)
}

func TestNotifier_RepeatIntervalMinimumOneSecond(t *testing.T) {
	clock := timertest.NewClock()
	out := &fakeOutputs{}
	p := prefs.Defaults()
	p.PlayAlertSoundOnExpiration = true
	p.RepeatAlertSoundOnExpiration = true
	p.AlertSoundRepeatIntervalSeconds = 0
	n := NewNotifier(staticPrefs{p}, clock, out.outputs())

	n.CountdownExpired(expired)
	delay, ok := clock.LastDelay()

	assert.True(t, ok)
	assert.Equal(t, time.Second, delay)
}
