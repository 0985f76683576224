package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MenubarCountdown/control"
	"MenubarCountdown/prefs"
	"MenubarCountdown/timer"
	"MenubarCountdown/timer/timertest"
	"MenubarCountdown/ui"
)

func TestParseSettingFlag(t *testing.T) {
	v, err := parseSettingFlag("")
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = parseSettingFlag("5:00")
	require.NoError(t, err)
	assert.Equal(t, 300, v)

	_, err = parseSettingFlag("soon")
	assert.ErrorIs(t, err, timer.ErrInvalidSetting)
}

func newTestManager(t *testing.T) *AppManager {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	a := &AppManager{
		fyneApp: fyneApp,
		store:   prefs.NewStore(fyneApp.Preferences(), prefs.Defaults()),
		ctrl:    control.New(timertest.NewClock()),
	}
	a.shell = ui.NewShell(a, fyneApp, "test")
	a.ctrl.Subscribe(a)
	t.Cleanup(a.Shutdown)
	return a
}

func TestAppManager_LaunchWithSettingStarts(t *testing.T) {
	a := newTestManager(t)

	a.Launch(90)

	s := a.Snapshot()
	assert.Equal(t, timer.StateRunning, s.State)
	assert.Equal(t, 90, s.RemainingSeconds)
	assert.Equal(t, 90, a.Prefs().Load().TimerSettingSeconds)
}

func TestAppManager_PauseResumeStop(t *testing.T) {
	a := newTestManager(t)
	require.NoError(t, a.StartCountdown(60))

	a.PauseCountdown()
	assert.Equal(t, timer.StatePaused, a.Snapshot().State)

	a.ResumeCountdown()
	assert.Equal(t, timer.StateRunning, a.Snapshot().State)

	a.StopCountdown()
	s := a.Snapshot()
	assert.Equal(t, timer.StateStopped, s.State)
	assert.False(t, s.CanPause)
	assert.False(t, s.CanResume)
}

func TestAppManager_InvalidTransitionsAreLogged(t *testing.T) {
	a := newTestManager(t)

	assert.NotPanics(t, func() {
		a.PauseCountdown()
		a.ResumeCountdown()
	})
	assert.Equal(t, timer.StateStopped, a.Snapshot().State)
}
