package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MenubarCountdown/prefs"
	"MenubarCountdown/timer"
)

type fakeController struct {
	calls    []string
	started  []int
	snapshot timer.Snapshot
	err      error
}

func (f *fakeController) Start(seconds int) error {
	f.calls = append(f.calls, "start")
	f.started = append(f.started, seconds)
	return f.err
}

func (f *fakeController) Pause() error  { f.calls = append(f.calls, "pause"); return f.err }
func (f *fakeController) Resume() error { f.calls = append(f.calls, "resume"); return f.err }
func (f *fakeController) Stop() error   { f.calls = append(f.calls, "stop"); return f.err }

func (f *fakeController) Snapshot() timer.Snapshot { return f.snapshot }

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNew_UsesStoredSetting(t *testing.T) {
	ctrl := &fakeController{}
	p := prefs.Defaults()
	p.TimerSettingSeconds = 90

	m := New(ctrl, p, -1)
	assert.Equal(t, 90, m.setting)

	m = New(ctrl, p, 30)
	assert.Equal(t, 30, m.setting)
}

func TestNew_ZeroSettingIsKept(t *testing.T) {
	p := prefs.Defaults()
	p.TimerSettingSeconds = 90

	m := New(&fakeController{}, p, 0)
	assert.Equal(t, 0, m.setting)
}

func TestModel_InitStartsCountdown(t *testing.T) {
	ctrl := &fakeController{}
	m := New(ctrl, prefs.Defaults(), 120)

	msg := m.Init()()

	assert.Nil(t, msg)
	assert.Equal(t, []int{120}, ctrl.started)
}

func TestModel_KeysDriveController(t *testing.T) {
	ctrl := &fakeController{}
	m := New(ctrl, prefs.Defaults(), 60)

	m, _ = update(t, m, snapshotMsg(timer.Snapshot{State: timer.StateRunning, CanPause: true}))
	_, cmd := update(t, m, key("p"))
	cmd()

	m, _ = update(t, m, snapshotMsg(timer.Snapshot{State: timer.StatePaused, CanResume: true}))
	_, cmd = update(t, m, key("p"))
	cmd()

	_, cmd = update(t, m, key("x"))
	cmd()

	_, cmd = update(t, m, key("s"))
	cmd()

	assert.Equal(t, []string{"pause", "resume", "stop", "start"}, ctrl.calls)
}

func TestModel_ErrorsAreShown(t *testing.T) {
	ctrl := &fakeController{err: errors.New("boom")}
	m := New(ctrl, prefs.Defaults(), 60)

	_, cmd := update(t, m, key("x"))
	msg := cmd()
	m, _ = update(t, m, msg)

	assert.Contains(t, m.View(), "boom")
}

func TestModel_ViewShowsCountdown(t *testing.T) {
	p := prefs.Defaults()
	m := New(&fakeController{}, p, 60)

	assert.Contains(t, m.View(), "00:01:00")

	m, _ = update(t, m, snapshotMsg(timer.Snapshot{State: timer.StateRunning, RemainingSeconds: 3661}))
	assert.Contains(t, m.View(), "01:01:01")
	assert.Contains(t, m.View(), "running")

	p.ShowSeconds = false
	m.prefs = p
	assert.Contains(t, m.View(), "01:02")
}

func TestModel_ExpiredBannerAndBlink(t *testing.T) {
	m := New(&fakeController{}, prefs.Defaults(), 60)
	m, _ = update(t, m, snapshotMsg(timer.Snapshot{State: timer.StateExpired}))

	m, _ = update(t, m, bannerMsg{})
	assert.Contains(t, m.View(), "Time's up!")

	m, cmd := update(t, m, blinkMsg(true))
	assert.NotNil(t, cmd)
	m, _ = update(t, m, blinkTick{})
	assert.True(t, m.hidden)
	assert.NotContains(t, m.View(), "00:00:00")

	m, _ = update(t, m, blinkMsg(false))
	assert.False(t, m.hidden)
	m, cmd = update(t, m, blinkTick{})
	assert.Nil(t, cmd)

	m, _ = update(t, m, snapshotMsg(timer.Snapshot{State: timer.StateStopped}))
	assert.False(t, m.banner)
}

func TestBridge_ForwardsEvents(t *testing.T) {
	var got []tea.Msg
	b := &Bridge{send: func(msg tea.Msg) { got = append(got, msg) }}

	b.CountdownChanged(timer.Snapshot{RemainingSeconds: 5})
	b.SetBlinking(true)
	b.ShowExpiredAlert()

	require.Len(t, got, 3)
	assert.Equal(t, snapshotMsg(timer.Snapshot{RemainingSeconds: 5}), got[0])
	assert.Equal(t, blinkMsg(true), got[1])
	assert.Equal(t, bannerMsg{}, got[2])
}
