// Package tui is a terminal front-end for the countdown built with Bubble Tea.
// It drives the same controller and notifier as the tray application.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"MenubarCountdown/i18n"
	"MenubarCountdown/prefs"
	"MenubarCountdown/timer"
)

// Controller is the part of control.Controller the model uses.
type Controller interface {
	Start(seconds int) error
	Pause() error
	Resume() error
	Stop() error
	Snapshot() timer.Snapshot
}

// PrefsSource provides the current preferences.
type PrefsSource interface {
	Load() prefs.Prefs
}

type (
	snapshotMsg timer.Snapshot
	blinkMsg    bool
	blinkTick   struct{}
	bannerMsg   struct{}
	errMsg      struct{ err error }
)

const blinkInterval = 500 * time.Millisecond

var (
	timeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
	pausedStyle = timeStyle.BorderForeground(lipgloss.Color("214"))
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 2)
	stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model of the countdown screen.
type Model struct {
	ctrl    Controller
	prefs   PrefsSource
	setting int

	snap     timer.Snapshot
	blinking bool
	hidden   bool
	banner   bool
	err      error
}

// New creates the model. A negative setting uses the stored setting.
func New(ctrl Controller, p PrefsSource, setting int) Model {
	if setting < 0 {
		setting = p.Load().TimerSettingSeconds
	}
	return Model{ctrl: ctrl, prefs: p, setting: setting, snap: ctrl.Snapshot()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.run(func() error { return m.ctrl.Start(m.setting) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case snapshotMsg:
		m.snap = timer.Snapshot(msg)
		if m.snap.State != timer.StateExpired {
			m.banner = false
		}
		return m, nil
	case blinkMsg:
		wasBlinking := m.blinking
		m.blinking = bool(msg)
		m.hidden = false
		if m.blinking && !wasBlinking {
			return m, blinkCmd()
		}
		return m, nil
	case blinkTick:
		if !m.blinking {
			return m, nil
		}
		m.hidden = !m.hidden
		return m, blinkCmd()
	case bannerMsg:
		m.banner = true
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Sequence(m.run(m.ctrl.Stop), tea.Quit)
	case "s", "enter":
		m.banner = false
		return m, m.run(func() error { return m.ctrl.Start(m.setting) })
	case "p", " ":
		switch {
		case m.snap.CanPause:
			return m, m.run(m.ctrl.Pause)
		case m.snap.CanResume:
			return m, m.run(m.ctrl.Resume)
		}
	case "x":
		m.banner = false
		return m, m.run(m.ctrl.Stop)
	}
	return m, nil
}

// run performs a controller call off the Update goroutine, since the
// controller's observers deliver messages back into this program.
func (m Model) run(f func() error) tea.Cmd {
	return func() tea.Msg {
		if err := f(); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// View implements tea.Model.
func (m Model) View() string {
	showSeconds := m.prefs.Load().ShowSeconds
	text := timer.FormatRemaining(m.snap.RemainingSeconds, showSeconds)
	if !m.snap.Active() {
		text = timer.FormatRemaining(m.setting, showSeconds)
	}
	if m.hidden {
		text = strings.Repeat(" ", len(text))
	}

	style := timeStyle
	if m.snap.State == timer.StatePaused {
		style = pausedStyle
	}

	var b strings.Builder
	b.WriteString(i18n.T("Menubar Countdown"))
	b.WriteString("\n\n")
	b.WriteString(style.Render(text))
	b.WriteString("\n")
	b.WriteString(stateStyle.Render(m.snap.State.String()))
	b.WriteString("\n")
	if m.banner {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(i18n.T("Time's up!")))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s start • p pause/resume • x stop • q quit"))
	b.WriteString("\n")
	return b.String()
}

func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg {
		return blinkTick{}
	})
}
