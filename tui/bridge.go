package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"MenubarCountdown/timer"
)

// Bridge forwards controller and notifier events into a running program. It
// implements control.Observer, alert.Blinker and alert.AlertWindow.
type Bridge struct {
	send func(tea.Msg)
}

// NewProgram creates the Bubble Tea program for m and the bridge feeding it.
func NewProgram(m Model) (*tea.Program, *Bridge) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	return p, &Bridge{send: p.Send}
}

// CountdownChanged implements control.Observer.
func (b *Bridge) CountdownChanged(s timer.Snapshot) {
	b.send(snapshotMsg(s))
}

// CountdownExpired implements control.Observer. The notifier decides what
// happens on expiration, so the bridge only forwards the final snapshot.
func (b *Bridge) CountdownExpired(s timer.Snapshot) {
	b.send(snapshotMsg(s))
}

// SetBlinking implements alert.Blinker.
func (b *Bridge) SetBlinking(on bool) {
	b.send(blinkMsg(on))
}

// ShowExpiredAlert implements alert.AlertWindow.
func (b *Bridge) ShowExpiredAlert() {
	b.send(bannerMsg{})
}
