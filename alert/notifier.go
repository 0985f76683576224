// Package alert fans a countdown expiration out to the user-selected
// reactions: blinking the title, playing the alert sound, speaking an
// announcement and showing the alert window.
package alert

import (
	"log"
	"strings"
	"sync"
	"time"

	"MenubarCountdown/i18n"
	"MenubarCountdown/prefs"
	"MenubarCountdown/timer"
)

// DefaultAnnouncement is spoken when no announcement text is configured.
const DefaultAnnouncement = "The Menubar Countdown timer has reached zero."

// Blinker toggles blinking of the countdown title.
type Blinker interface {
	SetBlinking(on bool)
}

// SoundPlayer plays the alert sound once.
type SoundPlayer interface {
	Play() error
}

// Announcer speaks text aloud.
type Announcer interface {
	Announce(text string) error
}

// AlertWindow shows the timer-expired alert.
type AlertWindow interface {
	ShowExpiredAlert()
}

// PrefsSource provides the current preferences.
type PrefsSource interface {
	Load() prefs.Prefs
}

// Outputs are the reactions a Notifier drives. Nil outputs are skipped.
type Outputs struct {
	Blinker   Blinker
	Sound     SoundPlayer
	Announcer Announcer
	Window    AlertWindow
}

// Notifier implements control.Observer. Every reaction is independent: a
// failing one is logged and the rest still run. Reactions never change the
// countdown.
type Notifier struct {
	prefs PrefsSource
	clock timer.Clock
	out   Outputs

	mu        sync.Mutex
	expired   bool
	repeat    timer.Stopper
	repeatGen uint64
}

// NewNotifier creates a notifier reading preferences from p.
func NewNotifier(p PrefsSource, clock timer.Clock, out Outputs) *Notifier {
	if clock == nil {
		clock = timer.SystemClock
	}
	return &Notifier{prefs: p, clock: clock, out: out}
}

// CountdownChanged clears blinking and pending sound repeats once the
// countdown leaves the expired state.
func (n *Notifier) CountdownChanged(s timer.Snapshot) {
	if s.State == timer.StateExpired {
		return
	}

	n.mu.Lock()
	wasExpired := n.expired
	n.expired = false
	n.cancelRepeatLocked()
	n.mu.Unlock()

	if wasExpired && n.out.Blinker != nil {
		n.out.Blinker.SetBlinking(false)
	}
}

// CountdownExpired performs every enabled reaction once per expiration.
func (n *Notifier) CountdownExpired(s timer.Snapshot) {
	n.mu.Lock()
	if n.expired {
		n.mu.Unlock()
		return
	}
	n.expired = true
	n.mu.Unlock()

	p := n.prefs.Load()

	if p.BlinkOnExpiration {
		n.blink()
	}
	if p.PlayAlertSoundOnExpiration {
		n.startSound(p)
	}
	if p.AnnounceExpiration {
		n.announce(p)
	}
	if p.ShowAlertWindowOnExpiration {
		n.showWindow()
	}
}

func (n *Notifier) blink() {
	if n.out.Blinker == nil {
		log.Printf("blink requested but no status display is attached")
		return
	}
	n.out.Blinker.SetBlinking(true)
}

func (n *Notifier) startSound(p prefs.Prefs) {
	n.mu.Lock()
	n.repeatGen++
	gen := n.repeatGen
	n.mu.Unlock()

	n.playSound(gen, p)
}

// playSound plays the alert once and, when repeating is enabled, schedules
// itself again while the same expiration is still current.
func (n *Notifier) playSound(gen uint64, p prefs.Prefs) {
	if n.out.Sound == nil {
		log.Printf("alert sound requested but no player is attached")
		return
	}

	log.Printf("play alert sound")
	if err := n.out.Sound.Play(); err != nil {
		log.Printf("alert sound failed: %v", err)
	}

	if !p.RepeatAlertSoundOnExpiration {
		return
	}

	interval := time.Duration(p.RepeatInterval()) * time.Second
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.repeatGen || !n.expired {
		return
	}
	log.Printf("schedule alert sound repeat %v", interval)
	n.repeat = n.clock.AfterFunc(interval, func() {
		n.mu.Lock()
		current := gen == n.repeatGen && n.expired
		n.mu.Unlock()
		if current {
			n.playSound(gen, n.prefs.Load())
		}
	})
}

func (n *Notifier) cancelRepeatLocked() {
	n.repeatGen++
	if n.repeat != nil {
		n.repeat.Stop()
		n.repeat = nil
	}
}

func (n *Notifier) announce(p prefs.Prefs) {
	text := AnnouncementText(p)
	if n.out.Announcer == nil {
		log.Printf("announcement requested but no speech engine is attached")
		return
	}
	log.Printf("speaking announcement %q", text)
	if err := n.out.Announcer.Announce(text); err != nil {
		log.Printf("unable to speak announcement: %v", err)
	}
}

func (n *Notifier) showWindow() {
	if n.out.Window == nil {
		log.Printf("alert window requested but none is attached")
		return
	}
	log.Printf("show timer-expired alert")
	n.out.Window.ShowExpiredAlert()
}

// AnnouncementText returns the configured announcement, or the localized
// default when none is set.
func AnnouncementText(p prefs.Prefs) string {
	if text := strings.TrimSpace(p.AnnouncementText); text != "" {
		return text
	}
	return i18n.T(DefaultAnnouncement)
}
