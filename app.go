// Package main contains the application wiring and the AppManager, which
// connects the countdown controller to the tray UI, the expiration notifier,
// audio and speech.
//
// Maintenance notes:
//   - All countdown state lives in control.Controller and changes only on its
//     event loop goroutine. AppManager and the UI read Snapshots and send
//     commands; they never hold countdown state of their own.
//   - Observer callbacks (CountdownChanged, and the notifier's reactions) run
//     on the controller goroutine. Anything touching fyne widgets from there
//     must go through fyne.Do, which the ui package does internally.
package main

import (
	"log"

	"fyne.io/fyne/v2"

	"MenubarCountdown/alert"
	"MenubarCountdown/audio"
	"MenubarCountdown/config"
	"MenubarCountdown/control"
	"MenubarCountdown/prefs"
	"MenubarCountdown/speech"
	"MenubarCountdown/timer"
	"MenubarCountdown/ui"
)

// AppManager is the main application struct, holding the long-lived services.
type AppManager struct {
	fyneApp fyne.App
	store   *prefs.Store
	ctrl    *control.Controller
	shell   *ui.Shell
}

// NewAppManager creates the controller, notifier and UI shell.
func NewAppManager(fyneApp fyne.App, cfg config.Config) *AppManager {
	a := &AppManager{
		fyneApp: fyneApp,
		store:   prefs.NewStore(fyneApp.Preferences(), cfg.Defaults),
		ctrl:    control.New(timer.SystemClock),
	}

	a.shell = ui.NewShell(a, fyneApp, version)

	notifier := alert.NewNotifier(a.store, timer.SystemClock, alert.Outputs{
		Blinker:   a.shell.Status,
		Sound:     audio.NewPlayer(cfg.SoundFile, cfg.Volume),
		Announcer: speech.NewAnnouncer(cfg.SpeechCommand),
		Window:    a.shell.Alert,
	})

	a.ctrl.Subscribe(a)
	a.ctrl.Subscribe(notifier)
	return a
}

// Launch runs the launch-time behaviour: start immediately when a setting was
// given on the command line, otherwise show the start dialog if enabled.
func (a *AppManager) Launch(setting int) {
	log.Printf("application did finish launching")
	a.shell.Status.Render(a.ctrl.Snapshot(), a.store.Load().ShowSeconds)

	switch {
	case setting >= 0:
		a.store.SetTimerSetting(setting)
		if err := a.StartCountdown(setting); err != nil {
			log.Printf("start countdown failed: %v", err)
		}
	case a.store.Load().ShowStartDialogOnLaunch:
		a.shell.StartDialog.Show()
	}
}

// StartCountdown starts a countdown of the given number of seconds.
func (a *AppManager) StartCountdown(seconds int) error {
	return a.ctrl.Start(seconds)
}

// PauseCountdown pauses the countdown.
func (a *AppManager) PauseCountdown() {
	if err := a.ctrl.Pause(); err != nil {
		log.Printf("pause failed: %v", err)
	}
}

// ResumeCountdown resumes a paused countdown.
func (a *AppManager) ResumeCountdown() {
	if err := a.ctrl.Resume(); err != nil {
		log.Printf("resume failed: %v", err)
	}
}

// StopCountdown stops the countdown.
func (a *AppManager) StopCountdown() {
	if err := a.ctrl.Stop(); err != nil {
		log.Printf("stop failed: %v", err)
	}
}

// Snapshot returns the current countdown state.
func (a *AppManager) Snapshot() timer.Snapshot {
	return a.ctrl.Snapshot()
}

// Prefs returns the preference store.
func (a *AppManager) Prefs() *prefs.Store {
	return a.store
}

// CountdownChanged implements control.Observer by re-rendering the status item.
func (a *AppManager) CountdownChanged(s timer.Snapshot) {
	a.shell.Status.Render(s, a.store.Load().ShowSeconds)
}

// CountdownExpired implements control.Observer. The notifier owns the
// expiration reactions.
func (a *AppManager) CountdownExpired(timer.Snapshot) {}

// Shutdown stops the controller's event loop.
func (a *AppManager) Shutdown() {
	log.Printf("application will terminate")
	a.ctrl.Close()
}
