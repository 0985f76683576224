// Package ui is the fyne shell around the countdown: the system tray status
// item and menu, the start dialog, the expired alert and the preferences
// window. It only renders Snapshots and forwards user actions to App.
package ui

import (
	"fyne.io/fyne/v2"

	"MenubarCountdown/i18n"
	"MenubarCountdown/prefs"
	"MenubarCountdown/timer"
)

// App defines what the UI needs from the application.
type App interface {
	StartCountdown(seconds int) error
	PauseCountdown()
	ResumeCountdown()
	StopCountdown()
	Snapshot() timer.Snapshot
	Prefs() *prefs.Store
}

// Shell groups the windows of the tray application.
type Shell struct {
	Status      *StatusItem
	StartDialog *StartDialog
	Alert       *ExpiredAlert
	Preferences *PreferencesWindow
	About       *AboutWindow
}

// NewShell builds every window and the tray menu. Windows stay hidden until
// requested.
func NewShell(a App, fyneApp fyne.App, version string) *Shell {
	sh := &Shell{}
	sh.Alert = NewExpiredAlert(a, fyneApp)
	sh.StartDialog = NewStartDialog(a, fyneApp, sh.Alert)
	sh.Alert.SetOnRestart(sh.StartDialog.Show)
	sh.Preferences = NewPreferencesWindow(a, fyneApp)
	sh.About = NewAboutWindow(fyneApp, version)
	sh.Status = NewStatusItem(a, fyneApp, MenuActions{
		Start:       sh.StartDialog.Show,
		Preferences: sh.Preferences.Show,
		About:       sh.About.Show,
	})
	return sh
}

// AppName returns the localized application name.
func AppName() string {
	return i18n.T("Menubar Countdown")
}

func newHiddenWindow(fyneApp fyne.App, title string) fyne.Window {
	w := fyneApp.NewWindow(title)
	w.SetCloseIntercept(w.Hide)
	return w
}
