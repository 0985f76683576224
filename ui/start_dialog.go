package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"MenubarCountdown/i18n"
	"MenubarCountdown/timer"
)

// StartDialog asks for the countdown duration.
type StartDialog struct {
	app    App
	alert  *ExpiredAlert
	window fyne.Window

	entry       *widget.Entry
	startButton *widget.Button
}

// NewStartDialog builds the (hidden) start dialog window.
func NewStartDialog(a App, fyneApp fyne.App, alert *ExpiredAlert) *StartDialog {
	d := &StartDialog{app: a, alert: alert}
	d.window = newHiddenWindow(fyneApp, i18n.T("Start Countdown..."))

	d.entry = widget.NewEntry()
	d.entry.SetPlaceHolder(i18n.T("hh:mm:ss, mm:ss or seconds"))
	d.entry.Validator = func(s string) error {
		_, err := timer.ParseSetting(s)
		return err
	}
	d.entry.OnSubmitted = func(string) { d.submit() }

	d.startButton = widget.NewButton(i18n.T("Start"), d.submit)
	d.startButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton(i18n.T("Cancel"), d.window.Hide)

	d.window.SetContent(container.NewVBox(
		d.entry,
		container.NewHBox(layout.NewSpacer(), cancelButton, d.startButton),
	))
	d.window.Resize(fyne.NewSize(280, 0))
	d.window.SetFixedSize(true)
	return d
}

// Show stops the countdown and opens the dialog pre-filled with the last
// setting.
func (d *StartDialog) Show() {
	log.Printf("show start timer dialog")
	d.alert.Dismiss()
	d.app.StopCountdown()

	setting := d.app.Prefs().Load().TimerSettingSeconds
	fyne.Do(func() {
		d.entry.SetText(timer.FormatRemaining(setting, true))
		d.window.Show()
		d.window.RequestFocus()
		d.window.Canvas().Focus(d.entry)
	})
}

func (d *StartDialog) submit() {
	log.Printf("start button was clicked")
	seconds, err := timer.ParseSetting(d.entry.Text)
	if err != nil {
		dialog.ShowError(err, d.window)
		return
	}

	d.alert.Dismiss()
	d.window.Hide()
	d.app.Prefs().SetTimerSetting(seconds)
	if err := d.app.StartCountdown(seconds); err != nil {
		log.Printf("start countdown failed: %v", err)
	}
}
