package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"MenubarCountdown/i18n"
	"MenubarCountdown/prefs"
)

// PreferencesWindow edits the user's preferences.
type PreferencesWindow struct {
	app    App
	window fyne.Window

	showSeconds     *widget.Check
	blink           *widget.Check
	playSound       *widget.Check
	repeatSound     *widget.Check
	repeatInterval  *widget.Entry
	announce        *widget.Check
	announcement    *widget.Entry
	showAlertWindow *widget.Check
	showOnLaunch    *widget.Check
}

// NewPreferencesWindow builds the (hidden) preferences window.
func NewPreferencesWindow(a App, fyneApp fyne.App) *PreferencesWindow {
	p := &PreferencesWindow{app: a}
	p.window = newHiddenWindow(fyneApp, i18n.T("Preferences..."))

	p.showSeconds = widget.NewCheck(i18n.T("Show seconds"), nil)
	p.blink = widget.NewCheck(i18n.T("Blink when timer expires"), nil)
	p.playSound = widget.NewCheck(i18n.T("Play alert sound"), nil)
	p.repeatSound = widget.NewCheck(i18n.T("Repeat alert sound"), nil)
	p.repeatInterval = widget.NewEntry()
	p.repeatInterval.Validator = func(s string) error {
		_, err := strconv.Atoi(s)
		return err
	}
	p.announce = widget.NewCheck(i18n.T("Speak announcement"), nil)
	p.announcement = widget.NewEntry()
	p.announcement.SetPlaceHolder(i18n.T("The Menubar Countdown timer has reached zero."))
	p.showAlertWindow = widget.NewCheck(i18n.T("Show alert window"), nil)
	p.showOnLaunch = widget.NewCheck(i18n.T("Show start dialog on launch"), nil)

	p.playSound.OnChanged = func(on bool) { p.syncEnabled() }
	p.repeatSound.OnChanged = func(on bool) { p.syncEnabled() }
	p.announce.OnChanged = func(on bool) { p.syncEnabled() }

	form := &widget.Form{
		Items: []*widget.FormItem{
			{Text: i18n.T("Display"), Widget: container.NewVBox(p.showSeconds, p.blink)},
			{Text: i18n.T("Sound"), Widget: container.NewVBox(p.playSound, p.repeatSound)},
			{Text: i18n.T("Repeat every (s)"), Widget: p.repeatInterval},
			{Text: i18n.T("Speech"), Widget: p.announce},
			{Text: i18n.T("Announcement"), Widget: p.announcement},
			{Text: i18n.T("Alert"), Widget: p.showAlertWindow},
			{Text: i18n.T("Launch"), Widget: p.showOnLaunch},
		},
		OnSubmit:   p.save,
		OnCancel:   p.window.Hide,
		SubmitText: i18n.T("OK"),
		CancelText: i18n.T("Cancel"),
	}
	p.window.SetContent(form)
	p.window.Resize(fyne.NewSize(420, 0))
	return p
}

// Show loads the stored preferences into the form and opens the window.
func (p *PreferencesWindow) Show() {
	log.Printf("show preferences")
	v := p.app.Prefs().Load()
	fyne.Do(func() {
		p.load(v)
		p.window.Show()
		p.window.RequestFocus()
	})
}

func (p *PreferencesWindow) load(v prefs.Prefs) {
	p.showSeconds.SetChecked(v.ShowSeconds)
	p.blink.SetChecked(v.BlinkOnExpiration)
	p.playSound.SetChecked(v.PlayAlertSoundOnExpiration)
	p.repeatSound.SetChecked(v.RepeatAlertSoundOnExpiration)
	p.repeatInterval.SetText(strconv.Itoa(v.AlertSoundRepeatIntervalSeconds))
	p.announce.SetChecked(v.AnnounceExpiration)
	p.announcement.SetText(v.AnnouncementText)
	p.showAlertWindow.SetChecked(v.ShowAlertWindowOnExpiration)
	p.showOnLaunch.SetChecked(v.ShowStartDialogOnLaunch)
	p.syncEnabled()
}

// values reads the form; the timer setting is kept from the store.
func (p *PreferencesWindow) values() prefs.Prefs {
	v := p.app.Prefs().Load()
	v.ShowSeconds = p.showSeconds.Checked
	v.BlinkOnExpiration = p.blink.Checked
	v.PlayAlertSoundOnExpiration = p.playSound.Checked
	v.RepeatAlertSoundOnExpiration = p.repeatSound.Checked
	if n, err := strconv.Atoi(p.repeatInterval.Text); err == nil {
		v.AlertSoundRepeatIntervalSeconds = max(n, prefs.MinRepeatIntervalSeconds)
	}
	v.AnnounceExpiration = p.announce.Checked
	v.AnnouncementText = p.announcement.Text
	v.ShowAlertWindowOnExpiration = p.showAlertWindow.Checked
	v.ShowStartDialogOnLaunch = p.showOnLaunch.Checked
	return v
}

func (p *PreferencesWindow) save() {
	p.app.Prefs().Save(p.values())
	log.Printf("preferences saved")
	p.window.Hide()
}

func (p *PreferencesWindow) syncEnabled() {
	setEnabled(p.repeatSound, p.playSound.Checked)
	setEnabled(p.repeatInterval, p.playSound.Checked && p.repeatSound.Checked)
	setEnabled(p.announcement, p.announce.Checked)
}

func setEnabled(w fyne.Disableable, on bool) {
	if on {
		w.Enable()
	} else {
		w.Disable()
	}
}
