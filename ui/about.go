package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"MenubarCountdown/i18n"
)

// AboutWindow shows the application name and version.
type AboutWindow struct {
	window fyne.Window
}

// NewAboutWindow builds the (hidden) about window.
func NewAboutWindow(fyneApp fyne.App, version string) *AboutWindow {
	w := newHiddenWindow(fyneApp, i18n.T("About Menubar Countdown"))

	name := widget.NewLabelWithStyle(AppName(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	text := widget.NewLabel(fmt.Sprintf("Version %s\n\nA countdown timer for the system tray.", version))
	text.Alignment = fyne.TextAlignCenter
	text.Wrapping = fyne.TextWrapWord

	w.SetContent(container.NewVBox(
		name,
		text,
		container.NewHBox(layout.NewSpacer(), widget.NewButton(i18n.T("OK"), w.Hide), layout.NewSpacer()),
	))
	w.Resize(fyne.NewSize(300, 0))
	return &AboutWindow{window: w}
}

// Show opens the about window.
func (a *AboutWindow) Show() {
	fyne.Do(func() {
		a.window.Show()
		a.window.RequestFocus()
	})
}
