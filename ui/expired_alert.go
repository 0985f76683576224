package ui

import (
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MenubarCountdown/i18n"
)

// ExpiredAlert is the window shown when the countdown expires. It implements
// alert.AlertWindow.
type ExpiredAlert struct {
	app       App
	window    fyne.Window
	onRestart func()

	mu      sync.Mutex
	visible bool

	okButton      *widget.Button
	restartButton *widget.Button
}

// NewExpiredAlert builds the (hidden) alert window.
func NewExpiredAlert(a App, fyneApp fyne.App) *ExpiredAlert {
	e := &ExpiredAlert{app: a}
	e.window = fyneApp.NewWindow(AppName())
	e.window.SetCloseIntercept(e.dismissAndStop)

	message := canvas.NewText(i18n.T("Time's up!"), theme.Color(theme.ColorNameForeground))
	message.TextSize = 24
	message.TextStyle.Bold = true
	icon := canvas.NewImageFromResource(theme.WarningIcon())
	icon.SetMinSize(fyne.NewSize(48, 48))
	accent := canvas.NewRectangle(color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff})
	accent.SetMinSize(fyne.NewSize(0, 4))

	e.okButton = widget.NewButton(i18n.T("OK"), e.dismissAndStop)
	e.okButton.Importance = widget.HighImportance
	e.restartButton = widget.NewButton(i18n.T("Restart Countdown"), e.restart)

	e.window.SetContent(container.NewVBox(
		accent,
		container.NewHBox(icon, container.NewCenter(message)),
		container.NewHBox(layout.NewSpacer(), e.restartButton, e.okButton),
	))
	e.window.SetFixedSize(true)
	return e
}

// SetOnRestart sets the action of the Restart Countdown button.
func (e *ExpiredAlert) SetOnRestart(f func()) {
	e.onRestart = f
}

// ShowExpiredAlert brings the alert window to the front.
func (e *ExpiredAlert) ShowExpiredAlert() {
	fyne.Do(func() {
		e.setVisible(true)
		e.window.Show()
		e.window.RequestFocus()
	})
}

// Dismiss hides the alert window without touching the countdown.
func (e *ExpiredAlert) Dismiss() {
	fyne.Do(func() {
		if e.setVisible(false) {
			log.Printf("dismiss timer expired alert")
		}
		e.window.Hide()
	})
}

// Visible reports whether the alert is showing.
func (e *ExpiredAlert) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// setVisible records the visibility and returns the previous value.
func (e *ExpiredAlert) setVisible(v bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	was := e.visible
	e.visible = v
	return was
}

func (e *ExpiredAlert) dismissAndStop() {
	e.Dismiss()
	e.app.StopCountdown()
}

func (e *ExpiredAlert) restart() {
	log.Printf("restart countdown was clicked")
	e.dismissAndStop()
	if e.onRestart != nil {
		e.onRestart()
	}
}
