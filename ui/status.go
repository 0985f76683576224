package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"MenubarCountdown/i18n"
	"MenubarCountdown/timer"
)

// BlinkInterval is how long the title stays visible or hidden while blinking.
const BlinkInterval = 500 * time.Millisecond

// MenuActions are the menu entries that open windows.
type MenuActions struct {
	Start       func()
	Preferences func()
	About       func()
}

// MenuState is what the status menu shows for a snapshot.
type MenuState struct {
	Title     string
	CanPause  bool
	CanResume bool
	CanStop   bool
}

// MenuStateFor derives the menu contents: the countdown when one is active,
// otherwise the application name.
func MenuStateFor(s timer.Snapshot, showSeconds bool) MenuState {
	title := AppName()
	if s.Active() {
		title = timer.FormatRemaining(s.RemainingSeconds, showSeconds)
	}
	return MenuState{
		Title:     title,
		CanPause:  s.CanPause,
		CanResume: s.CanResume,
		CanStop:   s.Active(),
	}
}

// StatusItem is the system tray entry. It implements alert.Blinker.
type StatusItem struct {
	app  App
	desk desktop.App

	menu       *fyne.Menu
	titleItem  *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resumeItem *fyne.MenuItem
	stopItem   *fyne.MenuItem

	mu        sync.Mutex
	state     MenuState
	blinking  bool
	hidden    bool
	blinkStop chan struct{}
}

// NewStatusItem creates the tray menu. Without a desktop driver (tests,
// mobile) the menu is built but not installed.
func NewStatusItem(a App, fyneApp fyne.App, actions MenuActions) *StatusItem {
	si := &StatusItem{app: a}

	si.titleItem = fyne.NewMenuItem(AppName(), nil)
	si.titleItem.Disabled = true
	si.startItem = fyne.NewMenuItem(i18n.T("Start Countdown..."), actions.Start)
	si.pauseItem = fyne.NewMenuItem(i18n.T("Pause"), a.PauseCountdown)
	si.resumeItem = fyne.NewMenuItem(i18n.T("Resume"), a.ResumeCountdown)
	si.stopItem = fyne.NewMenuItem(i18n.T("Stop"), a.StopCountdown)

	si.menu = fyne.NewMenu(AppName(),
		si.titleItem,
		fyne.NewMenuItemSeparator(),
		si.startItem,
		si.pauseItem,
		si.resumeItem,
		si.stopItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(i18n.T("Preferences..."), actions.Preferences),
		fyne.NewMenuItem(i18n.T("About Menubar Countdown"), actions.About),
	)

	si.state = MenuStateFor(a.Snapshot(), true)
	si.apply()

	if desk, ok := fyneApp.(desktop.App); ok {
		si.desk = desk
		desk.SetSystemTrayIcon(theme.HistoryIcon())
		desk.SetSystemTrayMenu(si.menu)
	} else {
		log.Println("System tray not supported by this driver")
	}
	return si
}

// Menu returns the tray menu.
func (si *StatusItem) Menu() *fyne.Menu {
	return si.menu
}

// Render updates the menu for a new snapshot.
func (si *StatusItem) Render(s timer.Snapshot, showSeconds bool) {
	si.mu.Lock()
	si.state = MenuStateFor(s, showSeconds)
	si.mu.Unlock()

	fyne.Do(si.refresh)
}

// SetBlinking starts or stops blinking the title.
func (si *StatusItem) SetBlinking(on bool) {
	si.mu.Lock()
	if on == si.blinking {
		si.mu.Unlock()
		return
	}
	si.blinking = on
	if on {
		si.blinkStop = make(chan struct{})
		go si.blink(si.blinkStop)
		si.mu.Unlock()
		return
	}
	close(si.blinkStop)
	si.blinkStop = nil
	si.hidden = false
	si.mu.Unlock()

	// refresh locks si.mu again, and fyne.Do may run it inline
	fyne.Do(si.refresh)
}

// Blinking reports whether the title is blinking.
func (si *StatusItem) Blinking() bool {
	si.mu.Lock()
	defer si.mu.Unlock()
	return si.blinking
}

func (si *StatusItem) blink(stop chan struct{}) {
	ticker := time.NewTicker(BlinkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			si.mu.Lock()
			if si.blinkStop != stop {
				si.mu.Unlock()
				return
			}
			si.hidden = !si.hidden
			si.mu.Unlock()
			fyne.Do(si.refresh)
		}
	}
}

func (si *StatusItem) refresh() {
	si.apply()
	si.menu.Refresh()
}

// apply copies the current state into the menu items.
func (si *StatusItem) apply() {
	si.mu.Lock()
	state := si.state
	hidden := si.hidden
	si.mu.Unlock()

	si.titleItem.Label = state.Title
	if hidden {
		si.titleItem.Label = " "
	}
	si.pauseItem.Disabled = !state.CanPause
	si.resumeItem.Disabled = !state.CanResume
	si.stopItem.Disabled = !state.CanStop
}
