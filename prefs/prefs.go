// Package prefs reads and writes the user's countdown preferences through the
// platform preference store exposed by fyne.
package prefs

import (
	"fyne.io/fyne/v2"

	"MenubarCountdown/timer"
)

// Preference keys.
const (
	ShowSecondsKey                     = "ShowSeconds"
	BlinkOnExpirationKey               = "BlinkOnExpiration"
	PlayAlertSoundOnExpirationKey      = "PlayAlertSoundOnExpiration"
	RepeatAlertSoundOnExpirationKey    = "RepeatAlertSoundOnExpiration"
	AlertSoundRepeatIntervalSecondsKey = "AlertSoundRepeatIntervalSeconds"
	AnnounceExpirationKey              = "AnnounceExpiration"
	AnnouncementTextKey                = "AnnouncementText"
	ShowAlertWindowOnExpirationKey     = "ShowAlertWindowOnExpiration"
	ShowStartDialogOnLaunchKey         = "ShowStartDialogOnLaunch"
	TimerSettingSecondsKey             = "TimerSettingSeconds"
)

// MinRepeatIntervalSeconds is the shortest alert sound repeat interval.
const MinRepeatIntervalSeconds = 1

// Prefs holds the user's preferences.
type Prefs struct {
	ShowSeconds                     bool   `toml:"show_seconds"`
	BlinkOnExpiration               bool   `toml:"blink_on_expiration"`
	PlayAlertSoundOnExpiration      bool   `toml:"play_alert_sound_on_expiration"`
	RepeatAlertSoundOnExpiration    bool   `toml:"repeat_alert_sound_on_expiration"`
	AlertSoundRepeatIntervalSeconds int    `toml:"alert_sound_repeat_interval_seconds"`
	AnnounceExpiration              bool   `toml:"announce_expiration"`
	AnnouncementText                string `toml:"announcement_text"`
	ShowAlertWindowOnExpiration     bool   `toml:"show_alert_window_on_expiration"`
	ShowStartDialogOnLaunch         bool   `toml:"show_start_dialog_on_launch"`
	TimerSettingSeconds             int    `toml:"timer_setting_seconds"`
}

// Defaults returns the built-in preference defaults.
func Defaults() Prefs {
	return Prefs{
		ShowSeconds:                     true,
		BlinkOnExpiration:               true,
		PlayAlertSoundOnExpiration:      true,
		RepeatAlertSoundOnExpiration:    false,
		AlertSoundRepeatIntervalSeconds: 5,
		AnnounceExpiration:              false,
		AnnouncementText:                "",
		ShowAlertWindowOnExpiration:     true,
		ShowStartDialogOnLaunch:         true,
		TimerSettingSeconds:             timer.DefaultSettingSeconds,
	}
}

// RepeatInterval returns the alert sound repeat interval in seconds, never
// less than MinRepeatIntervalSeconds.
func (p Prefs) RepeatInterval() int {
	if p.AlertSoundRepeatIntervalSeconds < MinRepeatIntervalSeconds {
		return MinRepeatIntervalSeconds
	}
	return p.AlertSoundRepeatIntervalSeconds
}

// Store reads preferences from a fyne.Preferences, falling back to the
// registered defaults for keys the user never set.
type Store struct {
	p        fyne.Preferences
	defaults Prefs
}

// NewStore creates a store over p with the given registered defaults.
func NewStore(p fyne.Preferences, defaults Prefs) *Store {
	return &Store{p: p, defaults: defaults}
}

// Defaults returns the registered defaults.
func (s *Store) Defaults() Prefs {
	return s.defaults
}

// Load returns the current preferences.
func (s *Store) Load() Prefs {
	d := s.defaults
	return Prefs{
		ShowSeconds:                     s.p.BoolWithFallback(ShowSecondsKey, d.ShowSeconds),
		BlinkOnExpiration:               s.p.BoolWithFallback(BlinkOnExpirationKey, d.BlinkOnExpiration),
		PlayAlertSoundOnExpiration:      s.p.BoolWithFallback(PlayAlertSoundOnExpirationKey, d.PlayAlertSoundOnExpiration),
		RepeatAlertSoundOnExpiration:    s.p.BoolWithFallback(RepeatAlertSoundOnExpirationKey, d.RepeatAlertSoundOnExpiration),
		AlertSoundRepeatIntervalSeconds: s.p.IntWithFallback(AlertSoundRepeatIntervalSecondsKey, d.AlertSoundRepeatIntervalSeconds),
		AnnounceExpiration:              s.p.BoolWithFallback(AnnounceExpirationKey, d.AnnounceExpiration),
		AnnouncementText:                s.p.StringWithFallback(AnnouncementTextKey, d.AnnouncementText),
		ShowAlertWindowOnExpiration:     s.p.BoolWithFallback(ShowAlertWindowOnExpirationKey, d.ShowAlertWindowOnExpiration),
		ShowStartDialogOnLaunch:         s.p.BoolWithFallback(ShowStartDialogOnLaunchKey, d.ShowStartDialogOnLaunch),
		TimerSettingSeconds:             s.p.IntWithFallback(TimerSettingSecondsKey, d.TimerSettingSeconds),
	}
}

// Save writes every preference.
func (s *Store) Save(v Prefs) {
	s.p.SetBool(ShowSecondsKey, v.ShowSeconds)
	s.p.SetBool(BlinkOnExpirationKey, v.BlinkOnExpiration)
	s.p.SetBool(PlayAlertSoundOnExpirationKey, v.PlayAlertSoundOnExpiration)
	s.p.SetBool(RepeatAlertSoundOnExpirationKey, v.RepeatAlertSoundOnExpiration)
	s.p.SetInt(AlertSoundRepeatIntervalSecondsKey, v.AlertSoundRepeatIntervalSeconds)
	s.p.SetBool(AnnounceExpirationKey, v.AnnounceExpiration)
	s.p.SetString(AnnouncementTextKey, v.AnnouncementText)
	s.p.SetBool(ShowAlertWindowOnExpirationKey, v.ShowAlertWindowOnExpiration)
	s.p.SetBool(ShowStartDialogOnLaunchKey, v.ShowStartDialogOnLaunch)
	s.p.SetInt(TimerSettingSecondsKey, v.TimerSettingSeconds)
}

// SetTimerSetting remembers the last timer setting chosen in the start dialog.
func (s *Store) SetTimerSetting(seconds int) {
	s.p.SetInt(TimerSettingSecondsKey, seconds)
}

// Load returns p itself, so a fixed Prefs value can stand in for a Store.
func (p Prefs) Load() Prefs {
	return p
}
