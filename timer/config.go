package timer

import "errors"

// State defines the possible states of a countdown.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

const (
	// DefaultSettingSeconds is the setting used until the user picks one (25 minutes).
	DefaultSettingSeconds = 25 * 60

	// MaxSettingSeconds is the largest setting the start dialog accepts (99:59:59).
	MaxSettingSeconds = 99*3600 + 59*60 + 59
)

var (
	// ErrInvalidSetting is returned for negative or out of range settings.
	ErrInvalidSetting = errors.New("invalid timer setting")

	// ErrInvalidTransition is returned when an operation is not allowed in the current state.
	ErrInvalidTransition = errors.New("invalid countdown transition")
)
