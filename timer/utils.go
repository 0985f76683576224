package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRemaining converts remaining seconds into an HH:MM:SS string, or HH:MM
// rounded up to the next whole minute when showSeconds is false.
// TODO: use a locale-aware time format once i18n covers number formatting.
func FormatRemaining(sec int, showSeconds bool) string {
	if sec < 0 {
		sec = 0
	}
	if !showSeconds {
		sec = (sec + 59) / 60 * 60
	}

	hours, minutes, seconds := SplitSetting(sec)
	if showSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// SplitSetting splits a number of seconds into hours, minutes and seconds.
func SplitSetting(sec int) (hours, minutes, seconds int) {
	if sec < 0 {
		sec = 0
	}
	return sec / 3600, sec % 3600 / 60, sec % 60
}

// ParseSetting parses "hh:mm:ss", "mm:ss" or a plain number of seconds.
func ParseSetting(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSetting)
	}

	parts := strings.Split(input, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSetting, input)
	}

	total := 0
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSetting, input)
		}
		// every component after the first is a base-60 digit
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("%w: component %d must be 0-59", ErrInvalidSetting, n)
		}
		total = total*60 + n
	}

	if total > MaxSettingSeconds {
		return 0, fmt.Errorf("%w: %d exceeds %d seconds", ErrInvalidSetting, total, MaxSettingSeconds)
	}
	return total, nil
}
