// Package speech speaks announcements with the platform's text-to-speech
// command line tool.
package speech

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"runtime"
)

// ErrSpeechUnavailable is returned when no speech engine could be found.
var ErrSpeechUnavailable = errors.New("speech synthesis unavailable")

// platformCommands lists candidate engines per GOOS, in order of preference.
var platformCommands = map[string][][]string{
	"darwin":  {{"say"}},
	"linux":   {{"spd-say", "--wait"}, {"espeak"}, {"espeak-ng"}},
	"freebsd": {{"espeak"}},
}

// Announcer runs a speech command with the announcement text as its last argument.
type Announcer struct {
	command []string
}

// NewAnnouncer returns an announcer for custom, or for the first platform
// engine found on PATH when custom is empty.
func NewAnnouncer(custom []string) *Announcer {
	cmd, err := resolveCommand(custom, runtime.GOOS, exec.LookPath)
	if err != nil {
		log.Printf("Speech disabled: %v", err)
	}
	return &Announcer{command: cmd}
}

// Available reports whether a speech engine was found.
func (a *Announcer) Available() bool {
	return len(a.command) > 0
}

// Announce starts speaking text and returns without waiting for it to finish.
func (a *Announcer) Announce(text string) error {
	if !a.Available() {
		return ErrSpeechUnavailable
	}

	args := append(append([]string{}, a.command[1:]...), text)
	cmd := exec.Command(a.command[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", a.command[0], err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("speech command %s failed: %v", a.command[0], err)
		}
	}()
	return nil
}

func resolveCommand(custom []string, goos string, lookPath func(string) (string, error)) ([]string, error) {
	if len(custom) > 0 {
		if _, err := lookPath(custom[0]); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSpeechUnavailable, custom[0], err)
		}
		return custom, nil
	}

	for _, candidate := range platformCommands[goos] {
		if _, err := lookPath(candidate[0]); err == nil {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("%w: no engine found for %s", ErrSpeechUnavailable, goos)
}
