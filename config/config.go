// Package config loads the application configuration file. The file supplies
// the registered preference defaults plus settings that have no place in the
// preferences window (alert sound file, speech command, volume).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"MenubarCountdown/prefs"
)

const defaultConfigPath = "~/.config/menubar-countdown/config.toml"

// Config is the parsed configuration file.
type Config struct {
	// Defaults are registered as preference defaults.
	Defaults prefs.Prefs `toml:"defaults"`
	// SoundFile is an .ogg, .wav or .mp3 file used as the alert sound.
	SoundFile string `toml:"sound_file"`
	// SpeechCommand replaces the platform speech command; the text is appended.
	SpeechCommand []string `toml:"speech_command"`
	// Volume is a base-2 gain applied to the alert sound; 0 leaves it unchanged.
	Volume float64 `toml:"volume"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Defaults: prefs.Defaults()}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the configuration at path, falling back to defaults when the file
// does not exist. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, fmt.Errorf("resolve config path: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(resolved, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}

	if cfg.SoundFile != "" {
		cfg.SoundFile, err = expandPath(strings.TrimSpace(cfg.SoundFile))
		if err != nil {
			return Config{}, fmt.Errorf("resolve sound_file: %w", err)
		}
	}
	if cfg.Defaults.TimerSettingSeconds < 0 {
		return Config{}, fmt.Errorf("timer_setting_seconds must not be negative: %d", cfg.Defaults.TimerSettingSeconds)
	}
	return cfg, nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
