package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"MenubarCountdown/alert"
	"MenubarCountdown/audio"
	"MenubarCountdown/config"
	"MenubarCountdown/control"
	"MenubarCountdown/speech"
	"MenubarCountdown/timer"
	"MenubarCountdown/tui"
)

const appID = "io.github.menubarcountdown"

var version = "dev"

func main() {
	var configPath, setting string

	rootCmd := &cobra.Command{
		Use:   "menubar-countdown",
		Short: "Countdown timer in the system tray",
		Long: `Menubar Countdown shows a countdown timer in the system tray and
blinks, plays a sound, speaks or shows an alert when it reaches zero.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTray(configPath, setting)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "configuration file")
	rootCmd.PersistentFlags().StringVar(&setting, "setting", "", "start immediately with this duration (hh:mm:ss, mm:ss or seconds)")

	rootCmd.AddCommand(newTUICmd(&configPath, &setting))
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseSettingFlag returns -1 when the flag is empty.
func parseSettingFlag(s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	v, err := timer.ParseSetting(s)
	if err != nil {
		return 0, fmt.Errorf("--setting: %w", err)
	}
	return v, nil
}

func runTray(configPath, setting string) error {
	seconds, err := parseSettingFlag(setting)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID(appID)
	a := NewAppManager(fyneApp, cfg)
	defer a.Shutdown()

	fyneApp.Lifecycle().SetOnStarted(func() {
		a.Launch(seconds)
	})
	fyneApp.Run()
	return nil
}

func newTUICmd(configPath, setting *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the countdown in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := parseSettingFlag(*setting)
			if err != nil {
				return err
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal; keep the log out of it.
			if path := os.Getenv("MENUBAR_COUNTDOWN_LOG"); path != "" {
				f, err := tea.LogToFile(path, "menubar-countdown")
				if err != nil {
					return fmt.Errorf("open log: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			ctrl := control.New(timer.SystemClock)
			defer ctrl.Close()

			p, bridge := tui.NewProgram(tui.New(ctrl, cfg.Defaults, seconds))
			notifier := alert.NewNotifier(cfg.Defaults, timer.SystemClock, alert.Outputs{
				Blinker:   bridge,
				Sound:     audio.NewPlayer(cfg.SoundFile, cfg.Volume),
				Announcer: speech.NewAnnouncer(cfg.SpeechCommand),
				Window:    bridge,
			})
			ctrl.Subscribe(bridge)
			ctrl.Subscribe(notifier)

			_, err = p.Run()
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "menubar-countdown version %s\n", version)
		},
	}
}
