package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tatsu/internal/core/scheduler"
	"tatsu/internal/platform"
	"tatsu/internal/storage"
)

const appName = "TATSU"

type options struct {
	standingMinutes int
	walkMinutes     int
	tui             bool
	logLevel        string
	noPersist       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tatsu",
		Short: "Stand and walk reminder",
		Long: `TATSU counts the time you spend at your desk and reminds you to stand up
and, later, to take a walk. The cycle restarts after every walk.

By default it lives in the system tray. Use --tui to run it in a terminal.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.standingMinutes, "standing", 0, "Standing interval in minutes (overrides saved settings)")
	cmd.Flags().IntVar(&opts.walkMinutes, "walk", 0, "Walk interval in minutes (overrides saved settings)")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "Run in the terminal instead of the system tray")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.noPersist, "no-persist", false, "Do not read or write the settings file")

	return cmd
}

func setupLogging(opts *options) error {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.logLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	if opts.tui {
		// The terminal UI owns the screen; logs go to a file instead.
		out = openLogFile()
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: opts.tui})
	return nil
}

func openLogFile() io.Writer {
	dir, err := os.UserCacheDir()
	if err != nil {
		return io.Discard
	}
	path := filepath.Join(dir, "tatsu", "tatsu.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return io.Discard
	}
	return file
}

func run(cmd *cobra.Command, opts *options) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) && !opts.tui {
			if activateErr := platform.ActivateRunningInstance(appName); activateErr == nil {
				log.Info().Msg("already running, asked the running instance to show its settings")
				return nil
			}
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	var store *storage.Store
	if !opts.noPersist {
		store, err = storage.NewStore(appName)
		if err != nil {
			log.Warn().Err(err).Msg("settings store unavailable, running without persistence")
			store = nil
		}
	}

	settings, err := loadSettings(store, opts)
	if err != nil {
		return err
	}

	sched := scheduler.New(settings.TimerConfig(), scheduler.Config{
		Idle: scheduler.IdlePolicy{Enabled: settings.IdleResetEnabled},
	})
	sched.SetIdleChecker(platform.NewIdleProvider())

	sess := newSession(store, settings, sched, platform.NewService())
	log.Info().
		Int("standing_minutes", settings.StandingMinutes()).
		Int("walk_minutes", settings.WalkMinutes()).
		Bool("persist", store != nil).
		Msg("starting")

	if opts.tui {
		return runTUI(cmd.Context(), sess)
	}
	return runGUI(cmd.Context(), sess, guard)
}
