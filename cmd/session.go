package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"tatsu/internal/core/scheduler"
	"tatsu/internal/platform"
	"tatsu/internal/storage"
	"tatsu/internal/ui/preferences"
)

// loadSettings reads the saved preferences and applies the interval flags.
// Flag overrides are not written back until an interval is changed at runtime.
func loadSettings(store *storage.Store, opts *options) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	if store != nil {
		loaded, err := store.Load()
		if err != nil {
			if errors.Is(err, storage.ErrInvalidIntervals) {
				log.Warn().Err(err).Msg("saved intervals rejected, using defaults")
			} else {
				log.Warn().Err(err).Str("path", store.Path()).Msg("load settings")
			}
		}
		settings = loaded
	}

	if opts.standingMinutes < 0 || opts.walkMinutes < 0 {
		return settings, fmt.Errorf("interval flags must be positive")
	}
	if opts.standingMinutes > 0 {
		settings.StandingInterval = time.Duration(opts.standingMinutes) * time.Minute
	}
	if opts.walkMinutes > 0 {
		settings.WalkInterval = time.Duration(opts.walkMinutes) * time.Minute
	}
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("interval flags: %w", err)
	}
	return settings, nil
}

// session ties the running scheduler to the persisted preferences.
type session struct {
	mu        sync.Mutex
	store     *storage.Store
	settings  preferences.Settings
	scheduler *scheduler.Scheduler
	autostart platform.Service
}

func newSession(store *storage.Store, settings preferences.Settings, sched *scheduler.Scheduler, autostart platform.Service) *session {
	return &session{
		store:     store,
		settings:  settings,
		scheduler: sched,
		autostart: autostart,
	}
}

func (sess *session) Settings() preferences.Settings {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.settings
}

// changeStanding validates and applies a standing interval, restarts the cycle and saves.
func (sess *session) changeStanding(minutes int) error {
	if err := sess.scheduler.SetStandingMinutes(minutes); err != nil {
		return err
	}
	standing, walk := sess.scheduler.Config().Minutes()
	return sess.persistIntervals(standing, walk)
}

// changeWalk validates and applies a walk interval, restarts the cycle and saves.
func (sess *session) changeWalk(minutes int) error {
	if err := sess.scheduler.SetWalkMinutes(minutes); err != nil {
		return err
	}
	standing, walk := sess.scheduler.Config().Minutes()
	return sess.persistIntervals(standing, walk)
}

// persistIntervals records intervals the scheduler already accepted.
func (sess *session) persistIntervals(standingMinutes, walkMinutes int) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.settings.StandingInterval = time.Duration(standingMinutes) * time.Minute
	sess.settings.WalkInterval = time.Duration(walkMinutes) * time.Minute
	return sess.saveLocked()
}

// applySettings pushes updated preferences into the scheduler and autostart.
// With persist set they are also written to the store. It returns the
// previous settings so callers can react to what changed.
func (sess *session) applySettings(updated preferences.Settings, persist bool) (preferences.Settings, error) {
	if err := updated.Validate(); err != nil {
		return sess.Settings(), err
	}
	if err := sess.scheduler.ApplyConfig(updated.TimerConfig()); err != nil {
		return sess.Settings(), err
	}
	sess.scheduler.SetIdleResetEnabled(updated.IdleResetEnabled)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	previous := sess.settings
	sess.settings = updated

	if previous.LaunchAtLogin != updated.LaunchAtLogin && sess.store != nil {
		if err := platform.SyncAutostart(sess.autostart, appName, updated.LaunchAtLogin); err != nil {
			log.Warn().Err(err).Bool("enabled", updated.LaunchAtLogin).Msg("autostart")
		}
	}

	if !persist {
		return previous, nil
	}
	return previous, sess.saveLocked()
}

func (sess *session) saveLocked() error {
	if sess.store == nil {
		return nil
	}
	if err := sess.store.Save(sess.settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	log.Debug().Str("path", sess.store.Path()).Msg("settings saved")
	return nil
}
