package preferences

import (
	"fmt"
	"time"

	"tatsu/internal/core/model"
	"tatsu/internal/core/phasetimer"
)

// Settings defines editable user preferences.
type Settings struct {
	StandingInterval time.Duration
	WalkInterval     time.Duration

	CharacterImagePath string
	IdleResetEnabled   bool
	LaunchAtLogin      bool
}

// DefaultSettings returns default settings for TATSU.
func DefaultSettings() Settings {
	defaults := model.DefaultTimerConfig()
	return Settings{
		StandingInterval: defaults.StandingInterval,
		WalkInterval:     defaults.WalkInterval,
		IdleResetEnabled: true,
	}
}

// TimerConfig converts settings to the scheduler configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		StandingInterval: settings.StandingInterval,
		WalkInterval:     settings.WalkInterval,
	}
}

// StandingMinutes returns the standing interval in whole minutes.
func (settings Settings) StandingMinutes() int {
	return int(settings.StandingInterval / time.Minute)
}

// WalkMinutes returns the walk interval in whole minutes.
func (settings Settings) WalkMinutes() int {
	return int(settings.WalkInterval / time.Minute)
}

// Validate checks that both intervals are positive and standing comes first.
func (settings Settings) Validate() error {
	standing, walk := settings.StandingMinutes(), settings.WalkMinutes()
	if standing <= 0 || walk <= 0 {
		return fmt.Errorf("intervals must be at least one minute")
	}
	if !phasetimer.IsValidStandingInterval(standing, walk) {
		return fmt.Errorf("standing interval (%d min) must be shorter than walk interval (%d min)", standing, walk)
	}
	return nil
}
