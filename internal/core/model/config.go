package model

import "time"

// Interval presets offered by the tray menu, in minutes.
var (
	StandingPresets = []int{15, 30, 45, 60}
	WalkPresets     = []int{30, 60, 90, 120}
)

const (
	DefaultStandingMinutes = 30
	DefaultWalkMinutes     = 60
)

// TimerConfig contains the two boundaries of a reminder cycle.
type TimerConfig struct {
	StandingInterval time.Duration
	WalkInterval     time.Duration
}

// DefaultTimerConfig returns the 30/60 minute cycle.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		StandingInterval: DefaultStandingMinutes * time.Minute,
		WalkInterval:     DefaultWalkMinutes * time.Minute,
	}
}

// Seconds returns both intervals in whole seconds.
func (config TimerConfig) Seconds() (standing, walk int) {
	return int(config.StandingInterval / time.Second), int(config.WalkInterval / time.Second)
}

// Minutes returns both intervals in whole minutes.
func (config TimerConfig) Minutes() (standing, walk int) {
	return int(config.StandingInterval / time.Minute), int(config.WalkInterval / time.Minute)
}
