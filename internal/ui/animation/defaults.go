package animation

import "time"

// DefaultConfig returns the overlay timing: a 0.35s fade each way and a 10s hold.
func DefaultConfig() Config {
	return Config{
		FadeDuration: 350 * time.Millisecond,
		FadeSteps:    14,
		HoldDuration: 10 * time.Second,
	}
}
