package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tatsu/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, 30, settings.StandingMinutes())
	assert.Equal(t, 60, settings.WalkMinutes())
	assert.True(t, settings.IdleResetEnabled)
	assert.Equal(t, model.DefaultTimerConfig(), settings.TimerConfig())
	assert.NoError(t, settings.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		standing time.Duration
		walk     time.Duration
		wantErr  bool
	}{
		{"valid", 15 * time.Minute, 30 * time.Minute, false},
		{"equal", 60 * time.Minute, 60 * time.Minute, true},
		{"reversed", 90 * time.Minute, 60 * time.Minute, true},
		{"zero standing", 0, 60 * time.Minute, true},
		{"sub-minute walk", 0, 30 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			settings.StandingInterval = tt.standing
			settings.WalkInterval = tt.walk

			err := settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
