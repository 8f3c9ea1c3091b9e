package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatsu/internal/core/scheduler"
	"tatsu/internal/storage"
	"tatsu/internal/ui/preferences"
)

type recordingService struct {
	enabled  []string
	disabled []string
}

func (service *recordingService) GetConfigDir() (string, error) { return "", nil }

func (service *recordingService) AutostartEnabled(appName string) (bool, error) {
	return len(service.enabled) > len(service.disabled), nil
}

func (service *recordingService) EnableAutostart(appName, execPath string) error {
	service.enabled = append(service.enabled, appName)
	return nil
}

func (service *recordingService) DisableAutostart(appName string) error {
	service.disabled = append(service.disabled, appName)
	return nil
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStoreAt(filepath.Join(t.TempDir(), "settings.yaml"))
}

func newTestSession(t *testing.T, store *storage.Store) (*session, *recordingService) {
	t.Helper()
	settings := preferences.DefaultSettings()
	sched := scheduler.New(settings.TimerConfig(), scheduler.Config{Clock: clockwork.NewFakeClock()})
	service := &recordingService{}
	return newSession(store, settings, sched, service), service
}

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name         string
		opts         options
		wantStanding time.Duration
		wantWalk     time.Duration
		wantErr      bool
	}{
		{name: "defaults", wantStanding: 30 * time.Minute, wantWalk: 60 * time.Minute},
		{name: "standing override", opts: options{standingMinutes: 15}, wantStanding: 15 * time.Minute, wantWalk: 60 * time.Minute},
		{name: "both overrides", opts: options{standingMinutes: 1, walkMinutes: 2}, wantStanding: time.Minute, wantWalk: 2 * time.Minute},
		{name: "inverted", opts: options{standingMinutes: 90}, wantErr: true},
		{name: "equal", opts: options{standingMinutes: 45, walkMinutes: 45}, wantErr: true},
		{name: "negative", opts: options{walkMinutes: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			settings, err := loadSettings(nil, &opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStanding, settings.StandingInterval)
			assert.Equal(t, tt.wantWalk, settings.WalkInterval)
		})
	}
}

func TestLoadSettingsFromStore(t *testing.T) {
	store := newTestStore(t)
	saved := preferences.DefaultSettings()
	saved.StandingInterval = 45 * time.Minute
	saved.WalkInterval = 90 * time.Minute
	require.NoError(t, store.Save(saved))

	settings, err := loadSettings(store, &options{walkMinutes: 120})
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, settings.StandingInterval)
	assert.Equal(t, 120*time.Minute, settings.WalkInterval)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging(&options{logLevel: "debug"}))
	assert.NoError(t, setupLogging(&options{logLevel: "WARN"}))
	assert.Error(t, setupLogging(&options{logLevel: "loud"}))
}

func TestChangeIntervalsPersist(t *testing.T) {
	store := newTestStore(t)
	sess, _ := newTestSession(t, store)

	require.NoError(t, sess.changeStanding(45))
	require.NoError(t, sess.changeWalk(90))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 45, loaded.StandingMinutes())
	assert.Equal(t, 90, loaded.WalkMinutes())
	assert.Equal(t, 45, sess.Settings().StandingMinutes())
}

func TestChangeIntervalRejected(t *testing.T) {
	store := newTestStore(t)
	sess, _ := newTestSession(t, store)

	err := sess.changeStanding(60)
	require.ErrorIs(t, err, scheduler.ErrInvalidInterval)
	err = sess.changeWalk(30)
	require.ErrorIs(t, err, scheduler.ErrInvalidInterval)

	assert.NoFileExists(t, store.Path())
	assert.Equal(t, 30, sess.Settings().StandingMinutes())
	assert.Equal(t, 60, sess.Settings().WalkMinutes())
}

func TestApplySettings(t *testing.T) {
	store := newTestStore(t)
	sess, service := newTestSession(t, store)

	updated := sess.Settings()
	updated.StandingInterval = 15 * time.Minute
	updated.LaunchAtLogin = true
	updated.IdleResetEnabled = false

	previous, err := sess.applySettings(updated, true)
	require.NoError(t, err)
	assert.Equal(t, 30, previous.StandingMinutes())
	assert.Equal(t, 15*time.Minute, sess.scheduler.Config().StandingInterval)
	assert.Equal(t, []string{appName}, service.enabled)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)

	// Reload without persisting and without an autostart change.
	updated.WalkInterval = 120 * time.Minute
	_, err = sess.applySettings(updated, false)
	require.NoError(t, err)
	assert.Len(t, service.enabled, 1)
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, 60, loaded.WalkMinutes())
}

func TestApplySettingsRejectsInvalid(t *testing.T) {
	sess, _ := newTestSession(t, nil)

	updated := sess.Settings()
	updated.StandingInterval = 2 * time.Hour
	_, err := sess.applySettings(updated, true)
	require.Error(t, err)
	assert.Equal(t, 30*time.Minute, sess.Settings().StandingInterval)
	assert.Equal(t, 30*time.Minute, sess.scheduler.Config().StandingInterval)
}

func TestSessionWithoutStore(t *testing.T) {
	sess, service := newTestSession(t, nil)

	require.NoError(t, sess.changeStanding(15))
	updated := sess.Settings()
	updated.LaunchAtLogin = true
	_, err := sess.applySettings(updated, true)
	require.NoError(t, err)
	assert.Empty(t, service.enabled)
}

func TestPreferencesSaveStoresFlagOverrides(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(preferences.DefaultSettings()))

	settings, err := loadSettings(store, &options{standingMinutes: 20})
	require.NoError(t, err)
	sched := scheduler.New(settings.TimerConfig(), scheduler.Config{Clock: clockwork.NewFakeClock()})
	sess := newSession(store, settings, sched, &recordingService{})

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, loaded.StandingMinutes())

	// The window submits the active intervals with an image change.
	updated := sess.Settings()
	updated.CharacterImagePath = "/tmp/dragon.png"
	_, err = sess.applySettings(updated, true)
	require.NoError(t, err)

	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, 20, loaded.StandingMinutes())
	assert.Equal(t, "/tmp/dragon.png", loaded.CharacterImagePath)
}
