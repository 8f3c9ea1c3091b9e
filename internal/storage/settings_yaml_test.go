package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatsu/internal/ui/preferences"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "tatsu", settingsFileName))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	saved := preferences.Settings{
		StandingInterval:   45 * time.Minute,
		WalkInterval:       90 * time.Minute,
		CharacterImagePath: "/home/me/dragon.png",
		IdleResetEnabled:   false,
		LaunchAtLogin:      true,
	}

	require.NoError(t, store.Save(saved))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("standing_interval_minutes: 15\n"), 0o644))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, settings.StandingInterval)
	assert.Equal(t, 60*time.Minute, settings.WalkInterval)
	assert.True(t, settings.IdleResetEnabled)
}

func TestLoadInvalidPairFallsBack(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	content := "standing_interval_minutes: 60\nwalk_interval_minutes: 30\ncharacter_image_path: /tmp/a.png\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o644))

	settings, err := store.Load()
	assert.ErrorIs(t, err, ErrInvalidIntervals)
	assert.Equal(t, 30*time.Minute, settings.StandingInterval)
	assert.Equal(t, 60*time.Minute, settings.WalkInterval)
	assert.Equal(t, "/tmp/a.png", settings.CharacterImagePath)
}

func TestLoadMalformedYAML(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("standing_interval_minutes: [oops"), 0o644))

	settings, err := store.Load()
	assert.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(preferences.DefaultSettings()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan preferences.Settings, 16)
	require.NoError(t, store.Watch(ctx, func(settings preferences.Settings, err error) {
		if err == nil {
			changes <- settings
		}
	}))

	updated := preferences.DefaultSettings()
	updated.StandingInterval = 15 * time.Minute
	updated.WalkInterval = 120 * time.Minute
	require.NoError(t, store.Save(updated))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case settings := <-changes:
			if settings.StandingInterval == 15*time.Minute && settings.WalkInterval == 120*time.Minute {
				return
			}
		case <-deadline:
			t.Fatal("settings change was not observed")
		}
	}
}
