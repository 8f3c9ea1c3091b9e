package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"tatsu/internal/ui/preferences"
)

// Watch reloads the settings file whenever it is written or replaced and hands
// the result to onChange. The watcher stops when ctx is done.
func (store *Store) Watch(ctx context.Context, onChange func(preferences.Settings, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}

	// Watch the directory: editors often replace the file instead of writing in place.
	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(store.path)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("settings file changed")
				settings, err := store.Load()
				onChange(settings, err)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("path", store.path).Msg("settings watcher error")
			}
		}
	}()

	return nil
}
