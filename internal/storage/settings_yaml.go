package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"tatsu/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

// ErrInvalidIntervals reports a stored interval pair that breaks standing < walk.
var ErrInvalidIntervals = errors.New("stored intervals are invalid")

type yamlSettings struct {
	StandingIntervalMinutes int    `yaml:"standing_interval_minutes"`
	WalkIntervalMinutes     int    `yaml:"walk_interval_minutes"`
	CharacterImagePath      string `yaml:"character_image_path,omitempty"`
	IdleResetEnabled        *bool  `yaml:"idle_reset_enabled,omitempty"`
	LaunchAtLogin           bool   `yaml:"launch_at_login"`
}

// Store reads and writes user preferences in a YAML file.
type Store struct {
	path string
}

// NewStore returns a store under the user config directory for appName.
func NewStore(appName string) (*Store, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return nil, err
	}
	return &Store{path: configPath}, nil
}

// NewStoreAt returns a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the settings file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func (store *Store) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	if err := settings.Validate(); err != nil {
		defaults := preferences.DefaultSettings()
		settings.StandingInterval = defaults.StandingInterval
		settings.WalkInterval = defaults.WalkInterval
		return settings, fmt.Errorf("%w: %s: %v", ErrInvalidIntervals, store.path, err)
	}
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	idleEnabled := settings.IdleResetEnabled
	fileData := yamlSettings{
		StandingIntervalMinutes: settings.StandingMinutes(),
		WalkIntervalMinutes:     settings.WalkMinutes(),
		CharacterImagePath:      settings.CharacterImagePath,
		IdleResetEnabled:        &idleEnabled,
		LaunchAtLogin:           settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.StandingIntervalMinutes > 0 {
		settings.StandingInterval = time.Duration(fileData.StandingIntervalMinutes) * time.Minute
	}
	if fileData.WalkIntervalMinutes > 0 {
		settings.WalkInterval = time.Duration(fileData.WalkIntervalMinutes) * time.Minute
	}
	if fileData.IdleResetEnabled != nil {
		settings.IdleResetEnabled = *fileData.IdleResetEnabled
	}

	settings.CharacterImagePath = fileData.CharacterImagePath
	settings.LaunchAtLogin = fileData.LaunchAtLogin
}
