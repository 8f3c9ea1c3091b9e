package platform

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Service manages the login item and config location for the current OS.
type Service interface {
	GetConfigDir() (string, error)
	AutostartEnabled(appName string) (bool, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

// loginArgs are appended to the executable when it starts at login. A login
// start should not flood the session log.
var loginArgs = []string{"--log-level", "warn"}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// SyncAutostart makes the login item match the launch-at-login preference.
// It leaves an item that is already in the wanted state alone.
func SyncAutostart(service Service, appName string, enabled bool) error {
	current, err := service.AutostartEnabled(appName)
	if err != nil {
		log.Debug().Err(err).Msg("autostart state unknown")
	} else if current == enabled {
		return nil
	}

	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if err := service.EnableAutostart(appName, execPath); err != nil {
		return err
	}
	log.Info().Str("exec", execPath).Msg("autostart enabled")
	return nil
}

func checkLoginItem(appName, execPath string) error {
	if appName == "" {
		return fmt.Errorf("autostart: app name is empty")
	}
	if execPath == "" {
		return fmt.Errorf("autostart: exec path is empty")
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func appSlug(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "tatsu"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}
