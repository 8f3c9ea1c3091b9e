//go:build !linux && !darwin && !windows

package platform

import (
	"errors"
	"path/filepath"
)

var errAutostartUnsupported = errors.New("autostart unsupported on this platform")

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	return false, nil
}

func (service *platformService) EnableAutostart(appName, execPath string) error {
	return errAutostartUnsupported
}

func (service *platformService) DisableAutostart(appName string) error {
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
