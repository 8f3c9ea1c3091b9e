//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// AutostartEnabled reports whether the Run key holds a value for appName.
func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	err := exec.Command("reg", "query", registryRunKey, "/v", appName).Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("autostart: reg query: %w", err)
}

// EnableAutostart registers the executable under the user's Run key.
func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := checkLoginItem(appName, execPath); err != nil {
		return err
	}
	return runReg("add", registryRunKey, "/v", appName, "/t", "REG_SZ", "/d", runCommandLine(execPath), "/f")
}

// DisableAutostart removes the Run key value.
func (service *platformService) DisableAutostart(appName string) error {
	enabled, err := service.AutostartEnabled(appName)
	if err != nil || !enabled {
		return err
	}
	return runReg("delete", registryRunKey, "/v", appName, "/f")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("autostart: reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func runCommandLine(execPath string) string {
	quoted := `"` + strings.Trim(execPath, `"`) + `"`
	return strings.Join(append([]string{quoted}, loginArgs...), " ")
}
