//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AutostartEnabled reports whether the XDG autostart entry exists.
func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	path, err := service.desktopEntryPath(appName)
	if err != nil {
		return false, err
	}
	return fileExists(path)
}

// EnableAutostart writes an XDG autostart entry.
func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := checkLoginItem(appName, execPath); err != nil {
		return err
	}
	path, err := service.desktopEntryPath(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.WriteFile(path, []byte(buildDesktopEntry(appName, execPath)), 0o644); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// DisableAutostart removes the XDG autostart entry.
func (service *platformService) DisableAutostart(appName string) error {
	path, err := service.desktopEntryPath(appName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func (service *platformService) desktopEntryPath(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("autostart: %w", err)
	}
	return filepath.Join(configDir, "autostart", desktopFileName(appName)), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func desktopFileName(appName string) string {
	return appSlug(appName) + ".desktop"
}

func buildDesktopEntry(appName, execPath string) string {
	command := []string{desktopExecQuote(execPath)}
	command = append(command, loginArgs...)

	lines := []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=" + appName,
		"Comment=Stand and walk reminder",
		"Exec=" + strings.Join(command, " "),
		"Terminal=false",
		"X-GNOME-Autostart-enabled=true",
	}
	return strings.Join(lines, "\n") + "\n"
}

// desktopExecQuote applies the freedesktop Exec quoting rules when needed.
func desktopExecQuote(arg string) string {
	if !strings.ContainsAny(arg, " \t\"`$\\") {
		return arg
	}
	escaper := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", "$", `\$`)
	return `"` + escaper.Replace(arg) + `"`
}
