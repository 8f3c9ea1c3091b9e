//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AutostartEnabled reports whether the LaunchAgent plist exists.
func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	path, err := launchAgentPath(appName)
	if err != nil {
		return false, err
	}
	return fileExists(path)
}

// EnableAutostart installs a LaunchAgent that runs at login.
func (service *platformService) EnableAutostart(appName, execPath string) error {
	if err := checkLoginItem(appName, execPath); err != nil {
		return err
	}
	path, err := launchAgentPath(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	plist := buildLaunchAgentPlist(launchAgentLabel(appName), append([]string{execPath}, loginArgs...))
	if err := os.WriteFile(path, []byte(plist), 0o644); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// DisableAutostart removes the LaunchAgent.
func (service *platformService) DisableAutostart(appName string) error {
	path, err := launchAgentPath(appName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func launchAgentPath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("autostart: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(appName)+".plist"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func launchAgentLabel(appName string) string {
	return "com.tatsu." + appSlug(appName)
}

func buildLaunchAgentPlist(label string, arguments []string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
`)
	fmt.Fprintf(&b, "\t<key>Label</key>\n\t<string>%s</string>\n", xmlEscape(label))
	b.WriteString("\t<key>ProgramArguments</key>\n\t<array>\n")
	for _, argument := range arguments {
		fmt.Fprintf(&b, "\t\t<string>%s</string>\n", xmlEscape(argument))
	}
	b.WriteString("\t</array>\n\t<key>RunAtLoad</key>\n\t<true/>\n\t<key>ProcessType</key>\n\t<string>Interactive</string>\n</dict>\n</plist>\n")
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(value string) string {
	return xmlEscaper.Replace(value)
}
