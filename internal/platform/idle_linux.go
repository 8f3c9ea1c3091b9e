package platform

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Mutter exposes the idle time over D-Bus on GNOME, including Wayland sessions
// where xprintidle cannot see input.
var mutterIdleArgs = []string{
	"call", "--session",
	"--dest", "org.gnome.Mutter.IdleMonitor",
	"--object-path", "/org/gnome/Mutter/IdleMonitor/Core",
	"--method", "org.gnome.Mutter.IdleMonitor.GetIdletime",
}

var gdbusUint64 = regexp.MustCompile(`uint64\s+(\d+)`)

type idleProvider struct {
	command []string
	parse   func(string) (int64, error)
}

func newIdleProvider() IdleProvider {
	if path, err := exec.LookPath("gdbus"); err == nil {
		if _, err := exec.Command(path, mutterIdleArgs...).Output(); err == nil {
			return &idleProvider{command: append([]string{path}, mutterIdleArgs...), parse: parseGdbusIdle}
		}
	}
	if path, err := exec.LookPath("xprintidle"); err == nil {
		return &idleProvider{command: []string{path}, parse: parseMillis}
	}
	return unsupportedIdleProvider{}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(provider.command[0], provider.command[1:]...).Output()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", provider.command[0], err)
	}
	idleMillis, err := provider.parse(string(output))
	if err != nil {
		return 0, err
	}
	if idleMillis < 0 {
		idleMillis = 0
	}
	return time.Duration(idleMillis) * time.Millisecond, nil
}

func parseMillis(output string) (int64, error) {
	value := strings.TrimSpace(output)
	idleMillis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	return idleMillis, nil
}

// parseGdbusIdle reads replies shaped like "(uint64 12345,)".
func parseGdbusIdle(output string) (int64, error) {
	match := gdbusUint64.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("parse gdbus idle reply %q", strings.TrimSpace(output))
	}
	return parseMillis(match[1])
}
