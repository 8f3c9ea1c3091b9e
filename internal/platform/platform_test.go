package platform

import (
	"bufio"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatsu/internal/core/scheduler"
)

func TestPortFromName(t *testing.T) {
	first := portFromName("tatsu")
	assert.Equal(t, first, portFromName("tatsu"))
	assert.GreaterOrEqual(t, first, 20000)
	assert.LessOrEqual(t, first, 39999)
}

func TestAppSlug(t *testing.T) {
	assert.Equal(t, "tatsu", appSlug(""))
	assert.Equal(t, "tatsu", appSlug("  TATSU "))
	assert.Equal(t, "stand-up-timer", appSlug("Stand Up Timer"))
}

func TestSingleInstance(t *testing.T) {
	guard, err := AcquireSingleInstance("tatsu-test-instance")
	require.NoError(t, err)
	defer func() {
		_ = guard.Release()
	}()
	assert.NotEmpty(t, guard.Address())

	_, err = AcquireSingleInstance("tatsu-test-instance")
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestActivateRunningInstance(t *testing.T) {
	guard, err := AcquireSingleInstance("tatsu-test-activate")
	require.NoError(t, err)

	activated := make(chan struct{}, 1)
	guard.OnActivate(func() {
		activated <- struct{}{}
	})

	require.NoError(t, ActivateRunningInstance("tatsu-test-activate"))
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("activation handler not called")
	}

	require.NoError(t, guard.Release())
	assert.Error(t, ActivateRunningInstance("tatsu-test-activate"))
}

func TestForeignPortOwnerIsNotActivated(t *testing.T) {
	const name = "tatsu-test-foreign"
	foreign, err := net.Listen("tcp", instanceAddress(name))
	require.NoError(t, err)
	defer foreign.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := foreign.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		received <- line
		_, _ = conn.Write([]byte("HTTP/1.1 400 Bad Request\r\n"))
	}()

	_, err = AcquireSingleInstance(name)
	require.ErrorIs(t, err, ErrAlreadyRunning)

	err = ActivateRunningInstance(name)
	assert.ErrorContains(t, err, "unexpected reply")
	select {
	case line := <-received:
		assert.Equal(t, "activate\n", line)
	case <-time.After(2 * time.Second):
		t.Fatal("foreign listener saw no connection")
	}
}

func TestIsAddrInUse(t *testing.T) {
	first, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer first.Close()

	_, err = net.Listen("tcp", first.Addr().String())
	require.Error(t, err)
	assert.True(t, isAddrInUse(err))
	assert.False(t, isAddrInUse(errors.New("permission denied")))
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

func TestUnsupportedIdleProvider(t *testing.T) {
	_, err := unsupportedIdleProvider{}.IdleDuration()
	assert.True(t, errors.Is(err, scheduler.ErrIdleUnsupported))
}

type recordingService struct {
	installed bool
	stateErr  error
	enabled   []string
	disabled  []string
}

func (service *recordingService) GetConfigDir() (string, error) { return "", nil }

func (service *recordingService) AutostartEnabled(appName string) (bool, error) {
	return service.installed, service.stateErr
}

func (service *recordingService) EnableAutostart(appName, execPath string) error {
	service.enabled = append(service.enabled, appName+"="+execPath)
	service.installed = true
	return nil
}

func (service *recordingService) DisableAutostart(appName string) error {
	service.disabled = append(service.disabled, appName)
	service.installed = false
	return nil
}

func TestSyncAutostart(t *testing.T) {
	service := &recordingService{}

	require.NoError(t, SyncAutostart(service, "TATSU", false))
	assert.Empty(t, service.disabled)
	assert.Empty(t, service.enabled)

	require.NoError(t, SyncAutostart(service, "TATSU", true))
	require.Len(t, service.enabled, 1)
	assert.Contains(t, service.enabled[0], "TATSU=")

	require.NoError(t, SyncAutostart(service, "TATSU", true))
	assert.Len(t, service.enabled, 1)

	require.NoError(t, SyncAutostart(service, "TATSU", false))
	assert.Equal(t, []string{"TATSU"}, service.disabled)
}

func TestSyncAutostartUnknownState(t *testing.T) {
	service := &recordingService{installed: true, stateErr: errors.New("reg missing")}

	require.NoError(t, SyncAutostart(service, "TATSU", true))
	assert.Len(t, service.enabled, 1)
}

func TestCheckLoginItem(t *testing.T) {
	assert.Error(t, checkLoginItem("", "/bin/tatsu"))
	assert.Error(t, checkLoginItem("TATSU", ""))
	assert.NoError(t, checkLoginItem("TATSU", "/bin/tatsu"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	exists, err := fileExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	path := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	exists, err = fileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
