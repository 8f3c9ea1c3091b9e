package platform

import (
	"errors"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procGetLastInputInfo = windows.NewLazySystemDLL("user32.dll").NewProc("GetLastInputInfo")

type idleProvider struct{}

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

func newIdleProvider() IdleProvider {
	if err := procGetLastInputInfo.Find(); err != nil {
		return unsupportedIdleProvider{}
	}
	return &idleProvider{}
}

// IdleDuration reads the tick of the last keyboard or mouse input.
func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}

	ok, _, callErr := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		var errno syscall.Errno
		if errors.As(callErr, &errno) && errno != 0 {
			return 0, fmt.Errorf("get last input info: %w", errno)
		}
		return 0, errors.New("get last input info failed")
	}

	// dwTime is a 32-bit tick; unsigned subtraction survives the 49-day wrap.
	now := uint32(windows.GetTickCount64())
	return time.Duration(now-info.dwTime) * time.Millisecond, nil
}
