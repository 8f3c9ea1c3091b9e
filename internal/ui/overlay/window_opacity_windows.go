//go:build windows

package overlay

import (
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	gwlExStyle = -20

	wsExTopmost     = 0x00000008
	wsExTransparent = 0x00000020
	wsExToolWindow  = 0x00000080
	wsExLayered     = 0x00080000

	// The panel floats above other windows, lets clicks through and stays off the taskbar.
	panelExStyle = wsExTopmost | wsExTransparent | wsExToolWindow | wsExLayered

	lwaAlpha = 0x2
)

var exStyleIndex int32 = gwlExStyle

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
)

// applyNativeOpacity fades the whole panel, caption included.
func (overlay *Window) applyNativeOpacity(alpha uint8) {
	nativeWindow, ok := overlay.window.(driver.NativeWindow)
	if !ok {
		return
	}

	nativeWindow.RunNative(func(context any) {
		hwnd := windowHandle(context)
		if hwnd == 0 {
			return
		}

		index := uintptr(uint32(exStyleIndex))
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, index)
		if style&panelExStyle != panelExStyle {
			_, _, _ = procSetWindowLongPtrW.Call(hwnd, index, style|panelExStyle)
		}
		_, _, _ = procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), lwaAlpha)
	})
}

func windowHandle(context any) uintptr {
	switch value := context.(type) {
	case driver.WindowsWindowContext:
		return value.HWND
	case *driver.WindowsWindowContext:
		if value != nil {
			return value.HWND
		}
	}
	return 0
}
