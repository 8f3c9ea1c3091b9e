//go:build !windows

package overlay

// Other drivers cannot fade the native window; only the image translucency changes.
func (overlay *Window) applyNativeOpacity(alpha uint8) {}
