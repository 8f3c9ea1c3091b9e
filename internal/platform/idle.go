package platform

import (
	"time"

	"tatsu/internal/core/scheduler"
)

// IdleProvider returns the duration since last user input.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

var _ scheduler.IdleChecker = IdleProvider(nil)

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

type unsupportedIdleProvider struct{}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, scheduler.ErrIdleUnsupported
}
