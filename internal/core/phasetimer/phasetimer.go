// Package phasetimer implements the stand/walk reminder cycle.
//
// A Timer is advanced by one-second ticks. It requests a Standing notification on
// the tick where the elapsed time first equals the standing interval, and a Walk
// notification when the elapsed time reaches the walk interval, which also starts
// a new cycle. Timer is not safe for concurrent use; a single owner drives it.
package phasetimer

import "tatsu/internal/core/model"

// Timer is the reminder state machine.
type Timer struct {
	elapsed          int
	paused           bool
	standingInterval int
	walkInterval     int
	observer         Observer
}

// New creates a timer with intervals in seconds. The pair is not validated.
func New(standingSeconds, walkSeconds int, observer Observer) *Timer {
	return &Timer{
		standingInterval: standingSeconds,
		walkInterval:     walkSeconds,
		observer:         observer,
	}
}

// NewDefault creates a timer with the 30/60 minute cycle.
func NewDefault(observer Observer) *Timer {
	return New(model.DefaultStandingMinutes*60, model.DefaultWalkMinutes*60, observer)
}

// SetObserver replaces the registered observer. A nil observer silences events.
func (timer *Timer) SetObserver(observer Observer) {
	timer.observer = observer
}

// Tick advances the cycle by one second.
func (timer *Timer) Tick() {
	if timer.paused {
		return
	}

	timer.elapsed++

	if timer.elapsed >= timer.walkInterval {
		timer.notify(NotifyWalk)
		timer.elapsed = 0
	} else if timer.elapsed == timer.standingInterval {
		timer.notify(NotifyStanding)
	}

	timer.changed()
}

// TogglePause flips the paused flag.
func (timer *Timer) TogglePause() {
	timer.paused = !timer.paused
	timer.changed()
}

// Reset restarts the cycle and clears the pause.
func (timer *Timer) Reset() {
	timer.elapsed = 0
	timer.paused = false
	timer.changed()
}

// SetElapsed overwrites the elapsed seconds without emitting events.
// Values outside the cycle are accepted; DisplayTime may then go negative.
func (timer *Timer) SetElapsed(seconds int) {
	timer.elapsed = seconds
}

// ApplyIntervals replaces both intervals without validating or emitting events.
// Callers check the pair with IsValidStandingInterval/IsValidWalkInterval first
// and normally Reset afterwards.
func (timer *Timer) ApplyIntervals(standingSeconds, walkSeconds int) {
	timer.standingInterval = standingSeconds
	timer.walkInterval = walkSeconds
}

// Elapsed returns the seconds accumulated in the current cycle.
func (timer *Timer) Elapsed() int {
	return timer.elapsed
}

// Paused reports whether ticks are ignored.
func (timer *Timer) Paused() bool {
	return timer.paused
}

// StandingInterval returns the standing boundary in seconds.
func (timer *Timer) StandingInterval() int {
	return timer.standingInterval
}

// WalkInterval returns the walk boundary in seconds.
func (timer *Timer) WalkInterval() int {
	return timer.walkInterval
}

// CurrentPhase derives the phase from the elapsed time.
func (timer *Timer) CurrentPhase() Phase {
	if timer.elapsed >= timer.standingInterval {
		return PhaseStanding
	}
	return PhaseSeated
}

// DisplayTime returns the seconds left until the next boundary of the current phase.
func (timer *Timer) DisplayTime() int {
	if timer.CurrentPhase() == PhaseSeated {
		return timer.standingInterval - timer.elapsed
	}
	return timer.walkInterval - timer.elapsed
}

func (timer *Timer) notify(kind NotificationKind) {
	if timer.observer != nil {
		timer.observer.NotificationRequested(kind)
	}
}

func (timer *Timer) changed() {
	if timer.observer != nil {
		timer.observer.StateChanged()
	}
}
