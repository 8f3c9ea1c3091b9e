package phasetimer

import "fmt"

const (
	symbolSeated   = "figure.seated.side"
	symbolStanding = "figure.stand"

	pausedPrefix = "⏸ "
	pausedSuffix = "（一時停止中）"
)

// FormatTime renders seconds as MM:SS. Minutes are not wrapped into hours.
func FormatTime(totalSeconds int) string {
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// IsValidStandingInterval reports whether a standing interval fits before the walk interval.
func IsValidStandingInterval(minutes, walkMinutes int) bool {
	return minutes < walkMinutes
}

// IsValidWalkInterval reports whether a walk interval ends after the standing interval.
func IsValidWalkInterval(minutes, standingMinutes int) bool {
	return minutes > standingMinutes
}

// SymbolName returns the icon name for the current phase.
func (timer *Timer) SymbolName() string {
	if timer.CurrentPhase() == PhaseStanding {
		return symbolStanding
	}
	return symbolSeated
}

// StateText describes the current phase.
func (timer *Timer) StateText() string {
	if timer.CurrentPhase() == PhaseStanding {
		return "スタンディング中"
	}
	return "着席中"
}

// DisplayTitle is the status title: the countdown, prefixed when paused.
func (timer *Timer) DisplayTitle() string {
	prefix := ""
	if timer.paused {
		prefix = pausedPrefix
	}
	return prefix + FormatTime(timer.DisplayTime())
}

// MenuStateText is StateText with a paused marker.
func (timer *Timer) MenuStateText() string {
	if timer.paused {
		return timer.StateText() + pausedSuffix
	}
	return timer.StateText()
}

// MenuTimerText labels the countdown with the boundary it counts towards.
func (timer *Timer) MenuTimerText() string {
	if timer.CurrentPhase() == PhaseStanding {
		return "散歩まで: " + FormatTime(timer.walkInterval-timer.elapsed)
	}
	return "スタンディングまで: " + FormatTime(timer.standingInterval-timer.elapsed)
}

// PauseMenuTitle is the label of the pause/resume command.
func (timer *Timer) PauseMenuTitle() string {
	if timer.paused {
		return "再開"
	}
	return "一時停止"
}

// Snapshot is a value copy of the timer state and its rendered strings.
type Snapshot struct {
	Elapsed          int
	Paused           bool
	StandingInterval int
	WalkInterval     int
	Phase            Phase
	DisplayTime      int
	DisplayTitle     string
	StateText        string
	MenuStateText    string
	MenuTimerText    string
	PauseMenuTitle   string
	SymbolName       string
}

// Snapshot captures the current state.
func (timer *Timer) Snapshot() Snapshot {
	return Snapshot{
		Elapsed:          timer.elapsed,
		Paused:           timer.paused,
		StandingInterval: timer.standingInterval,
		WalkInterval:     timer.walkInterval,
		Phase:            timer.CurrentPhase(),
		DisplayTime:      timer.DisplayTime(),
		DisplayTitle:     timer.DisplayTitle(),
		StateText:        timer.StateText(),
		MenuStateText:    timer.MenuStateText(),
		MenuTimerText:    timer.MenuTimerText(),
		PauseMenuTitle:   timer.PauseMenuTitle(),
		SymbolName:       timer.SymbolName(),
	}
}
