package phasetimer

// Phase is the position of the timer inside the current cycle.
type Phase int

const (
	PhaseSeated Phase = iota
	PhaseStanding
)

func (phase Phase) String() string {
	switch phase {
	case PhaseSeated:
		return "seated"
	case PhaseStanding:
		return "standing"
	default:
		return "unknown"
	}
}

// NotificationKind names the boundary that was crossed.
type NotificationKind int

const (
	NotifyStanding NotificationKind = iota
	NotifyWalk
)

func (kind NotificationKind) String() string {
	switch kind {
	case NotifyStanding:
		return "standing"
	case NotifyWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// Observer receives timer callbacks synchronously, in order.
type Observer interface {
	NotificationRequested(kind NotificationKind)
	StateChanged()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnNotification func(kind NotificationKind)
	OnStateChanged  func()
}

// NotificationRequested implements Observer.
func (funcs ObserverFuncs) NotificationRequested(kind NotificationKind) {
	if funcs.OnNotification != nil {
		funcs.OnNotification(kind)
	}
}

// StateChanged implements Observer.
func (funcs ObserverFuncs) StateChanged() {
	if funcs.OnStateChanged != nil {
		funcs.OnStateChanged()
	}
}
