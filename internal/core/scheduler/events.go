package scheduler

import (
	"time"

	"github.com/google/uuid"

	"tatsu/internal/core/phasetimer"
)

// EventType defines the type of scheduler event.
type EventType string

const (
	EventNotification EventType = "notification"
	EventStateChange  EventType = "state_change"
	EventIdleReset    EventType = "idle_reset"
	EventIdleError    EventType = "idle_error"
)

// Event represents a scheduler update for observers.
type Event struct {
	Type     EventType
	Kind     phasetimer.NotificationKind
	ID       uuid.UUID
	Snapshot phasetimer.Snapshot
	Message  string
	At       time.Time
}
