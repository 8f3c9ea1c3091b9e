package notify

import (
	"fyne.io/fyne/v2"
	"github.com/rs/zerolog/log"

	"tatsu/internal/core/scheduler"
)

// Sender delivers a desktop notification. fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Notifier forwards scheduler notification events to a Sender.
type Notifier struct {
	sender Sender
}

// New creates a Notifier.
func New(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Handle sends a notification for notification events and ignores the rest.
// It reports whether anything was sent.
func (notifier *Notifier) Handle(event scheduler.Event) bool {
	if event.Type != scheduler.EventNotification || notifier.sender == nil {
		return false
	}

	title, body := Message(event.Kind, event.Snapshot)
	notifier.sender.SendNotification(fyne.NewNotification(title, body))
	log.Info().
		Str("id", event.ID.String()).
		Str("kind", event.Kind.String()).
		Str("title", title).
		Msg("notification sent")
	return true
}
