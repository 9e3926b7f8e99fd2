package terminal

import (
	"errors"

	"aurafocus/internal/core/timekeeper"
)

// ErrNotificationDropped is returned when the terminal has not yet shown the
// previous notifications.
var ErrNotificationDropped = errors.New("terminal: notification dropped")

const notificationBuffer = 4

// Notifier queues completion notifications for the terminal status line.
type Notifier struct {
	notes chan timekeeper.Notification
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{notes: make(chan timekeeper.Notification, notificationBuffer)}
}

// Notify implements timekeeper.Notifier.
func (notifier *Notifier) Notify(note timekeeper.Notification) error {
	select {
	case notifier.notes <- note:
		return nil
	default:
		return ErrNotificationDropped
	}
}
