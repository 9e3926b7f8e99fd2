package timekeeper

import (
	"time"

	"aurafocus/internal/core/model"
)

// Phase represents the current TimeKeeper mode.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseRunning   Phase = "running"
	PhasePaused    Phase = "paused"
	PhaseCompleted Phase = "completed"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventProgress        EventType = "progress"
	EventSessionComplete EventType = "session_complete"
	EventConfigChange    EventType = "config_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Phase                  Phase
	Session                model.SessionType
	RemainingSeconds       int
	TotalSeconds           int
	CompletedFocusSessions int
	Config                 model.TimerConfig
}

// Progress returns the elapsed fraction of the current session in [0,1].
func (snapshot Snapshot) Progress() float64 {
	if snapshot.TotalSeconds <= 0 {
		return 0
	}
	progress := float64(snapshot.TotalSeconds-snapshot.RemainingSeconds) / float64(snapshot.TotalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// RemainingText formats the remaining time as mm:ss.
func (snapshot Snapshot) RemainingText() string {
	return FormatSeconds(snapshot.RemainingSeconds)
}

// Notification is a request for the host to show a desktop notification.
type Notification struct {
	Title string
	Body  string
}

const notificationBody = "Time for the next session!"

// NotificationFor returns the completion notification for a finished session.
func NotificationFor(session model.SessionType) Notification {
	var title string
	switch session {
	case model.SessionShortBreak:
		title = "Break Over!"
	case model.SessionLongBreak:
		title = "Long Break Over!"
	default:
		title = "Focus Session Complete!"
	}
	return Notification{Title: title, Body: notificationBody}
}
