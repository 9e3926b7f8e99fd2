// Package faces maps the widget's four cube faces onto timer sessions.
package faces

import (
	"fmt"
	"sync"

	"aurafocus/internal/core/model"
	"aurafocus/internal/core/timekeeper"
)

// Face is a display position of the cube.
type Face int

const (
	FaceFocus Face = iota
	FaceShortBreak
	FaceLongBreak
	FaceSettings

	faceCount = 4
)

// Direction is a rotation direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// Session returns the session shown on the face, if any.
func (face Face) Session() (model.SessionType, bool) {
	switch face {
	case FaceFocus:
		return model.SessionFocus, true
	case FaceShortBreak:
		return model.SessionShortBreak, true
	case FaceLongBreak:
		return model.SessionLongBreak, true
	default:
		return "", false
	}
}

// Title returns the face heading in lang.
func (face Face) Title(lang Language) string {
	if session, ok := face.Session(); ok {
		return lang.SessionName(session)
	}
	return lang.Labels().Settings
}

// ForSession returns the face that shows session.
func ForSession(session model.SessionType) Face {
	switch session {
	case model.SessionShortBreak:
		return FaceShortBreak
	case model.SessionLongBreak:
		return FaceLongBreak
	default:
		return FaceFocus
	}
}

// Controller is the part of the timer engine the navigator drives.
type Controller interface {
	Pause() timekeeper.Snapshot
	Toggle() timekeeper.Snapshot
	SwitchToSession(session model.SessionType) timekeeper.Snapshot
	Snapshot() timekeeper.Snapshot
}

// Navigator tracks the visible face and forwards face changes to the engine.
type Navigator struct {
	mu      sync.Mutex
	keeper  Controller
	current Face
}

// NewNavigator starts on the face of the engine's current session.
func NewNavigator(keeper Controller) *Navigator {
	return &Navigator{
		keeper:  keeper,
		current: ForSession(keeper.Snapshot().Session),
	}
}

// Current returns the visible face.
func (nav *Navigator) Current() Face {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	return nav.current
}

// SettingsOpen reports whether the settings face is showing.
func (nav *Navigator) SettingsOpen() bool {
	return nav.Current() == FaceSettings
}

// SetFace shows face. A running timer is paused first; session faces also
// switch the engine to that session.
func (nav *Navigator) SetFace(face Face) {
	if face < 0 || face >= faceCount {
		return
	}
	nav.mu.Lock()
	nav.current = face
	nav.mu.Unlock()

	if session, ok := face.Session(); ok {
		nav.keeper.SwitchToSession(session)
		return
	}
	if nav.keeper.Snapshot().Phase == timekeeper.PhaseRunning {
		nav.keeper.Pause()
	}
}

// Rotate moves one face in direction, wrapping around.
func (nav *Navigator) Rotate(direction Direction) Face {
	next := nav.Current()
	if direction == Right {
		next = (next + 1) % faceCount
	} else {
		next = (next - 1 + faceCount) % faceCount
	}
	nav.SetFace(next)
	return next
}

// Toggle starts or pauses the timer. It does nothing on the settings face.
func (nav *Navigator) Toggle() {
	if nav.SettingsOpen() {
		return
	}
	nav.keeper.Toggle()
}

// CloseSettings leaves the settings face for the focus face.
func (nav *Navigator) CloseSettings() {
	if nav.SettingsOpen() {
		nav.SetFace(FaceFocus)
	}
}

// Follow keeps the visible face on the engine's session after automatic
// advances. The settings face is left alone.
func (nav *Navigator) Follow(snapshot timekeeper.Snapshot) Face {
	nav.mu.Lock()
	defer nav.mu.Unlock()
	if nav.current != FaceSettings {
		nav.current = ForSession(snapshot.Session)
	}
	return nav.current
}

// ToggleLabel names the action a start/pause control performs in phase.
func ToggleLabel(phase timekeeper.Phase, lang Language) string {
	text := lang.Labels()
	switch phase {
	case timekeeper.PhaseRunning:
		return text.Pause
	case timekeeper.PhasePaused:
		return text.Resume
	default:
		return text.Start
	}
}

// CounterText describes the number of completed focus sessions.
func CounterText(completed int, lang Language) string {
	text := lang.Labels()
	if completed == 1 {
		return text.SessionOne
	}
	return fmt.Sprintf(text.SessionMany, completed)
}
