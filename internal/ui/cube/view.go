package cube

import (
	"image/color"

	"aurafocus/internal/core/model"
	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/ui/faces"
)

// View is everything the window draws for one face.
type View struct {
	Face        faces.Face
	Title       string
	Time        string
	Progress    float64
	Counter     string
	ToggleLabel string
	Running     bool
	CanToggle   bool
	Accent      color.NRGBA
}

// NewView builds the view of face for snapshot, labelled in lang.
func NewView(snapshot timekeeper.Snapshot, face faces.Face, lang faces.Language) View {
	view := View{
		Face:        face,
		Title:       face.Title(lang),
		Time:        snapshot.RemainingText(),
		Progress:    snapshot.Progress(),
		Counter:     faces.CounterText(snapshot.CompletedFocusSessions, lang),
		ToggleLabel: faces.ToggleLabel(snapshot.Phase, lang),
		Running:     snapshot.Phase == timekeeper.PhaseRunning,
		CanToggle:   face != faces.FaceSettings && snapshot.Phase != timekeeper.PhaseCompleted,
		Accent:      accentFor(snapshot.Session),
	}
	if snapshot.Phase == timekeeper.PhaseCompleted {
		view.Title = lang.CompleteTitle(snapshot.Session)
	}
	return view
}

func accentFor(session model.SessionType) color.NRGBA {
	switch session {
	case model.SessionShortBreak:
		return color.NRGBA{R: 52, G: 211, B: 153, A: 255}
	case model.SessionLongBreak:
		return color.NRGBA{R: 96, G: 165, B: 250, A: 255}
	default:
		return color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	}
}

func dimmed(value color.NRGBA, alpha uint8) color.NRGBA {
	value.A = alpha
	return value
}
