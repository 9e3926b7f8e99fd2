package cube

import (
	"testing"

	"aurafocus/internal/core/model"
	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/ui/faces"

	"github.com/stretchr/testify/assert"
)

func TestNewView(t *testing.T) {
	tests := []struct {
		name     string
		snapshot timekeeper.Snapshot
		face     faces.Face
		want     View
	}{
		{
			name: "idle focus",
			snapshot: timekeeper.Snapshot{
				Phase: timekeeper.PhaseIdle, Session: model.SessionFocus,
				RemainingSeconds: 1500, TotalSeconds: 1500,
			},
			face: faces.FaceFocus,
			want: View{
				Face: faces.FaceFocus, Title: "Focus", Time: "25:00", Progress: 0,
				Counter: "0 focus sessions", ToggleLabel: "Start", CanToggle: true,
				Accent: accentFor(model.SessionFocus),
			},
		},
		{
			name: "running short break",
			snapshot: timekeeper.Snapshot{
				Phase: timekeeper.PhaseRunning, Session: model.SessionShortBreak,
				RemainingSeconds: 150, TotalSeconds: 300, CompletedFocusSessions: 1,
			},
			face: faces.FaceShortBreak,
			want: View{
				Face: faces.FaceShortBreak, Title: "Short Break", Time: "02:30", Progress: 0.5,
				Counter: "1 focus session", ToggleLabel: "Pause", Running: true, CanToggle: true,
				Accent: accentFor(model.SessionShortBreak),
			},
		},
		{
			name: "completed",
			snapshot: timekeeper.Snapshot{
				Phase: timekeeper.PhaseCompleted, Session: model.SessionLongBreak,
				RemainingSeconds: 0, TotalSeconds: 900, CompletedFocusSessions: 4,
			},
			face: faces.FaceLongBreak,
			want: View{
				Face: faces.FaceLongBreak, Title: "Long Break complete", Time: "00:00", Progress: 1,
				Counter: "4 focus sessions", ToggleLabel: "Start",
				Accent: accentFor(model.SessionLongBreak),
			},
		},
		{
			name: "settings face",
			snapshot: timekeeper.Snapshot{
				Phase: timekeeper.PhasePaused, Session: model.SessionFocus,
				RemainingSeconds: 600, TotalSeconds: 1500,
			},
			face: faces.FaceSettings,
			want: View{
				Face: faces.FaceSettings, Title: "Settings", Time: "10:00", Progress: 0.6,
				Counter: "0 focus sessions", ToggleLabel: "Resume",
				Accent: accentFor(model.SessionFocus),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewView(tt.snapshot, tt.face, faces.English))
		})
	}
}

func TestNewViewPortuguese(t *testing.T) {
	snapshot := timekeeper.Snapshot{
		Phase: timekeeper.PhaseCompleted, Session: model.SessionShortBreak,
		RemainingSeconds: 0, TotalSeconds: 300, CompletedFocusSessions: 2,
	}

	view := NewView(snapshot, faces.FaceShortBreak, faces.Portuguese)

	assert.Equal(t, "Pausa Curta concluída", view.Title)
	assert.Equal(t, "2 sessões de foco", view.Counter)
	assert.Equal(t, "Iniciar", view.ToggleLabel)
}
