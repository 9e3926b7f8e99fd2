package cube

import (
	"image/color"
	"sync"
	"testing"
	"time"

	"aurafocus/internal/core/model"
	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/ui/animation"
	"aurafocus/internal/ui/faces"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(t *testing.T, actions Actions) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	cube := New(app, widget.NewLabel("settings"), actions)
	t.Cleanup(cube.Close)
	return cube
}

func TestRenderTimerFace(t *testing.T) {
	cube := newTestWindow(t, Actions{})
	snapshot := timekeeper.Snapshot{
		Phase: timekeeper.PhasePaused, Session: model.SessionFocus,
		RemainingSeconds: 754, TotalSeconds: 1500, CompletedFocusSessions: 2,
	}

	cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))

	assert.Equal(t, "Focus", cube.titleLabel.Text)
	assert.Equal(t, "12:34", cube.timerLabel.Text)
	assert.Equal(t, "2 focus sessions", cube.counterLabel.Text)
	assert.Equal(t, "Resume", cube.toggleButton.Text)
	assert.False(t, cube.toggleButton.Disabled())
	assert.True(t, cube.timerFace.Visible())
	assert.False(t, cube.settingsFace.Visible())
	assert.False(t, cube.engine.Running())
}

func TestRenderSettingsFace(t *testing.T) {
	cube := newTestWindow(t, Actions{})
	snapshot := timekeeper.Snapshot{Phase: timekeeper.PhaseIdle, Session: model.SessionFocus, RemainingSeconds: 1500, TotalSeconds: 1500}

	cube.Render(NewView(snapshot, faces.FaceSettings, faces.English))

	assert.False(t, cube.timerFace.Visible())
	assert.True(t, cube.settingsFace.Visible())
	assert.True(t, cube.toggleButton.Disabled())
}

func TestRenderRunningStartsPulse(t *testing.T) {
	cube := newTestWindow(t, Actions{})
	snapshot := timekeeper.Snapshot{Phase: timekeeper.PhaseRunning, Session: model.SessionFocus, RemainingSeconds: 1499, TotalSeconds: 1500}

	cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))
	assert.True(t, cube.engine.Running())

	snapshot.Phase = timekeeper.PhasePaused
	cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))
	assert.False(t, cube.engine.Running())
}

type colorRecorder struct {
	mu     sync.Mutex
	colors []color.Color
}

func (recorder *colorRecorder) record(value color.Color) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.colors = append(recorder.colors, value)
}

func (recorder *colorRecorder) count() int {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return len(recorder.colors)
}

func TestRenderKeepsPulseAcrossProgress(t *testing.T) {
	cube := newTestWindow(t, Actions{})
	cube.engine.Stop()
	recorder := &colorRecorder{}
	slow := animation.Range{Min: time.Hour, Max: time.Hour}
	cube.engine = animation.New(animation.Config{BrightDuration: slow, DimDuration: slow}, recorder.record)
	snapshot := timekeeper.Snapshot{Phase: timekeeper.PhaseRunning, Session: model.SessionFocus, RemainingSeconds: 1499, TotalSeconds: 1500}

	for i := 0; i < 3; i++ {
		cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))
		snapshot.RemainingSeconds--
	}
	require.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, recorder.count(), "progress must not restart the pulse")

	snapshot.Session = model.SessionShortBreak
	cube.Render(NewView(snapshot, faces.FaceShortBreak, faces.English))
	require.Eventually(t, func() bool { return recorder.count() == 2 }, time.Second, time.Millisecond)
	assert.True(t, cube.engine.Running())
}

func TestRenderAfterPauseRestartsPulse(t *testing.T) {
	cube := newTestWindow(t, Actions{})
	snapshot := timekeeper.Snapshot{Phase: timekeeper.PhaseRunning, Session: model.SessionFocus, RemainingSeconds: 1499, TotalSeconds: 1500}

	cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))
	snapshot.Phase = timekeeper.PhasePaused
	cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))
	snapshot.Phase = timekeeper.PhaseRunning
	cube.Render(NewView(snapshot, faces.FaceFocus, faces.English))

	assert.True(t, cube.engine.Running())
}

func TestTimerLabelIsMonospace(t *testing.T) {
	cube := newTestWindow(t, Actions{})

	assert.True(t, cube.timerLabel.TextStyle.Monospace)
	assert.False(t, cube.timerLabel.TextStyle.Bold)
}

func TestShortcutsAndKeys(t *testing.T) {
	var calls []string
	cube := newTestWindow(t, Actions{
		Toggle:      func() { calls = append(calls, "toggle") },
		Reset:       func() { calls = append(calls, "reset") },
		ToggleGhost: func() { calls = append(calls, "ghost") },
		Rotate: func(direction faces.Direction) {
			if direction == faces.Left {
				calls = append(calls, "left")
				return
			}
			calls = append(calls, "right")
		},
	})

	bindings := cube.shortcuts()
	require.Len(t, bindings, 3)
	for _, binding := range bindings {
		assert.Equal(t, fyne.KeyModifierAlt, binding.shortcut.Modifier)
		binding.action()
	}
	cube.handleKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	cube.handleKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	cube.handleKey(&fyne.KeyEvent{Name: fyne.KeyUp})

	assert.Equal(t, []fyne.KeyName{fyne.KeyP, fyne.KeyR, fyne.KeyK}, []fyne.KeyName{
		bindings[0].shortcut.KeyName, bindings[1].shortcut.KeyName, bindings[2].shortcut.KeyName,
	})
	assert.Equal(t, []string{"toggle", "reset", "ghost", "left", "right"}, calls)
}

func TestGhostModeDimsBackground(t *testing.T) {
	cube := newTestWindow(t, Actions{})

	cube.SetGhostMode(true)
	assert.True(t, cube.GhostMode())
	assert.Equal(t, ghostAlpha, alphaOf(cube))

	cube.SetGhostMode(false)
	assert.False(t, cube.GhostMode())
	assert.Equal(t, solidAlpha, alphaOf(cube))
}

func alphaOf(cube *Window) uint8 {
	_, _, _, alpha := cube.background.FillColor.RGBA()
	return uint8(alpha >> 8)
}
