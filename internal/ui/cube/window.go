// Package cube is the desktop widget: a small undecorated window showing one
// face of the timer cube at a time.
package cube

import (
	"context"
	"image/color"

	"aurafocus/internal/ui/animation"
	"aurafocus/internal/ui/faces"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Actions are the handlers the window's controls and shortcuts call.
type Actions struct {
	Toggle      func()
	Reset       func()
	Rotate      func(faces.Direction)
	ToggleGhost func()
}

const (
	windowTitle = "AuraFocus"

	solidAlpha = uint8(235)
	ghostAlpha = uint8(102)
	dimAlpha   = uint8(70)
)

var (
	windowSize = fyne.NewSize(260, 280)
	textColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type shortcutBinding struct {
	shortcut *desktop.CustomShortcut
	action   func()
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window manages the widget UI.
type Window struct {
	app          fyne.App
	window       fyne.Window
	actions      Actions
	background   *canvas.Rectangle
	indicator    *canvas.Circle
	titleLabel   *canvas.Text
	timerLabel   *canvas.Text
	counterLabel *canvas.Text
	progress     *widget.ProgressBar
	toggleButton *widget.Button
	resetButton  *widget.Button
	timerFace    fyne.CanvasObject
	settingsFace fyne.CanvasObject
	engine       *animation.Engine
	pulseAccent  color.NRGBA
	ghost        bool
}

// New creates the widget window. settings is shown on the settings face.
func New(app fyne.App, settings fyne.CanvasObject, actions Actions) *Window {
	window := app.NewWindow(windowTitle)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	cube := &Window{
		app:          app,
		window:       window,
		actions:      actions,
		background:   canvas.NewRectangle(color.NRGBA{R: 17, G: 24, B: 39, A: solidAlpha}),
		indicator:    canvas.NewCircle(dimmed(accentFor(""), dimAlpha)),
		titleLabel:   canvas.NewText("", textColor),
		timerLabel:   canvas.NewText("--:--", textColor),
		counterLabel: canvas.NewText("", textColor),
		progress:     widget.NewProgressBar(),
		settingsFace: settings,
	}

	cube.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	cube.titleLabel.TextSize = 18
	cube.timerLabel.Alignment = fyne.TextAlignCenter
	cube.timerLabel.TextStyle = fyne.TextStyle{Monospace: true}
	cube.timerLabel.TextSize = 48
	cube.counterLabel.Alignment = fyne.TextAlignCenter
	cube.counterLabel.TextSize = 12
	cube.progress.TextFormatter = func() string { return "" }

	cube.toggleButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() { call(cube.actions.Toggle) })
	cube.resetButton = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() { call(cube.actions.Reset) })
	leftButton := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { cube.rotate(faces.Left) })
	rightButton := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { cube.rotate(faces.Right) })

	indicator := container.NewGridWrap(fyne.NewSize(10, 10), cube.indicator)
	title := container.NewHBox(container.NewCenter(indicator), cube.titleLabel)
	controls := container.NewHBox(leftButton, layout.NewSpacer(), cube.toggleButton, cube.resetButton, layout.NewSpacer(), rightButton)
	cube.timerFace = container.New(&faceLayout{}, title, cube.timerLabel, cube.progress, cube.counterLabel, controls)
	if settings == nil {
		cube.settingsFace = widget.NewLabel("Settings unavailable")
	}
	cube.settingsFace.Hide()

	window.SetContent(container.NewStack(cube.background, container.NewPadded(container.NewStack(cube.timerFace, cube.settingsFace))))
	window.Resize(windowSize)
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	cube.engine = animation.New(animation.DefaultConfig(), func(value color.Color) {
		fyne.Do(func() {
			cube.indicator.FillColor = value
			cube.indicator.Refresh()
		})
	})
	cube.registerShortcuts()

	return cube
}

// Show displays the window and brings it to the front.
func (cube *Window) Show() {
	cube.window.Show()
	cube.window.RequestFocus()
}

// Activate shows the window from any goroutine.
func (cube *Window) Activate() {
	fyne.Do(cube.Show)
}

// GhostMode reports whether ghost mode is on.
func (cube *Window) GhostMode() bool {
	return cube.ghost
}

// Close stops the running indicator.
func (cube *Window) Close() {
	cube.engine.Stop()
}

// Render redraws the window. It must run on the UI goroutine.
func (cube *Window) Render(view View) {
	if view.Face == faces.FaceSettings {
		cube.timerFace.Hide()
		cube.settingsFace.Show()
	} else {
		cube.settingsFace.Hide()
		cube.timerFace.Show()
	}

	cube.titleLabel.Text = view.Title
	cube.titleLabel.Refresh()
	cube.timerLabel.Text = view.Time
	cube.timerLabel.Refresh()
	cube.counterLabel.Text = view.Counter
	cube.counterLabel.Refresh()
	cube.progress.SetValue(view.Progress)

	cube.toggleButton.SetText(view.ToggleLabel)
	if view.Running {
		cube.toggleButton.SetIcon(theme.MediaPauseIcon())
	} else {
		cube.toggleButton.SetIcon(theme.MediaPlayIcon())
	}
	if view.CanToggle {
		cube.toggleButton.Enable()
	} else {
		cube.toggleButton.Disable()
	}

	cube.renderIndicator(view)
}

// renderIndicator keeps a running pulse alive across progress updates and only
// restarts it when the accent changes.
func (cube *Window) renderIndicator(view View) {
	if view.Running {
		if cube.engine.Running() && cube.pulseAccent == view.Accent {
			return
		}
		cube.pulseAccent = view.Accent
		cube.engine.StartPulse(context.Background(), animation.PulseSpec{
			Bright: view.Accent,
			Dim:    dimmed(view.Accent, dimAlpha),
		})
		return
	}
	cube.engine.Stop()
	cube.indicator.FillColor = dimmed(view.Accent, dimAlpha)
	cube.indicator.Refresh()
}

// SetGhostMode dims the window and keeps it above other windows. It must run
// on the UI goroutine.
func (cube *Window) SetGhostMode(enabled bool) {
	cube.ghost = enabled
	alpha := solidAlpha
	if enabled {
		alpha = ghostAlpha
	}
	cube.background.FillColor = color.NRGBA{R: 17, G: 24, B: 39, A: alpha}
	cube.background.Refresh()
	cube.applyNativeOpacity(alpha)
	cube.applyNativeTopmost(enabled)
}

func (cube *Window) rotate(direction faces.Direction) {
	if cube.actions.Rotate != nil {
		cube.actions.Rotate(direction)
	}
}

func (cube *Window) shortcuts() []shortcutBinding {
	return []shortcutBinding{
		{&desktop.CustomShortcut{KeyName: fyne.KeyP, Modifier: fyne.KeyModifierAlt}, func() { call(cube.actions.Toggle) }},
		{&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierAlt}, func() { call(cube.actions.Reset) }},
		{&desktop.CustomShortcut{KeyName: fyne.KeyK, Modifier: fyne.KeyModifierAlt}, func() { call(cube.actions.ToggleGhost) }},
	}
}

func (cube *Window) registerShortcuts() {
	windowCanvas := cube.window.Canvas()
	for _, binding := range cube.shortcuts() {
		action := binding.action
		windowCanvas.AddShortcut(binding.shortcut, func(fyne.Shortcut) { action() })
	}
	windowCanvas.SetOnTypedKey(cube.handleKey)
}

func (cube *Window) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyLeft:
		cube.rotate(faces.Left)
	case fyne.KeyRight:
		cube.rotate(faces.Right)
	}
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
