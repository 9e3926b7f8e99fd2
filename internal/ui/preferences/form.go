package preferences

import (
	"strings"

	"aurafocus/internal/core/model"
	"aurafocus/internal/ui/faces"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SaveFunc receives validated settings and the matching timer patch.
type SaveFunc func(settings Settings, patch model.ConfigPatch)

// Form is the settings face content.
type Form struct {
	content   fyne.CanvasObject
	settings  Settings
	onSave    SaveFunc
	onClose   func()
	errLabel  *widget.Label
	focus     *widget.Entry
	short     *widget.Entry
	long      *widget.Entry
	cadence   *widget.Entry
	sound     *widget.Check
	volume    *widget.Slider
	ghost     *widget.Check
	autostart *widget.Check
	language  *widget.RadioGroup
}

// NewForm creates the settings form. onClose runs after Save or Back.
func NewForm(settings Settings, onSave SaveFunc, onClose func()) *Form {
	form := &Form{
		onSave:    onSave,
		onClose:   onClose,
		errLabel:  widget.NewLabel(""),
		focus:     widget.NewEntry(),
		short:     widget.NewEntry(),
		long:      widget.NewEntry(),
		cadence:   widget.NewEntry(),
		sound:     widget.NewCheck("Notify when a session ends", nil),
		volume:    widget.NewSlider(float64(model.SoundVolumeRange.Min), float64(model.SoundVolumeRange.Max)),
		ghost:     widget.NewCheck("Ghost mode", nil),
		autostart: widget.NewCheck("Launch at login", nil),
		language:  widget.NewRadioGroup(languageOptions(), nil),
	}
	form.language.Horizontal = true
	form.language.Required = true
	form.volume.Step = 1
	form.errLabel.Importance = widget.DangerImportance
	form.errLabel.Wrapping = fyne.TextWrapWord
	form.errLabel.Hide()

	fields := widget.NewForm(
		widget.NewFormItem("Focus (min)", form.focus),
		widget.NewFormItem("Short break (min)", form.short),
		widget.NewFormItem("Long break (min)", form.long),
		widget.NewFormItem("Long break every", form.cadence),
		widget.NewFormItem("Volume", form.volume),
		widget.NewFormItem("Language", form.language),
	)

	saveButton := widget.NewButton("Save", form.handleSave)
	saveButton.Importance = widget.HighImportance
	backButton := widget.NewButton("Back", form.close)
	buttons := container.NewHBox(backButton, layout.NewSpacer(), saveButton)

	form.content = container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fields,
		form.sound,
		form.ghost,
		form.autostart,
		form.errLabel,
	)))

	form.SetSettings(settings)
	return form
}

// Content returns the canvas object to embed.
func (form *Form) Content() fyne.CanvasObject {
	return form.content
}

// SetSettings replaces the form values.
func (form *Form) SetSettings(settings Settings) {
	form.settings = settings
	input := InputFrom(settings)
	form.focus.SetText(input.FocusMinutes)
	form.short.SetText(input.ShortBreakMinutes)
	form.long.SetText(input.LongBreakMinutes)
	form.cadence.SetText(input.SessionsUntilLongBreak)
	form.sound.SetChecked(input.SoundEnabled)
	form.volume.SetValue(input.SoundVolume)
	form.ghost.SetChecked(input.GhostMode)
	form.autostart.SetChecked(input.LaunchAtLogin)
	form.language.SetSelected(strings.ToUpper(input.Language))
	form.errLabel.Hide()
}

// Settings returns the last saved settings.
func (form *Form) Settings() Settings {
	return form.settings
}

func (form *Form) input() Input {
	return Input{
		FocusMinutes:           form.focus.Text,
		ShortBreakMinutes:      form.short.Text,
		LongBreakMinutes:       form.long.Text,
		SessionsUntilLongBreak: form.cadence.Text,
		SoundEnabled:           form.sound.Checked,
		SoundVolume:            form.volume.Value,
		GhostMode:              form.ghost.Checked,
		LaunchAtLogin:          form.autostart.Checked,
		Language:               strings.ToLower(form.language.Selected),
	}
}

// languageOptions labels each language by its upper-case code, such as "EN".
func languageOptions() []string {
	options := make([]string, len(faces.Languages))
	for i, lang := range faces.Languages {
		options[i] = strings.ToUpper(string(lang))
	}
	return options
}

func (form *Form) handleSave() {
	settings, patch, err := form.input().Parse(form.settings)
	if err != nil {
		form.errLabel.SetText(err.Error())
		form.errLabel.Show()
		return
	}
	form.errLabel.Hide()
	form.settings = settings
	if form.onSave != nil {
		form.onSave(settings, patch)
	}
	form.close()
}

func (form *Form) close() {
	if form.onClose != nil {
		form.onClose()
	}
}
