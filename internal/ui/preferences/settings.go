package preferences

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"aurafocus/internal/core/model"
	"aurafocus/internal/storage"
	"aurafocus/internal/ui/faces"
)

// Settings defines editable user preferences.
type Settings struct {
	Timer         model.TimerConfig
	GhostMode     bool
	LaunchAtLogin bool
	Language      faces.Language
}

// DefaultSettings returns the settings of a first launch.
func DefaultSettings() Settings {
	return Settings{Timer: model.DefaultTimerConfig(), Language: faces.English}
}

// FromState extracts the editable settings from a loaded state file.
// An unknown language falls back to English.
func FromState(state storage.State) Settings {
	lang, _ := faces.ParseLanguage(state.UI.Language)
	return Settings{
		Timer:         state.Timer.Config,
		GhostMode:     state.UI.GhostMode,
		LaunchAtLogin: state.UI.LaunchAtLogin,
		Language:      lang,
	}
}

// UIPreferences returns the presentation part of settings.
func (settings Settings) UIPreferences() storage.UIPreferences {
	return storage.UIPreferences{
		GhostMode:     settings.GhostMode,
		LaunchAtLogin: settings.LaunchAtLogin,
		Language:      string(settings.Language),
	}
}

// Input is the raw content of the settings form.
type Input struct {
	FocusMinutes           string
	ShortBreakMinutes      string
	LongBreakMinutes       string
	SessionsUntilLongBreak string
	SoundEnabled           bool
	SoundVolume            float64
	GhostMode              bool
	LaunchAtLogin          bool
	Language               string
}

// InputFrom fills a form from settings.
func InputFrom(settings Settings) Input {
	return Input{
		FocusMinutes:           strconv.Itoa(settings.Timer.FocusMinutes),
		ShortBreakMinutes:      strconv.Itoa(settings.Timer.ShortBreakMinutes),
		LongBreakMinutes:       strconv.Itoa(settings.Timer.LongBreakMinutes),
		SessionsUntilLongBreak: strconv.Itoa(settings.Timer.SessionsUntilLongBreak),
		SoundEnabled:           settings.Timer.SoundEnabled,
		SoundVolume:            float64(settings.Timer.SoundVolume),
		GhostMode:              settings.GhostMode,
		LaunchAtLogin:          settings.LaunchAtLogin,
		Language:               string(settings.Language),
	}
}

// Parse validates input against current. It returns the updated settings and
// the patch to send to the timer, or the first problem found.
func (input Input) Parse(current Settings) (Settings, model.ConfigPatch, error) {
	var patch model.ConfigPatch
	fields := []struct {
		label  string
		text   string
		target **int
	}{
		{"Focus", input.FocusMinutes, &patch.FocusMinutes},
		{"Short break", input.ShortBreakMinutes, &patch.ShortBreakMinutes},
		{"Long break", input.LongBreakMinutes, &patch.LongBreakMinutes},
		{"Long break every", input.SessionsUntilLongBreak, &patch.SessionsUntilLongBreak},
	}
	for _, field := range fields {
		value, err := parseInt(field.text)
		if err != nil {
			return current, model.ConfigPatch{}, fmt.Errorf("%s: %w", field.label, err)
		}
		*field.target = model.IntPtr(value)
	}
	patch.SoundEnabled = model.BoolPtr(input.SoundEnabled)
	patch.SoundVolume = model.IntPtr(int(math.Round(input.SoundVolume)))

	if err := model.CheckPatch(patch); err != nil {
		return current, model.ConfigPatch{}, err
	}
	lang, ok := faces.ParseLanguage(input.Language)
	if !ok {
		return current, model.ConfigPatch{}, fmt.Errorf("Language: %q is not supported", input.Language)
	}

	updated := current
	updated.Timer, _ = current.Timer.Merge(patch)
	updated.GhostMode = input.GhostMode
	updated.LaunchAtLogin = input.LaunchAtLogin
	updated.Language = lang
	return updated, patch, nil
}

func parseInt(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", value)
	}
	return parsed, nil
}
