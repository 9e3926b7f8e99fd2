package preferences

import (
	"errors"
	"testing"

	"aurafocus/internal/core/model"
	"aurafocus/internal/storage"
	"aurafocus/internal/ui/faces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStateAndBack(t *testing.T) {
	state := storage.DefaultState()
	state.Timer.Config.FocusMinutes = 40
	state.UI = storage.UIPreferences{GhostMode: true, LaunchAtLogin: true, Language: "pt"}

	settings := FromState(state)

	assert.Equal(t, 40, settings.Timer.FocusMinutes)
	assert.Equal(t, faces.Portuguese, settings.Language)
	assert.Equal(t, state.UI, settings.UIPreferences())
}

func TestFromStateUnknownLanguage(t *testing.T) {
	state := storage.DefaultState()
	state.UI.Language = "klingon"

	assert.Equal(t, faces.English, FromState(state).Language)
}

func TestParseLanguage(t *testing.T) {
	settings := DefaultSettings()
	input := InputFrom(settings)

	input.Language = "pt"
	updated, _, err := input.Parse(settings)
	require.NoError(t, err)
	assert.Equal(t, faces.Portuguese, updated.Language)

	input.Language = "de"
	unchanged, _, err := input.Parse(settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Language")
	assert.Equal(t, settings, unchanged)
}

func TestInputRoundTrip(t *testing.T) {
	settings := DefaultSettings()

	updated, patch, err := InputFrom(settings).Parse(settings)

	require.NoError(t, err)
	assert.Equal(t, settings, updated)
	require.NotNil(t, patch.FocusMinutes)
	assert.Equal(t, 25, *patch.FocusMinutes)
	require.NotNil(t, patch.SoundVolume)
	assert.Equal(t, 50, *patch.SoundVolume)
}

func TestParseAppliesEdits(t *testing.T) {
	settings := DefaultSettings()
	input := InputFrom(settings)
	input.FocusMinutes = " 50 "
	input.SessionsUntilLongBreak = "2"
	input.SoundEnabled = false
	input.SoundVolume = 72.6
	input.GhostMode = true

	updated, _, err := input.Parse(settings)

	require.NoError(t, err)
	assert.Equal(t, 50, updated.Timer.FocusMinutes)
	assert.Equal(t, 2, updated.Timer.SessionsUntilLongBreak)
	assert.False(t, updated.Timer.SoundEnabled)
	assert.Equal(t, 73, updated.Timer.SoundVolume)
	assert.True(t, updated.GhostMode)
	assert.False(t, updated.LaunchAtLogin)
}

func TestParseRejectsBadInput(t *testing.T) {
	settings := DefaultSettings()
	tests := []struct {
		name   string
		edit   func(*Input)
		field  string
		isText bool
	}{
		{"not a number", func(input *Input) { input.ShortBreakMinutes = "five" }, "", true},
		{"focus too long", func(input *Input) { input.FocusMinutes = "200" }, "focus_minutes", false},
		{"cadence too small", func(input *Input) { input.SessionsUntilLongBreak = "1" }, "sessions_until_long_break", false},
		{"long break zero", func(input *Input) { input.LongBreakMinutes = "0" }, "long_break_minutes", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := InputFrom(settings)
			tt.edit(&input)

			updated, patch, err := input.Parse(settings)

			require.Error(t, err)
			assert.Equal(t, settings, updated)
			assert.Equal(t, model.ConfigPatch{}, patch)
			if tt.isText {
				assert.Contains(t, err.Error(), "not a whole number")
				return
			}
			var rangeErr *model.RangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.field, rangeErr.Range.Field)
		})
	}
}
