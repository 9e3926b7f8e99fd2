package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationSeconds(t *testing.T) {
	config := DefaultTimerConfig()

	tests := []struct {
		session  SessionType
		expected int
	}{
		{SessionFocus, 1500},
		{SessionShortBreak, 300},
		{SessionLongBreak, 900},
	}
	for _, tt := range tests {
		t.Run(string(tt.session), func(t *testing.T) {
			assert.Equal(t, tt.expected, config.DurationSeconds(tt.session))
		})
	}
}

func TestMergeAcceptsInRangeFields(t *testing.T) {
	merged, rejected := DefaultTimerConfig().Merge(ConfigPatch{
		FocusMinutes:           IntPtr(30),
		SessionsUntilLongBreak: IntPtr(2),
		SoundEnabled:           BoolPtr(false),
		SoundVolume:            IntPtr(0),
	})

	assert.Empty(t, rejected)
	assert.Equal(t, 30, merged.FocusMinutes)
	assert.Equal(t, 2, merged.SessionsUntilLongBreak)
	assert.False(t, merged.SoundEnabled)
	assert.Equal(t, 0, merged.SoundVolume)
	assert.Equal(t, 5, merged.ShortBreakMinutes)
}

func TestMergeRejectsOutOfRangeFields(t *testing.T) {
	tests := []struct {
		name  string
		patch ConfigPatch
		field string
	}{
		{"focus too long", ConfigPatch{FocusMinutes: IntPtr(200)}, "focus_minutes"},
		{"focus zero", ConfigPatch{FocusMinutes: IntPtr(0)}, "focus_minutes"},
		{"short break too long", ConfigPatch{ShortBreakMinutes: IntPtr(31)}, "short_break_minutes"},
		{"long break too long", ConfigPatch{LongBreakMinutes: IntPtr(61)}, "long_break_minutes"},
		{"cadence too small", ConfigPatch{SessionsUntilLongBreak: IntPtr(1)}, "sessions_until_long_break"},
		{"cadence too big", ConfigPatch{SessionsUntilLongBreak: IntPtr(7)}, "sessions_until_long_break"},
		{"volume negative", ConfigPatch{SoundVolume: IntPtr(-1)}, "sound_volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, rejected := DefaultTimerConfig().Merge(tt.patch)

			assert.Equal(t, []string{tt.field}, rejected)
			assert.Equal(t, DefaultTimerConfig(), merged)
		})
	}
}

func TestMergeKeepsValidFieldsWhenOthersRejected(t *testing.T) {
	merged, rejected := DefaultTimerConfig().Merge(ConfigPatch{
		FocusMinutes:      IntPtr(200),
		ShortBreakMinutes: IntPtr(10),
	})

	assert.Equal(t, []string{"focus_minutes"}, rejected)
	assert.Equal(t, 25, merged.FocusMinutes)
	assert.Equal(t, 10, merged.ShortBreakMinutes)
}

func TestCheckPatch(t *testing.T) {
	require.NoError(t, CheckPatch(ConfigPatch{FocusMinutes: IntPtr(90)}))

	err := CheckPatch(ConfigPatch{LongBreakMinutes: IntPtr(0)})
	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, LongBreakMinutesRange, rangeErr.Range)
	assert.Equal(t, "long_break_minutes must be between 1 and 60, got 0", err.Error())
}

func TestPersistedStateSanitize(t *testing.T) {
	state := PersistedState{
		Config: TimerConfig{
			FocusMinutes:           500,
			ShortBreakMinutes:      3,
			LongBreakMinutes:       0,
			SessionsUntilLongBreak: 5,
			SoundEnabled:           false,
			SoundVolume:            101,
		},
		CompletedFocusSessions: -4,
	}

	sanitized := state.Sanitize()

	assert.Equal(t, TimerConfig{
		FocusMinutes:           25,
		ShortBreakMinutes:      3,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 5,
		SoundEnabled:           false,
		SoundVolume:            50,
	}, sanitized.Config)
	assert.Equal(t, 0, sanitized.CompletedFocusSessions)
}

func TestSessionTypeLabels(t *testing.T) {
	for _, session := range SessionTypes {
		assert.True(t, session.Valid())
		assert.NotEmpty(t, session.Label())
	}
	assert.False(t, SessionType("settings").Valid())
}
