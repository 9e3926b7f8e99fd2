package model

import "fmt"

// SessionType identifies which configured duration a session uses.
type SessionType string

const (
	SessionFocus      SessionType = "focus"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// SessionTypes lists session types in display order.
var SessionTypes = []SessionType{SessionFocus, SessionShortBreak, SessionLongBreak}

// Valid reports whether the session type is one of the known values.
func (session SessionType) Valid() bool {
	switch session {
	case SessionFocus, SessionShortBreak, SessionLongBreak:
		return true
	default:
		return false
	}
}

// Label returns a human readable name.
func (session SessionType) Label() string {
	switch session {
	case SessionFocus:
		return "Focus"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(session)
	}
}

// Field ranges for TimerConfig.
var (
	FocusMinutesRange           = Range{Field: "focus_minutes", Min: 1, Max: 90}
	ShortBreakMinutesRange      = Range{Field: "short_break_minutes", Min: 1, Max: 30}
	LongBreakMinutesRange       = Range{Field: "long_break_minutes", Min: 1, Max: 60}
	SessionsUntilLongBreakRange = Range{Field: "sessions_until_long_break", Min: 2, Max: 6}
	SoundVolumeRange            = Range{Field: "sound_volume", Min: 0, Max: 100}
)

// Range is an inclusive integer range for a config field.
type Range struct {
	Field string
	Min   int
	Max   int
}

// Contains reports whether value lies within the range.
func (r Range) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

// RangeError describes a rejected config value.
type RangeError struct {
	Range Range
	Value int
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", err.Range.Field, err.Range.Min, err.Range.Max, err.Value)
}

// TimerConfig contains user settings for the session timer.
type TimerConfig struct {
	FocusMinutes           int
	ShortBreakMinutes      int
	LongBreakMinutes       int
	SessionsUntilLongBreak int
	SoundEnabled           bool
	SoundVolume            int
}

// DefaultTimerConfig returns the classic 25/5/15 pomodoro cadence.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		FocusMinutes:           25,
		ShortBreakMinutes:      5,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 4,
		SoundEnabled:           true,
		SoundVolume:            50,
	}
}

// DurationSeconds returns the configured length of a session in seconds.
func (config TimerConfig) DurationSeconds(session SessionType) int {
	switch session {
	case SessionShortBreak:
		return config.ShortBreakMinutes * 60
	case SessionLongBreak:
		return config.LongBreakMinutes * 60
	default:
		return config.FocusMinutes * 60
	}
}

// ConfigPatch is a partial TimerConfig update. Nil fields are left untouched.
type ConfigPatch struct {
	FocusMinutes           *int
	ShortBreakMinutes      *int
	LongBreakMinutes       *int
	SessionsUntilLongBreak *int
	SoundEnabled           *bool
	SoundVolume            *int
}

// IntPtr returns a pointer to value, for building patches.
func IntPtr(value int) *int {
	return &value
}

// BoolPtr returns a pointer to value, for building patches.
func BoolPtr(value bool) *bool {
	return &value
}

// Merge applies patch to config. Out-of-range fields are rejected and keep
// their current value; the names of rejected fields are returned.
func (config TimerConfig) Merge(patch ConfigPatch) (TimerConfig, []string) {
	var rejected []string
	apply := func(target *int, value *int, r Range) {
		if value == nil {
			return
		}
		if !r.Contains(*value) {
			rejected = append(rejected, r.Field)
			return
		}
		*target = *value
	}

	apply(&config.FocusMinutes, patch.FocusMinutes, FocusMinutesRange)
	apply(&config.ShortBreakMinutes, patch.ShortBreakMinutes, ShortBreakMinutesRange)
	apply(&config.LongBreakMinutes, patch.LongBreakMinutes, LongBreakMinutesRange)
	apply(&config.SessionsUntilLongBreak, patch.SessionsUntilLongBreak, SessionsUntilLongBreakRange)
	apply(&config.SoundVolume, patch.SoundVolume, SoundVolumeRange)
	if patch.SoundEnabled != nil {
		config.SoundEnabled = *patch.SoundEnabled
	}
	return config, rejected
}

// CheckPatch returns a *RangeError for the first out-of-range field in patch.
func CheckPatch(patch ConfigPatch) error {
	checks := []struct {
		value *int
		r     Range
	}{
		{patch.FocusMinutes, FocusMinutesRange},
		{patch.ShortBreakMinutes, ShortBreakMinutesRange},
		{patch.LongBreakMinutes, LongBreakMinutesRange},
		{patch.SessionsUntilLongBreak, SessionsUntilLongBreakRange},
		{patch.SoundVolume, SoundVolumeRange},
	}
	for _, check := range checks {
		if check.value != nil && !check.r.Contains(*check.value) {
			return &RangeError{Range: check.r, Value: *check.value}
		}
	}
	return nil
}

// Sanitize replaces out-of-range fields with their defaults.
func (config TimerConfig) Sanitize() TimerConfig {
	sanitized, _ := DefaultTimerConfig().Merge(config.Patch())
	return sanitized
}

// Patch returns a patch that sets every field of config.
func (config TimerConfig) Patch() ConfigPatch {
	return ConfigPatch{
		FocusMinutes:           IntPtr(config.FocusMinutes),
		ShortBreakMinutes:      IntPtr(config.ShortBreakMinutes),
		LongBreakMinutes:       IntPtr(config.LongBreakMinutes),
		SessionsUntilLongBreak: IntPtr(config.SessionsUntilLongBreak),
		SoundEnabled:           BoolPtr(config.SoundEnabled),
		SoundVolume:            IntPtr(config.SoundVolume),
	}
}

// PersistedState is the part of the engine state that survives a restart.
type PersistedState struct {
	Config                 TimerConfig
	CompletedFocusSessions int
}

// DefaultPersistedState returns the state of a first launch.
func DefaultPersistedState() PersistedState {
	return PersistedState{Config: DefaultTimerConfig()}
}

// Sanitize clamps loaded values back into their valid ranges.
func (state PersistedState) Sanitize() PersistedState {
	state.Config = state.Config.Sanitize()
	if state.CompletedFocusSessions < 0 {
		state.CompletedFocusSessions = 0
	}
	return state
}
