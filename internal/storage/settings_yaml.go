package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"aurafocus/internal/core/model"

	"gopkg.in/yaml.v3"
)

const (
	stateFileName   = "state.yaml"
	defaultLanguage = "en"
)

// UIPreferences holds presentation settings stored next to the timer state.
type UIPreferences struct {
	GhostMode     bool
	LaunchAtLogin bool
	Language      string
}

// State is everything kept in the state file.
type State struct {
	Timer model.PersistedState
	UI    UIPreferences
}

// DefaultState returns the state of a first launch.
func DefaultState() State {
	return State{
		Timer: model.DefaultPersistedState(),
		UI:    UIPreferences{Language: defaultLanguage},
	}
}

type yamlConfig struct {
	FocusMinutes           int   `yaml:"focus_minutes"`
	ShortBreakMinutes      int   `yaml:"short_break_minutes"`
	LongBreakMinutes       int   `yaml:"long_break_minutes"`
	SessionsUntilLongBreak int   `yaml:"sessions_until_long_break"`
	SoundEnabled           *bool `yaml:"sound_enabled"`
	SoundVolume            *int  `yaml:"sound_volume"`
}

type yamlUI struct {
	GhostMode     bool   `yaml:"ghost_mode"`
	LaunchAtLogin bool   `yaml:"launch_at_login"`
	Language      string `yaml:"language,omitempty"`
}

type yamlState struct {
	Config                 yamlConfig `yaml:"config"`
	CompletedFocusSessions int        `yaml:"completed_focus_sessions"`
	UI                     yamlUI     `yaml:"ui"`
}

// FileStore reads and writes the YAML state file.
// It remembers the last written timer and UI sections so either one can be
// saved without the caller supplying the other.
type FileStore struct {
	mu    sync.Mutex
	path  string
	timer model.PersistedState
	ui    UIPreferences
}

// NewFileStore creates a store for the state file inside dir.
func NewFileStore(dir string) *FileStore {
	defaults := DefaultState()
	return &FileStore{
		path:  filepath.Join(dir, stateFileName),
		timer: defaults.Timer,
		ui:    defaults.UI,
	}
}

// DefaultDir returns the per-user config directory for appName.
func DefaultDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}

// Path returns the state file location.
func (store *FileStore) Path() string {
	return store.path
}

// Load reads the state file.
// If the file does not exist, default state is returned.
func (store *FileStore) Load() (State, error) {
	state := DefaultState()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return state, fmt.Errorf("read state file: %w", err)
	}

	var fileData yamlState
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return state, fmt.Errorf("parse state yaml: %w", err)
	}

	applyYamlState(&state, fileData)

	store.mu.Lock()
	store.timer = state.Timer
	store.ui = state.UI
	store.mu.Unlock()
	return state, nil
}

// Save writes the full state file.
func (store *FileStore) Save(state State) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.timer = state.Timer
	store.ui = state.UI
	return store.writeLocked(state)
}

// SaveState persists timer state and keeps the last known UI preferences.
func (store *FileStore) SaveState(timer model.PersistedState) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.timer = timer
	return store.writeLocked(State{Timer: timer, UI: store.ui})
}

// SaveUI persists UI preferences and keeps the last saved timer state.
func (store *FileStore) SaveUI(ui UIPreferences) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.ui = ui
	return store.writeLocked(State{Timer: store.timer, UI: ui})
}

func (store *FileStore) writeLocked(state State) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	config := state.Timer.Config
	fileData := yamlState{
		Config: yamlConfig{
			FocusMinutes:           config.FocusMinutes,
			ShortBreakMinutes:      config.ShortBreakMinutes,
			LongBreakMinutes:       config.LongBreakMinutes,
			SessionsUntilLongBreak: config.SessionsUntilLongBreak,
			SoundEnabled:           model.BoolPtr(config.SoundEnabled),
			SoundVolume:            model.IntPtr(config.SoundVolume),
		},
		CompletedFocusSessions: state.Timer.CompletedFocusSessions,
		UI: yamlUI{
			GhostMode:     state.UI.GhostMode,
			LaunchAtLogin: state.UI.LaunchAtLogin,
			Language:      state.UI.Language,
		},
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}

	// The state file is replaced atomically.
	tmpPath := store.path + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmpPath, store.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func applyYamlState(state *State, fileData yamlState) {
	patch := model.ConfigPatch{
		SoundEnabled: fileData.Config.SoundEnabled,
		SoundVolume:  fileData.Config.SoundVolume,
	}
	if fileData.Config.FocusMinutes != 0 {
		patch.FocusMinutes = model.IntPtr(fileData.Config.FocusMinutes)
	}
	if fileData.Config.ShortBreakMinutes != 0 {
		patch.ShortBreakMinutes = model.IntPtr(fileData.Config.ShortBreakMinutes)
	}
	if fileData.Config.LongBreakMinutes != 0 {
		patch.LongBreakMinutes = model.IntPtr(fileData.Config.LongBreakMinutes)
	}
	if fileData.Config.SessionsUntilLongBreak != 0 {
		patch.SessionsUntilLongBreak = model.IntPtr(fileData.Config.SessionsUntilLongBreak)
	}
	state.Timer.Config, _ = state.Timer.Config.Merge(patch)

	if fileData.CompletedFocusSessions > 0 {
		state.Timer.CompletedFocusSessions = fileData.CompletedFocusSessions
	}

	state.UI.GhostMode = fileData.UI.GhostMode
	state.UI.LaunchAtLogin = fileData.UI.LaunchAtLogin
	if fileData.UI.Language != "" {
		state.UI.Language = fileData.UI.Language
	}
}
