package tray

import (
	"fmt"

	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/ui/faces"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "AuraFocus"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle    func()
	OnReset     func()
	OnGhostMode func()
	OnSettings  func()
	OnShow      func()
	OnQuit      func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	ghostItem  *fyne.MenuItem
	settings   *fyne.MenuItem
	callbacks  Callbacks
	activeIcon fyne.Resource
	idleIcon   fyne.Resource
	running    bool
	lang       faces.Language
	snapshot   *timekeeper.Snapshot
}

// New creates a tray manager with the provided callbacks. app may be nil
// when no tray is available.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		lang:      faces.English,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() { call(manager.callbacks.OnToggle) })
	manager.resetItem = fyne.NewMenuItem("Reset", func() { call(manager.callbacks.OnReset) })
	manager.ghostItem = fyne.NewMenuItem("Ghost mode", func() { call(manager.callbacks.OnGhostMode) })
	manager.settings = fyne.NewMenuItem("Settings", func() { call(manager.callbacks.OnSettings) })

	manager.refreshMenu()
	return manager
}

// SetIcons sets the tray icons used while running and otherwise.
func (manager *Manager) SetIcons(active, idle fyne.Resource) {
	manager.activeIcon = active
	manager.idleIcon = idle
	manager.refreshIcon()
}

// SetLanguage relabels the menu items in lang.
func (manager *Manager) SetLanguage(lang faces.Language) {
	manager.lang = lang
	text := lang.Labels()
	manager.resetItem.Label = text.Reset
	manager.settings.Label = text.Settings
	if manager.snapshot != nil {
		manager.SetSnapshot(*manager.snapshot)
		return
	}
	manager.toggleItem.Label = text.Start
	manager.refreshMenu()
}

// SetSnapshot updates the status line and the start/pause item.
func (manager *Manager) SetSnapshot(snapshot timekeeper.Snapshot) {
	manager.snapshot = &snapshot
	manager.statusItem.Label = "Status: " + StatusText(snapshot, manager.lang)
	manager.toggleItem.Label = faces.ToggleLabel(snapshot.Phase, manager.lang)
	manager.toggleItem.Disabled = snapshot.Phase == timekeeper.PhaseCompleted
	running := snapshot.Phase == timekeeper.PhaseRunning
	if running != manager.running {
		manager.running = running
		manager.refreshIcon()
	}
	manager.refreshMenu()
}

// SetGhostMode updates the ghost mode check mark.
func (manager *Manager) SetGhostMode(enabled bool) {
	manager.ghostItem.Checked = enabled
	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// StatusText describes a snapshot in one line, such as "Focus 12:34 (running)".
func StatusText(snapshot timekeeper.Snapshot, lang faces.Language) string {
	return fmt.Sprintf("%s %s (%s)", lang.SessionName(snapshot.Session), snapshot.RemainingText(), snapshot.Phase)
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.idleIcon
	if manager.running {
		icon = manager.activeIcon
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() { call(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.ghostItem,
		manager.settings,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	))
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
