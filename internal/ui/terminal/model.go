// Package terminal runs the timer as a full-screen terminal program.
package terminal

import (
	"fmt"
	"strings"

	"aurafocus/internal/core/timekeeper"
	"aurafocus/internal/ui/faces"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	eventBuffer      = 16
	defaultBarWidth  = 30
	maxBarWidth      = 50
	panelHorizontals = 8
)

// Engine is the timer the terminal drives.
type Engine interface {
	faces.Controller
	Reset() timekeeper.Snapshot
	Subscribe(buffer int) <-chan timekeeper.Event
}

type eventMsg timekeeper.Event

type eventsClosedMsg struct{}

type notificationMsg timekeeper.Notification

// Model is the bubbletea model of the terminal timer.
type Model struct {
	keeper   Engine
	nav      *faces.Navigator
	events   <-chan timekeeper.Event
	notes    <-chan timekeeper.Notification
	snapshot timekeeper.Snapshot
	face     faces.Face
	lang     faces.Language
	status   string
	width    int
	progress progress.Model
	help     help.Model
}

// New creates the model with labels in lang. notifier may be nil.
func New(keeper Engine, notifier *Notifier, lang faces.Language) Model {
	nav := faces.NewNavigator(keeper)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultBarWidth
	m := Model{
		keeper:   keeper,
		nav:      nav,
		events:   keeper.Subscribe(eventBuffer),
		snapshot: keeper.Snapshot(),
		face:     nav.Current(),
		lang:     lang,
		progress: bar,
		help:     help.New(),
	}
	if notifier != nil {
		m.notes = notifier.notes
	}
	return m
}

// Run starts the terminal program and blocks until the user quits.
func Run(keeper Engine, notifier *Notifier, lang faces.Language) error {
	program := tea.NewProgram(New(keeper, notifier, lang), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), waitForNotification(m.notes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = min(max(msg.Width-panelHorizontals*2, 10), maxBarWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case eventMsg:
		m.snapshot = msg.Snapshot
		m.face = m.nav.Follow(msg.Snapshot)
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case notificationMsg:
		m.status = fmt.Sprintf("%s %s\a", msg.Title, msg.Body)
		return m, waitForNotification(m.notes)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Toggle):
		m.nav.Toggle()
	case key.Matches(msg, keys.Reset):
		m.keeper.Reset()
		m.status = ""
	case key.Matches(msg, keys.Left):
		m.nav.Rotate(faces.Left)
	case key.Matches(msg, keys.Right):
		m.nav.Rotate(faces.Right)
	default:
		return m, nil
	}
	m.snapshot = m.keeper.Snapshot()
	m.face = m.nav.Current()
	return m, nil
}

func (m Model) View() string {
	color := sessionColor(m.snapshot.Session)

	var body string
	if m.face == faces.FaceSettings {
		body = m.settingsView()
	} else {
		body = m.timerView(color)
	}

	lines := []string{m.tabsView(), "", body}
	if m.status != "" {
		lines = append(lines, "", statusStyle.Render(m.status))
	}
	lines = append(lines, "", m.help.View(keys))

	panel := panelStyle
	if m.width > 0 {
		panel = panel.Width(m.width - 2)
	}
	return panel.BorderForeground(color).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, 4)
	for _, face := range []faces.Face{faces.FaceFocus, faces.FaceShortBreak, faces.FaceLongBreak, faces.FaceSettings} {
		if face == m.face {
			tabs = append(tabs, activeTabStyle.Render(face.Title(m.lang)))
			continue
		}
		tabs = append(tabs, inactiveTabStyle.Render(face.Title(m.lang)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) timerView(color lipgloss.Color) string {
	phase := strings.ToUpper(string(m.snapshot.Phase))
	if m.snapshot.Phase == timekeeper.PhaseCompleted {
		phase = strings.ToUpper(m.lang.CompleteTitle(m.snapshot.Session))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		timerStyle.Foreground(color).Render(m.snapshot.RemainingText()),
		mutedStyle.Render(phase),
		"",
		m.progress.ViewAs(m.snapshot.Progress()),
		"",
		mutedStyle.Render(faces.CounterText(m.snapshot.CompletedFocusSessions, m.lang)),
	)
}

func (m Model) settingsView() string {
	config := m.snapshot.Config
	sound := "off"
	if config.SoundEnabled {
		sound = fmt.Sprintf("on (volume %d)", config.SoundVolume)
	}
	rows := []string{
		fmt.Sprintf("Focus            %3d min", config.FocusMinutes),
		fmt.Sprintf("Short break      %3d min", config.ShortBreakMinutes),
		fmt.Sprintf("Long break       %3d min", config.LongBreakMinutes),
		fmt.Sprintf("Long break every %3d sessions", config.SessionsUntilLongBreak),
		fmt.Sprintf("Notifications    %s", sound),
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		mutedStyle.Render("Settings are edited in the widget."),
	)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func waitForNotification(notes <-chan timekeeper.Notification) tea.Cmd {
	if notes == nil {
		return nil
	}
	return func() tea.Msg {
		return notificationMsg(<-notes)
	}
}
