package terminal

import (
	"aurafocus/internal/core/model"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorFocus      = lipgloss.Color("#EF4444")
	colorShortBreak = lipgloss.Color("#34D399")
	colorLongBreak  = lipgloss.Color("#60A5FA")
	colorMuted      = lipgloss.Color("#666666")
	colorSubtle     = lipgloss.Color("#414868")
	colorFg         = lipgloss.Color("#C0CAF5")
	colorWarning    = lipgloss.Color("#F39C12")
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	statusStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
)

func sessionColor(session model.SessionType) lipgloss.Color {
	switch session {
	case model.SessionShortBreak:
		return colorShortBreak
	case model.SessionLongBreak:
		return colorLongBreak
	default:
		return colorFocus
	}
}
