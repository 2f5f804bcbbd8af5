package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the interactive views.
const (
	colorAccent   = lipgloss.Color("39")
	colorSubtle   = lipgloss.Color("245")
	colorBorder   = lipgloss.Color("240")
	colorInfo     = lipgloss.Color("33")
	colorWarning  = lipgloss.Color("214")
	colorCritical = lipgloss.Color("196")
	colorSelected = lipgloss.Color("57")
)

//nolint:gochecknoglobals // Styles are package-level for reuse across views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	InfoStyle     = lipgloss.NewStyle().Foreground(colorInfo)
	WarningStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCritical)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(colorBorder).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(colorSelected)
)
