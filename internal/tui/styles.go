package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent  = lipgloss.Color("99")
	colorSubtle  = lipgloss.Color("241")
	colorValue   = lipgloss.Color("252")
	colorInfo    = lipgloss.Color("39")
	colorBorder  = lipgloss.Color("240")
	colorChecked = lipgloss.Color("42")
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are immutable values shared by all views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	ValueStyle = lipgloss.NewStyle().Foreground(colorValue)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	InfoStyle = lipgloss.NewStyle().Foreground(colorInfo)

	CountStyle = lipgloss.NewStyle().Bold(true).Foreground(colorChecked)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	ControlStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)

	DisabledControlStyle = lipgloss.NewStyle().Foreground(colorBorder).Padding(0, 1)
)
