package tui

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals // Immutable lipgloss styles shared by the views.
var (
	// HeaderStyle is used for the title line.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	// LabelStyle is used for field labels and secondary text.
	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// SubtleStyle is used for help text.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// InfoStyle is used for empty-state messages.
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Italic(true)

	// ErrorStyle is used for status errors.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// TableHeaderStyle underlines the column header row.
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)

	// FocusedHeaderStyle marks the column that s sorts.
	FocusedHeaderStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("229"))

	// TableSelectedStyle highlights the row under the cursor.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)
