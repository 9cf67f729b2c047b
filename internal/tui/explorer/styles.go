package explorer

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	tokenColor   = lipgloss.Color("42")  // Green
	ariaColor    = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	selectedTitleStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	selectedDescStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				MarginBottom(1)

	detailPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	tokenStyle = lipgloss.NewStyle().
			Foreground(tokenColor)

	ariaStyle = lipgloss.NewStyle().
			Foreground(ariaColor)

	stateActiveStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
