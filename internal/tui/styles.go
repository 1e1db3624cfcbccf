package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")
	mutedColor   = lipgloss.Color("245")
	accentColor  = lipgloss.Color("212")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Bold(true).
				Foreground(accentColor)

	themeStyle = lipgloss.NewStyle().
			Foreground(successColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(errorColor)

	emptyStateStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(mutedColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
