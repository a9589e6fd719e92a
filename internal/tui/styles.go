package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	brandStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	headingStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
	linkStyle     = lipgloss.NewStyle().Foreground(colorAccent)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	activeTileStyle = tileStyle.
			BorderStyle(lipgloss.ThickBorder())
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	copyrightStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	bulletStyle    = lipgloss.NewStyle().Foreground(colorYellow)
)
