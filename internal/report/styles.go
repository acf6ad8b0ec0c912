package report

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorOK     = lipgloss.Color("2")  // green
	colorFail   = lipgloss.Color("1")  // red
	colorHeader = lipgloss.Color("12") // bright blue
	colorMuted  = lipgloss.Color("8")  // dim

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	okStyle = lipgloss.NewStyle().
		Foreground(colorOK)

	failStyle = lipgloss.NewStyle().
			Foreground(colorFail).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	summaryStyle = lipgloss.NewStyle().
			Bold(true)
)
