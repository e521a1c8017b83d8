package cli

import "github.com/charmbracelet/lipgloss"

var (
	// headerStyle for command section headers
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	// successStyle for registered counts
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// dimStyle for skipped counts and metadata
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// errorStyle for failure counts
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
