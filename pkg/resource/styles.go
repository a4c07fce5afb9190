package resource

import "github.com/charmbracelet/lipgloss"

var (
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	deletedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	movedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Faint(true)
)
