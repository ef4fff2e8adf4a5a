package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Width(10)
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// StyleResult highlights a single result line for a terminal.
func StyleResult(s string) string {
	return resultStyle.Render(s)
}

// StyleError highlights an error line for a terminal.
func StyleError(s string) string {
	return errorStyle.Render(s)
}
