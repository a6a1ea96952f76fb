package cli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))
)

// cancelledMessage is printed when the user backs out before anything is written.
func cancelledMessage() string {
	return errorStyle.Render("✖") + " Operation cancelled"
}
