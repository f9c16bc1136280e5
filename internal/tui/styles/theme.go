package styles

import (
	"flashd/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the terminal styles derived from a named color theme
type Theme struct {
	App      lipgloss.Style
	Title    lipgloss.Style
	Card     lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

// NewTheme builds styles from one of config.ListThemes
func NewTheme(name string) Theme {
	colors := config.GetTheme(name)
	return Theme{
		App: lipgloss.NewStyle().
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors["primary"])).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors["border"])),
		Question: lipgloss.NewStyle().
			Bold(true),
		Answer: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors["answer"])),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["muted"])),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors["error"])),
	}
}
