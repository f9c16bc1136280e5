package components

import (
	"flashd/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows the card position, or the last error until cleared
type StatusBar struct {
	text     string
	err      error
	style    lipgloss.Style
	errStyle lipgloss.Style
}

func NewStatusBar(theme styles.Theme) *StatusBar {
	return &StatusBar{
		style:    theme.Status,
		errStyle: theme.Error,
	}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) SetError(err error) {
	s.err = err
}

func (s *StatusBar) View() string {
	if s.err != nil {
		return s.errStyle.Render("Error: " + s.err.Error())
	}
	if s.text == "" {
		return ""
	}
	return s.style.Render(s.text)
}
