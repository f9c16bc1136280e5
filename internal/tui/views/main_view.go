package views

import (
	"strings"

	"flashd/internal/tui/common"
	"flashd/internal/tui/components"
	"flashd/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Title heads the terminal view
const Title = "Flashcards"

// RenderMainView draws the title, the card, the status line and key help
func RenderMainView(m common.ModelReader, theme styles.Theme) string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(Title))
	sb.WriteString("\n")
	sb.WriteString(RenderCard(m, theme))
	sb.WriteString("\n")

	status := components.NewStatusBar(theme)
	status.SetText(m.Status())
	status.SetError(m.Err())
	sb.WriteString(status.View())
	sb.WriteString("\n\n")
	sb.WriteString(m.HelpView())

	return theme.App.Render(sb.String())
}

// RenderCard draws the side on display inside a bordered box
func RenderCard(m common.ModelReader, theme styles.Theme) string {
	cols, rows := m.CardSize()

	var body string
	if img := m.Image(); img != nil {
		body = lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, HalfBlocks(img))
	} else {
		text := theme.Question
		if m.ShowingAnswer() {
			text = theme.Answer
		}
		body = text.Render(CenterText(m.Text(), cols, rows))
	}
	return theme.Card.Render(body)
}
