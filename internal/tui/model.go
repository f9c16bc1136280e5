package tui

import (
	"context"
	"fmt"
	"image"

	"flashd/internal/config"
	"flashd/internal/deck"
	"flashd/internal/log"
	"flashd/internal/render"
	"flashd/internal/tui/messages"
	"flashd/internal/tui/styles"
	"flashd/internal/tui/views"
	"flashd/internal/watch"
	"flashd/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the terminal flashcard viewer. Images are resampled to two
// pixels per cell vertically so they can be drawn with half blocks.
type Model struct {
	nav      *deck.Navigator
	surface  *surface
	keys     types.KeyMap
	help     help.Model
	theme    styles.Theme
	cols     int
	rows     int
	showHelp bool
	err      error
}

// New creates a model for d sized from cfg.TUI
func New(cfg *config.Config, d *deck.Deck, opts ...deck.Option) *Model {
	m := &Model{
		surface: &surface{},
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
		theme:   styles.NewTheme(cfg.TUI.Theme),
		cols:    cfg.TUI.Cols,
		rows:    cfg.TUI.Rows,
	}
	renderer := render.NewRenderer(m.surface, m.cols, m.rows*2)
	m.nav = deck.NewNavigator(d, renderer, opts...)
	m.nav.Show()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case messages.RefreshMsg:
		if watch.SamePath(m.nav.CurrentText(), msg.Path) {
			log.LogWithFields(log.F("path", msg.Path)).Debug("Shown file changed, re-rendering")
			m.nav.Show()
		}
	case messages.ErrorMsg:
		m.err = msg.Err
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Flip):
		m.nav.Flip()
	case key.Matches(msg, m.keys.Next):
		m.nav.Next()
	case key.Matches(msg, m.keys.Previous):
		m.nav.Previous()
	case key.Matches(msg, m.keys.Shuffle):
		m.nav.Shuffle()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m, m.theme)
}

// Navigator returns the navigator driving the view
func (m *Model) Navigator() *deck.Navigator {
	return m.nav
}

// Image implements common.ModelReader
func (m *Model) Image() image.Image {
	return m.surface.image
}

// Text implements common.ModelReader
func (m *Model) Text() string {
	return m.surface.text
}

// ShowingAnswer implements common.ModelReader
func (m *Model) ShowingAnswer() bool {
	return m.nav.ShowingAnswer()
}

// CardSize implements common.ModelReader
func (m *Model) CardSize() (int, int) {
	return m.cols, m.rows
}

// Status implements common.ModelReader
func (m *Model) Status() string {
	return fmt.Sprintf("Card %d/%d · %s", m.nav.Index()+1, m.nav.Len(), m.nav.Side())
}

// Err implements common.ModelReader
func (m *Model) Err() error {
	return m.err
}

// HelpView implements common.ModelReader
func (m *Model) HelpView() string {
	m.help.ShowAll = m.showHelp
	return m.help.View(m.keys)
}

// Run starts the terminal viewer on d and blocks until the user quits
func Run(cfg *config.Config, d *deck.Deck) error {
	m := New(cfg, d)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch.Enabled {
		w, err := watch.ForDeck(m.nav.Cards())
		if err != nil {
			log.Warnf("File watching disabled: %v", err)
			go p.Send(messages.ErrorMsg{Err: err})
		} else {
			defer w.Stop()
			go w.Forward(ctx, func(path string) {
				p.Send(messages.RefreshMsg{Path: path})
			})
		}
	}

	_, err := p.Run()
	return err
}
