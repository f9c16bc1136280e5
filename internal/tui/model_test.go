package tui_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"flashd/internal/config"
	"flashd/internal/deck"
	"flashd/internal/tui"
	"flashd/internal/tui/messages"
	"flashd/pkg/testutils"
	"flashd/pkg/types"

	alsrt "github.com/alecthomas/assert"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, cards []deck.Card) *tui.Model {
	t.Helper()
	d, err := deck.New(cards)
	require.NoError(t, err)
	cfg := config.New()
	cfg.TUI.Cols = 10
	cfg.TUI.Rows = 5
	return tui.New(cfg, d, deck.WithRand(rand.New(rand.NewSource(7))))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *tui.Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func sampleCards() []deck.Card {
	return []deck.Card{{Front: "a", Back: "1"}, {Front: "b", Back: "2"}, {Front: "c", Back: "3"}}
}

func TestModelInitialization(t *testing.T) {
	m := newModel(t, sampleCards())
	alsrt.Equal(t, "a", m.Text())
	alsrt.Equal(t, "Card 1/3 · Question", m.Status())
	assert.Nil(t, m.Init())
	assert.Nil(t, m.Image())
	assert.NoError(t, m.Err())

	cols, rows := m.CardSize()
	alsrt.Equal(t, 10, cols)
	alsrt.Equal(t, 5, rows)
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		text   string
		status string
	}{
		{"space flips", []tea.KeyMsg{{Type: tea.KeySpace}}, "1", "Card 1/3 · Answer"},
		{"w flips twice", []tea.KeyMsg{runes("w"), runes("w")}, "a", "Card 1/3 · Question"},
		{"right arrow", []tea.KeyMsg{{Type: tea.KeyRight}}, "b", "Card 2/3 · Question"},
		{"d key", []tea.KeyMsg{runes("d"), runes("d")}, "c", "Card 3/3 · Question"},
		{"next wraps", []tea.KeyMsg{runes("d"), runes("d"), runes("d")}, "a", "Card 1/3 · Question"},
		{"left wraps", []tea.KeyMsg{{Type: tea.KeyLeft}}, "c", "Card 3/3 · Question"},
		{"a key after flip", []tea.KeyMsg{{Type: tea.KeySpace}, runes("a")}, "c", "Card 3/3 · Question"},
		{"unbound key", []tea.KeyMsg{runes("x")}, "a", "Card 1/3 · Question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t, sampleCards())
			for _, k := range tt.keys {
				assert.Nil(t, press(t, m, k))
			}
			alsrt.Equal(t, tt.text, m.Text())
			alsrt.Equal(t, tt.status, m.Status())
		})
	}
}

func TestShuffleKey(t *testing.T) {
	cards := []deck.Card{
		{Front: "1", Back: "a"}, {Front: "2", Back: "b"}, {Front: "3", Back: "c"},
		{Front: "4", Back: "d"}, {Front: "5", Back: "e"}, {Front: "6", Back: "f"},
	}
	m := newModel(t, cards)
	press(t, m, runes("d"))
	press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	press(t, m, runes("s"))
	nav := m.Navigator()
	alsrt.Equal(t, 0, nav.Index())
	alsrt.Equal(t, types.Question, nav.Side())
	alsrt.Equal(t, nav.Cards()[0].Front, m.Text())
	assert.ElementsMatch(t, cards, nav.Cards())
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m := newModel(t, sampleCards())
			cmd := press(t, m, k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t, sampleCards())
	short := m.HelpView()
	assert.NotContains(t, testutils.StripANSI(short), "shuffle")

	press(t, m, runes("?"))
	full := testutils.StripANSI(m.HelpView())
	assert.Contains(t, full, "shuffle")
	assert.Contains(t, full, "quit")
}

func TestImageSides(t *testing.T) {
	dir := t.TempDir()
	q := testutils.WritePNG(t, dir, "q.png", 4, 4)
	bad := testutils.WriteCorrupt(t, dir, "bad.png")
	m := newModel(t, []deck.Card{{Front: q, Back: bad}})

	img := m.Image()
	require.NotNil(t, img)
	alsrt.Equal(t, 10, img.Bounds().Dx())
	alsrt.Equal(t, 10, img.Bounds().Dy())
	assert.Contains(t, m.View(), "▀")

	press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Nil(t, m.Image())
	assert.Contains(t, m.Text(), "Error loading image:")
	assert.True(t, m.ShowingAnswer())
}

func TestRefreshMsg(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.png")
	m := newModel(t, []deck.Card{{Front: path, Back: "x"}})
	alsrt.Equal(t, path, m.Text())

	testutils.WritePNG(t, dir, "late.png", 4, 4)
	press(t, m, messages.RefreshMsg{Path: filepath.Join(dir, "other.png")})
	assert.Nil(t, m.Image(), "unrelated path must not re-render")

	press(t, m, messages.RefreshMsg{Path: path})
	assert.NotNil(t, m.Image())
}

func TestErrorMsg(t *testing.T) {
	m := newModel(t, sampleCards())
	press(t, m, messages.ErrorMsg{Err: assert.AnError})
	assert.Contains(t, testutils.StripANSI(m.View()), "Error: "+assert.AnError.Error())

	press(t, m, runes("d"))
	assert.NoError(t, m.Err())
}

func TestWindowSize(t *testing.T) {
	m := newModel(t, sampleCards())
	assert.Nil(t, press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}))
	assert.Contains(t, m.View(), "Card 1/3")
}
