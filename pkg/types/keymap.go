package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the terminal keybindings for the flashcard viewer.
// It lives in pkg/types so the model and its help view share one copy.
type KeyMap struct {
	Flip     key.Binding
	Next     key.Binding
	Previous key.Binding
	Shuffle  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap mirrors the desktop bindings, plus keys for the actions
// that only have buttons in the window.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flip: key.NewBinding(
			key.WithKeys(" ", "w"),
			key.WithHelp("space/w", "flip"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "previous"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shuffle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flip, k.Previous, k.Next},
		{k.Shuffle, k.Help, k.Quit},
	}
}
