package deck

import (
	"math/rand"
	"time"

	"flashd/internal/display"
	"flashd/internal/log"
	"flashd/pkg/types"
)

// Renderer receives the resolved form of the side on display
type Renderer interface {
	Render(inst display.Instruction)
}

// Navigator tracks the current card and side of a deck and re-renders after
// every state change. It is not safe for concurrent use; callers drive it
// from a single event loop.
type Navigator struct {
	deck     *Deck
	index    int
	side     types.Side
	renderer Renderer
	rng      *rand.Rand
}

// Option configures a Navigator
type Option func(*Navigator)

// WithRand sets the random source used by Shuffle
func WithRand(rng *rand.Rand) Option {
	return func(n *Navigator) {
		n.rng = rng
	}
}

// NewNavigator starts at the first card, question side. Nothing is rendered
// until Show or a navigation call. d must come from New; a nil or empty deck
// panics here rather than on the first Next.
func NewNavigator(d *Deck, r Renderer, opts ...Option) *Navigator {
	if d == nil || d.Len() == 0 {
		panic("deck: NewNavigator needs a non-empty deck built with deck.New")
	}
	n := &Navigator{
		deck:     d,
		renderer: r,
		side:     types.Question,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return n
}

// Next advances one card, wrapping to the first after the last
func (n *Navigator) Next() {
	n.index = (n.index + 1) % n.deck.Len()
	n.side = types.Question
	n.Show()
}

// Previous steps back one card, wrapping to the last before the first
func (n *Navigator) Previous() {
	n.index = (n.index - 1 + n.deck.Len()) % n.deck.Len()
	n.side = types.Question
	n.Show()
}

// Shuffle reorders the deck and returns to its first card
func (n *Navigator) Shuffle() {
	n.deck.Shuffle(n.rng)
	n.index = 0
	n.side = types.Question
	log.Debugf("Shuffled %d cards", n.deck.Len())
	n.Show()
}

// Flip toggles between question and answer without moving
func (n *Navigator) Flip() {
	n.side = n.side.Toggle()
	n.Show()
}

// Show renders the current side without changing state
func (n *Navigator) Show() {
	text := n.CurrentText()
	inst := display.Resolve(text)
	log.LogWithFields(
		log.F("card", n.index),
		log.F("side", n.side.String()),
		log.F("kind", inst.Kind.String()),
	).Debug("Rendering card side")
	n.renderer.Render(inst)
}

// Index returns the zero-based position of the current card
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the deck size
func (n *Navigator) Len() int {
	return n.deck.Len()
}

// Side returns the side on display
func (n *Navigator) Side() types.Side {
	return n.side
}

// ShowingAnswer reports whether the answer side is on display
func (n *Navigator) ShowingAnswer() bool {
	return n.side == types.Answer
}

// Current returns the current card
func (n *Navigator) Current() Card {
	return n.deck.Card(n.index)
}

// CurrentText returns the raw string of the side on display
func (n *Navigator) CurrentText() string {
	return n.Current().Side(n.side)
}

// Cards returns the deck in its current order
func (n *Navigator) Cards() []Card {
	return n.deck.Cards()
}
