// Package deck holds the flashcards and the navigation state over them.
package deck

import (
	"math/rand"

	"flashd/internal/errors"
	"flashd/pkg/types"
)

// Card is one question/answer pair. Either side may be an image path or
// literal text; which one is decided at display time.
type Card struct {
	Front string `yaml:"front" json:"front"`
	Back  string `yaml:"back" json:"back"`
}

// Side returns the front for Question and the back for Answer
func (c Card) Side(s types.Side) string {
	if s == types.Answer {
		return c.Back
	}
	return c.Front
}

// Deck is an ordered, non-empty sequence of cards. Its order changes only
// through Shuffle.
type Deck struct {
	cards []Card
}

// New builds a deck from cards. An empty list is rejected so that every
// later index computation has a non-zero modulus.
func New(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, errors.ErrEmptyDeck
	}
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d, nil
}

// Len returns the number of cards
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns the card at i
func (d *Deck) Card(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of the cards in their current order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Shuffle permutes the deck in place. The new order is permanent.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
