package deck

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"flashd/internal/display"
	"flashd/internal/errors"
	"flashd/internal/log"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a deck file
type File struct {
	Cards []Card `yaml:"cards" json:"cards"`
}

// LoadOptions adjusts how a deck file is read
type LoadOptions struct {
	// BaseDir re-roots relative image-looking sides when set
	BaseDir string
	// StripMarkup removes HTML from text sides
	StripMarkup bool
}

// Default returns the built-in sample deck
func Default() []Card {
	return []Card{
		{Front: "image1_question.png", Back: "image1_answer.png"},
		{Front: "What is 2 + 2?", Back: "4"},
		{Front: "image2_question.png", Back: "image2_answer.png"},
		{Front: "Who wrote '1984'?", Back: "George Orwell"},
	}
}

// LoadFile reads a YAML or JSON deck file and builds a deck from it
func LoadFile(path string, opts LoadOptions) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := errors.InvalidDeck
		if os.IsNotExist(err) {
			kind = errors.DeckNotFound
		}
		return nil, errors.NewDeckError("cannot read deck file", -1, kind, err).WithSource(path)
	}

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		err = fmt.Errorf("unsupported deck format %q", ext)
	}
	if err != nil {
		return nil, errors.NewDeckError("cannot parse deck file", -1, errors.InvalidDeck, err).WithSource(path)
	}

	if len(f.Cards) == 0 {
		return nil, errors.NewDeckError("deck must contain at least one card", -1, errors.EmptyDeck, nil).WithSource(path)
	}

	cards, err := prepare(f.Cards, opts)
	if err != nil {
		var deckErr *errors.DeckError
		if errors.As(err, &deckErr) {
			deckErr.WithSource(path)
		}
		return nil, err
	}

	log.LogWithFields(log.F("source", path), log.F("cards", len(cards))).Info("Loaded deck")
	return New(cards)
}

// prepare validates cards and applies LoadOptions
func prepare(cards []Card, opts LoadOptions) ([]Card, error) {
	var policy *bluemonday.Policy
	if opts.StripMarkup {
		policy = bluemonday.StrictPolicy()
	}

	out := make([]Card, len(cards))
	for i, c := range cards {
		// Checked after preparing so markup-only sides count as empty
		card := Card{
			Front: prepareSide(c.Front, opts.BaseDir, policy),
			Back:  prepareSide(c.Back, opts.BaseDir, policy),
		}
		if strings.TrimSpace(card.Front) == "" {
			return nil, errors.NewDeckError("card side is empty", i, errors.InvalidCard, fmt.Errorf("front"))
		}
		if strings.TrimSpace(card.Back) == "" {
			return nil, errors.NewDeckError("card side is empty", i, errors.InvalidCard, fmt.Errorf("back"))
		}
		out[i] = card
	}
	return out, nil
}

func prepareSide(side, baseDir string, policy *bluemonday.Policy) string {
	if display.HasImageExtension(side) {
		if baseDir != "" && !filepath.IsAbs(side) {
			return filepath.Join(baseDir, side)
		}
		return side
	}
	if policy != nil {
		// Sanitize escapes entities; the surfaces draw plain text
		return strings.TrimSpace(html.UnescapeString(policy.Sanitize(side)))
	}
	return side
}
