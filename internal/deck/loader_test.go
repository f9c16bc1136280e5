package deck_test

import (
	"os"
	"path/filepath"
	"testing"

	"flashd/internal/deck"
	"flashd/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeDeck(t, "deck.yaml", `
cards:
  - front: "What is 2 + 2?"
    back: "4"
  - front: images/q1.png
    back: images/a1.png
`)
		d, err := deck.LoadFile(path, deck.LoadOptions{})
		require.NoError(t, err)
		require.Equal(t, 2, d.Len())
		assert.Equal(t, deck.Card{Front: "images/q1.png", Back: "images/a1.png"}, d.Card(1))
	})

	t.Run("json", func(t *testing.T) {
		path := writeDeck(t, "deck.json", `{"cards":[{"front":"a","back":"1"}]}`)
		d, err := deck.LoadFile(path, deck.LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, "a", d.Card(0).Front)
	})

	t.Run("base dir applies to image sides only", func(t *testing.T) {
		path := writeDeck(t, "deck.yml", `
cards:
  - front: q1.png
    back: plain answer
  - front: /abs/q2.png
    back: a2.JPG
`)
		d, err := deck.LoadFile(path, deck.LoadOptions{BaseDir: "media"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("media", "q1.png"), d.Card(0).Front)
		assert.Equal(t, "plain answer", d.Card(0).Back)
		assert.Equal(t, "/abs/q2.png", d.Card(1).Front)
		assert.Equal(t, filepath.Join("media", "a2.JPG"), d.Card(1).Back)
	})

	t.Run("strip markup", func(t *testing.T) {
		path := writeDeck(t, "deck.yaml", `
cards:
  - front: "<b>Capital</b> of France?"
    back: "<script>alert(1)</script>Paris"
  - front: "Who wrote '1984'?"
    back: "George Orwell"
`)
		d, err := deck.LoadFile(path, deck.LoadOptions{StripMarkup: true})
		require.NoError(t, err)
		assert.Equal(t, "Capital of France?", d.Card(0).Front)
		assert.Equal(t, "Paris", d.Card(0).Back)
		assert.Equal(t, "Who wrote '1984'?", d.Card(1).Front)
	})

	t.Run("empty deck", func(t *testing.T) {
		path := writeDeck(t, "deck.yaml", "cards: []\n")
		_, err := deck.LoadFile(path, deck.LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsEmptyDeck(err))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("empty side", func(t *testing.T) {
		path := writeDeck(t, "deck.yaml", `
cards:
  - front: a
    back: "1"
  - front: b
    back: "  "
`)
		_, err := deck.LoadFile(path, deck.LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsInvalidCard(err))
		assert.Contains(t, err.Error(), "card 1")
	})

	t.Run("side empty after stripping markup", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
			side    string
		}{
			{"empty tags on front", "cards:\n  - front: \"<b></b>\"\n    back: \"4\"\n", "front"},
			{"script only back", "cards:\n  - front: \"2+2?\"\n    back: \"<script>x()</script> \"\n", "back"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				path := writeDeck(t, "deck.yaml", tt.content)
				_, err := deck.LoadFile(path, deck.LoadOptions{StripMarkup: true})
				require.Error(t, err)
				assert.True(t, errors.IsInvalidCard(err))
				assert.Contains(t, err.Error(), "card 0")
				assert.Contains(t, err.Error(), tt.side)

				// without stripping the markup is literal text
				d, err := deck.LoadFile(path, deck.LoadOptions{})
				require.NoError(t, err)
				assert.Equal(t, 1, d.Len())
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := deck.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), deck.LoadOptions{})
		require.Error(t, err)
		assert.Equal(t, errors.DeckNotFound, errors.KindOf(err))
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := writeDeck(t, "deck.csv", "a,1\n")
		_, err := deck.LoadFile(path, deck.LoadOptions{})
		require.Error(t, err)
		assert.Equal(t, errors.InvalidDeck, errors.KindOf(err))
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeDeck(t, "deck.yaml", "cards: [front: a\n")
		_, err := deck.LoadFile(path, deck.LoadOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot parse deck file")
	})
}
