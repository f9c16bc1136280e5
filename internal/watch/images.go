package watch

import (
	"os"
	"path/filepath"
	"sort"

	"flashd/internal/deck"
	"flashd/internal/display"
	"flashd/internal/log"
)

// ImageDirs returns the existing directories that contain an image-looking
// side of any card, sorted and without duplicates.
func ImageDirs(cards []deck.Card) []string {
	seen := map[string]bool{}
	for _, c := range cards {
		for _, side := range []string{c.Front, c.Back} {
			if !display.HasImageExtension(side) {
				continue
			}
			dir := filepath.Dir(side)
			if seen[dir] {
				continue
			}
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				seen[dir] = true
			}
		}
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// ForDeck starts a watcher on every directory ImageDirs finds. A directory
// that cannot be added is logged and skipped.
func ForDeck(cards []deck.Card) (*Watcher, error) {
	w, err := New()
	if err != nil {
		return nil, err
	}
	for _, dir := range ImageDirs(cards) {
		if err := w.AddDirectory(dir); err != nil {
			log.LogWithFields(log.F("directory", dir), log.F("error", err)).Warn("Skipping image directory")
		}
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	log.LogWithFields(log.F("directories", w.GetDirectories())).Info("Watching image directories")
	return w, nil
}
