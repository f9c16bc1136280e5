//go:build nogui

package gui

import (
	"fmt"

	"flashd/internal/config"
	"flashd/internal/deck"
)

// Create reports that no window can be built
func (f *Factory) Create() (Interface, error) {
	return nil, fmt.Errorf("GUI not available in this build")
}

// Launch is a stub implementation for builds with GUI disabled
func Launch(cfg *config.Config, d *deck.Deck) error {
	fmt.Println("GUI is disabled in this build. Use 'flashd tui' instead.")
	return fmt.Errorf("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
