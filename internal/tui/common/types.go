package common

import "image"

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	// Image is the resampled picture on display, or nil for a text side
	Image() image.Image
	// Text is the text on display when Image is nil
	Text() string
	ShowingAnswer() bool
	// CardSize is the card area in terminal cells
	CardSize() (cols, rows int)
	Status() string
	Err() error
	HelpView() string
}
