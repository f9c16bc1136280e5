package tui

import "image"

// surface records what the renderer last presented; the view draws it
type surface struct {
	text  string
	image image.Image
}

// ShowImage implements render.Surface
func (s *surface) ShowImage(img image.Image) {
	s.image = img
	s.text = ""
}

// ShowText implements render.Surface
func (s *surface) ShowText(text string) {
	s.text = text
	s.image = nil
}
