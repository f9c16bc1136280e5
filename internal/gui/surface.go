//go:build !nogui

package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// Surface is the window's content area. It holds one image canvas and one
// text canvas and keeps exactly one of them visible.
type Surface struct {
	image   *canvas.Image
	text    *canvas.Text
	content *fyne.Container
}

// NewSurface creates a content area sized for width x height images
func NewSurface(width, height int, fontSize float32) *Surface {
	img := &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleSmooth}
	img.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	img.Hide()

	txt := canvas.NewText("", theme.ForegroundColor())
	txt.TextSize = fontSize
	txt.Alignment = fyne.TextAlignCenter

	return &Surface{
		image:   img,
		text:    txt,
		content: container.NewStack(img, container.NewCenter(txt)),
	}
}

// ShowImage implements render.Surface
func (s *Surface) ShowImage(img image.Image) {
	s.text.Text = ""
	s.text.Hide()
	s.image.Image = img
	s.image.Show()
	s.image.Refresh()
}

// ShowText implements render.Surface
func (s *Surface) ShowText(text string) {
	s.image.Image = nil
	s.image.Hide()
	s.text.Text = text
	s.text.Show()
	s.text.Refresh()
}

// Content returns the canvas object to place in a window
func (s *Surface) Content() fyne.CanvasObject {
	return s.content
}

// Text returns the text currently shown, empty while an image is up
func (s *Surface) Text() string {
	if !s.text.Visible() {
		return ""
	}
	return s.text.Text
}

// Image returns the image currently shown, nil while text is up
func (s *Surface) Image() image.Image {
	if !s.image.Visible() {
		return nil
	}
	return s.image.Image
}
