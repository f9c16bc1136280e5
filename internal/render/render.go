// Package render turns a display.Instruction into calls on a presentation
// surface. Image sides are decoded and resampled here so that every surface
// receives pixels at the configured display size.
package render

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"flashd/internal/display"
	"flashd/internal/errors"
	"flashd/internal/log"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// Default display dimensions for image sides
const (
	DefaultWidth  = 400
	DefaultHeight = 400
)

// Surface is the content area a renderer draws into. Showing one variant
// must clear the other.
type Surface interface {
	ShowImage(img image.Image)
	ShowText(text string)
}

// Renderer presents instructions on a Surface
type Renderer struct {
	surface Surface
	width   int
	height  int
}

// NewRenderer creates a renderer that resizes images to width x height.
// Non-positive dimensions fall back to the defaults.
func NewRenderer(surface Surface, width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{surface: surface, width: width, height: height}
}

// Render presents inst. A failed image load is shown as text on the same
// surface and never returned to the caller.
func (r *Renderer) Render(inst display.Instruction) {
	switch inst.Kind {
	case display.Image:
		img, err := LoadImage(inst.Value, r.width, r.height)
		if err != nil {
			log.LogWithError(err).Warn("Image side shown as error text")
			r.surface.ShowText(ErrorText(err))
			return
		}
		r.surface.ShowImage(img)
	default:
		r.surface.ShowText(inst.Value)
	}
}

// ErrorText is the text shown in place of an image that failed to load
func ErrorText(err error) string {
	return fmt.Sprintf("Error loading image: %v", err)
}

// LoadImage decodes the image at path and resamples it to exactly
// width x height with a Lanczos3 filter. JPEGs are first turned upright
// according to their EXIF orientation.
func LoadImage(path string, width, height int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewImageError("cannot open image", path, errors.ImageOpenFailed, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.NewImageError("cannot decode image", path, errors.ImageDecodeFailed, err)
	}
	log.LogWithFields(log.F("path", path), log.F("format", format)).Debug("Decoded image side")

	if format == "jpeg" {
		img = Orient(img, Orientation(path))
	}

	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3), nil
}
