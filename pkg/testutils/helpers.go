package testutils

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// Gradient returns a w x h image whose top half is red and bottom half blue
func Gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{R: 255, A: 255}
		if y >= h/2 {
			c = color.NRGBA{B: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// WritePNG writes a small valid PNG into dir and returns its path
func WritePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, Gradient(w, h)))
	return path
}

// WriteJPEG writes a small valid JPEG into dir and returns its path
func WriteJPEG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, Gradient(w, h), nil))
	return path
}

// WriteCorrupt writes a file with an image name but non-image bytes
func WriteCorrupt(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("definitely not an image"), 0644))
	return path
}

// WriteJPEGWithOrientation writes a JPEG carrying an EXIF APP1 segment whose
// only tag is Orientation, set to o.
func WriteJPEGWithOrientation(t *testing.T, dir, name string, w, h int, o uint16) string {
	t.Helper()
	var body bytes.Buffer
	require.NoError(t, jpeg.Encode(&body, Gradient(w, h), &jpeg.Options{Quality: 95}))
	data := body.Bytes()

	// Big-endian TIFF header, one IFD entry, no next IFD
	tiff := []byte{'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08}
	tiff = binary.BigEndian.AppendUint16(tiff, 1)
	tiff = binary.BigEndian.AppendUint16(tiff, 0x0112) // Orientation
	tiff = binary.BigEndian.AppendUint16(tiff, 3)      // SHORT
	tiff = binary.BigEndian.AppendUint32(tiff, 1)
	tiff = binary.BigEndian.AppendUint16(tiff, o)
	tiff = append(tiff, 0x00, 0x00)
	tiff = binary.BigEndian.AppendUint32(tiff, 0)

	payload := append([]byte("Exif\x00\x00"), tiff...)
	app1 := []byte{0xff, 0xe1}
	app1 = binary.BigEndian.AppendUint16(app1, uint16(len(payload)+2))
	app1 = append(app1, payload...)

	// SOI, then APP1, then the rest of the encoded stream
	out := append([]byte{}, data[:2]...)
	out = append(out, app1...)
	out = append(out, data[2:]...)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, out, 0644))
	return path
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
